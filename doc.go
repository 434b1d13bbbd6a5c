// Package dialogkit lets application code open a platform "open file"
// dialog programmatically — outside any visible UI control — and observe
// the resulting file selection as state.
//
// The core is a lifecycle controller that owns a hidden file-picker
// trigger, normalizes externally supplied initial selections into the same
// shape the platform reports, binds the change-notification subscription
// exactly once per configuration, and exposes three operations: Open,
// Reset, and the current Selection. Rendering, host-framework scheduling,
// and styling are external collaborators, not part of this package.
//
// # Display Backends
//
// Dialogs are shown by display drivers through a multi-module layout:
//
//   - Native dialogs via zenity (github.com/gobeaver/dialogkit/driver/zenity)
//   - Native dialogs via sqweek (github.com/gobeaver/dialogkit/driver/sqweek)
//   - Drop-directory watcher (github.com/gobeaver/dialogkit/driver/dropdir)
//   - In-memory scripted picks (github.com/gobeaver/dialogkit/driver/memory)
//
// Each driver is a separate Go module, so you only pull dependencies for
// the backends you actually use. An environment with no display capability
// is represented by a nil [Display]; every controller operation then
// degrades to a no-op instead of failing.
//
// # Basic Usage
//
//	import "github.com/gobeaver/dialogkit/driver/memory"
//
//	display := memory.New()
//
//	ctrl := dialogkit.NewController(display,
//	    dialogkit.WithMultiple(false),
//	    dialogkit.WithAccept("image/*"),
//	    dialogkit.WithOnChange(func(files *dialogkit.FileList) {
//	        if files != nil {
//	            log.Printf("picked %d file(s)", files.Len())
//	        }
//	    }),
//	)
//	ctrl.Mount()
//	defer ctrl.Unmount()
//
//	ctrl.Open() // opens the native dialog; returns immediately
//
// # Lifecycle Binding
//
// When configuration changes over the lifetime of a call site, drive the
// controller through a [Binder]. Rebinding is keyed by *Options pointer
// identity, and the previous trigger/subscription pair is always torn down
// strictly before the next one is mounted:
//
//	binder := dialogkit.NewBinder(display)
//	ctrl := binder.Rebind(dialogkit.NewOptions(dialogkit.WithAccept(".pdf")))
//	// ... configuration changes ...
//	ctrl = binder.Rebind(dialogkit.NewOptions(dialogkit.WithAccept("image/*")))
//	defer binder.Close()
//
// # Optional Capabilities
//
// Backends advertise what the platform supports through capability
// interfaces. Use type assertions to check for support:
//
//	if _, ok := trigger.(dialogkit.CanMultiSelect); ok {
//	    // Options.Multiple is honored
//	}
//
// Unsupported options are passed through or silently degraded; the
// controller never fails because of them.
package dialogkit
