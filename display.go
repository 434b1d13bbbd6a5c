package dialogkit

// ============================================================================
// Core Interfaces
// ============================================================================

// Display is the injected display capability: the part of the host
// environment able to host a hidden trigger and show a native file-picker
// dialog for it.
//
// A nil Display is the degraded, headless environment. It is not an error:
// [NewTrigger] returns a nil Trigger for it and every controller operation
// becomes a no-op.
type Display interface {
	// NewTrigger constructs a trigger configured from o. The trigger is
	// not yet attached to the display; attachment is the Controller's
	// responsibility.
	NewTrigger(o *Options) (Trigger, error)
}

// Trigger is the hidden platform control that performs the actual picking.
// It is never rendered to the user; it exists purely to be programmatically
// activated. Exactly one live trigger exists per mounted controller
// instance, owned exclusively by that controller.
type Trigger interface {
	// Attach joins the trigger to its display, hidden.
	Attach() error

	// Detach removes the trigger from its display. Idempotent; a detached
	// trigger never signals again.
	Detach()

	// Activate programmatically opens the native dialog, equivalent to a
	// user click. It returns immediately; a committed pick arrives later
	// as a change notification. Zero or one notification per activation.
	Activate()

	// Files returns the last committed selection, or nil before any pick.
	Files() *FileList

	// ClearValue forgets the committed value so that a subsequent
	// identical pick still signals a change.
	ClearValue()

	// Subscribe registers a change-notification callback and returns the
	// cancellable subscription bound to it.
	Subscribe(fn func()) *Subscription
}

// ============================================================================
// Optional Capability Interfaces
// ============================================================================
// Backends expose optional capabilities through extra interfaces. Use type
// assertion to check for support:
//
//	if _, ok := trigger.(dialogkit.CanMultiSelect); ok {
//	    // backend honors Options.Multiple
//	}
//
// The controller never requires a capability: unsupported options pass
// through and degrade silently at the backend.

// CanMultiSelect indicates the trigger honors Options.Multiple. Backends
// without it always commit single-file selections.
type CanMultiSelect interface {
	MultiSelect() bool
}

// CanPickDirectory indicates the trigger honors Options.Directory.
type CanPickDirectory interface {
	PickDirectory() bool
}

// CanCapture indicates the trigger interprets the Options.Capture hint
// rather than ignoring it.
type CanCapture interface {
	CaptureHint() string
}
