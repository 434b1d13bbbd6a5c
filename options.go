package dialogkit

// Option represents a configuration option for a dialog controller
type Option func(*Options)

// Options contains all recognized options for a dialog controller.
// Callers build Options through [NewOptions]; supplied options are merged
// shallowly over the documented defaults. The resulting *Options pointer is
// the unit of change detection for teardown/rebuild: a [Binder] rebinds
// only when handed a different pointer, never by deep comparison.
type Options struct {
	// Multiple allows selecting more than one file (default true)
	Multiple bool

	// Accept is the file filter passed through to the display backend
	// (default "*"). Comma-separated terms: "*", MIME patterns such as
	// "image/*", or extensions such as ".png". The value is not validated
	// here; backends and the platform interpret it.
	Accept string

	// Capture is the preferred capture source hint. Passed through
	// opaquely to the backend only when non-empty.
	Capture string

	// Directory selects directory-picking mode instead of files
	Directory bool

	// ResetOnOpen clears the current selection before each Open
	ResetOnOpen bool

	// InitialFiles seeds the controller's selection before any interaction
	InitialFiles InitialSelection

	// OnChange is invoked with the new selection after a committed pick,
	// or with nil after a Reset while a trigger is live
	OnChange func(*FileList)

	// OnCancel is reserved. The platform does not reliably distinguish a
	// cancelled dialog from "no pick yet", so this hook is declared but
	// never invoked.
	OnCancel func()
}

// NewOptions builds an Options value with defaults applied, then merges
// the supplied options over them.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Multiple: true,
		Accept:   "*",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithMultiple enables or disables multi-file selection
func WithMultiple(multiple bool) Option {
	return func(o *Options) {
		o.Multiple = multiple
	}
}

// WithAccept sets the file filter passed to the display backend
func WithAccept(accept string) Option {
	return func(o *Options) {
		o.Accept = accept
	}
}

// WithCapture sets the preferred capture source hint
func WithCapture(capture string) Option {
	return func(o *Options) {
		o.Capture = capture
	}
}

// WithDirectory enables directory-picking mode
func WithDirectory(directory bool) Option {
	return func(o *Options) {
		o.Directory = directory
	}
}

// WithResetOnOpen enables clearing the selection before each Open
func WithResetOnOpen(reset bool) Option {
	return func(o *Options) {
		o.ResetOnOpen = reset
	}
}

// WithInitialFiles seeds the initial selection. Accepts either a *FileList
// (kept as-is) or FileRefs (normalized into a fresh FileList).
func WithInitialFiles(init InitialSelection) Option {
	return func(o *Options) {
		o.InitialFiles = init
	}
}

// WithOnChange sets the selection-change callback
func WithOnChange(fn func(*FileList)) Option {
	return func(o *Options) {
		o.OnChange = fn
	}
}

// WithOnCancel sets the reserved cancel callback. It is currently never
// invoked; see [Options.OnCancel].
func WithOnCancel(fn func()) Option {
	return func(o *Options) {
		o.OnCancel = fn
	}
}
