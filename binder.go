package dialogkit

import (
	"sync"
)

// Binder is the glue between a host lifecycle (a UI framework's effect
// scheduler, a service start/stop pair) and a controller. Each Rebind
// tears down the previous trigger/subscription pair strictly before
// mounting the new one, so no two triggers are ever attached at once for
// the same binder.
//
// Rebinding is keyed by *Options pointer identity: handing Rebind the same
// pointer again is an idempotent no-op, a different pointer rebuilds even
// if the contents are equal.
type Binder struct {
	mu      sync.Mutex
	display Display
	opts    *Options
	ctrl    *Controller
	closed  bool
}

// NewBinder creates a binder for the given display capability. The display
// may be nil; controllers then mount triggerless and degrade to no-ops.
func NewBinder(d Display) *Binder {
	return &Binder{display: d}
}

// Rebind applies a configuration. On first call it mounts a controller; on
// a configuration change it unmounts the previous controller before
// mounting a fresh one. It returns the live controller, or nil after
// Close.
func (b *Binder) Rebind(o *Options) *Controller {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	if b.ctrl != nil && o == b.opts {
		return b.ctrl
	}

	// Teardown before setup.
	if b.ctrl != nil {
		b.ctrl.Unmount()
		b.ctrl = nil
	}

	if o == nil {
		o = NewOptions()
	}
	b.opts = o

	ctrl := &Controller{
		display:   b.display,
		opts:      o,
		selection: NormalizeSelection(o.InitialFiles),
	}
	ctrl.Mount()
	b.ctrl = ctrl
	return ctrl
}

// Controller returns the currently bound controller, or nil when nothing
// is bound.
func (b *Binder) Controller() *Controller {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ctrl
}

// Close is the final teardown: it unmounts the current controller and
// rejects further rebinds. Safe to call multiple times.
func (b *Binder) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	if b.ctrl != nil {
		b.ctrl.Unmount()
		b.ctrl = nil
	}
	b.opts = nil
}
