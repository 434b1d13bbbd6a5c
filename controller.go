package dialogkit

import (
	"sync"
)

// Controller owns the selection state and the trigger lifecycle for one
// call site. It exposes the three caller-facing operations — Open, Reset,
// Selection — plus the Mount/Unmount pair driven by a [Binder].
//
// The observable selection is always either nil or a snapshot equal to the
// trigger's last reported collection; it is never partially updated.
type Controller struct {
	mu      sync.Mutex
	display Display
	opts    *Options

	selection *FileList
	trigger   Trigger
	sub       *Subscription
	mounted   bool
}

// NewController creates a controller for the given display and options.
// The selection is seeded from Options.InitialFiles via
// [NormalizeSelection]. The controller is not mounted yet; call Mount, or
// drive it through a [Binder].
func NewController(d Display, opts ...Option) *Controller {
	o := NewOptions(opts...)
	return &Controller{
		display:   d,
		opts:      o,
		selection: NormalizeSelection(o.InitialFiles),
	}
}

// Options returns the merged options the controller was built with.
func (c *Controller) Options() *Options {
	return c.opts
}

// Selection returns the current selection: nil when nothing is selected,
// otherwise the snapshot of the last committed pick (or the normalized
// initial files before any interaction).
func (c *Controller) Selection() *FileList {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection
}

// Mount builds the trigger, attaches it to the display, and binds the
// change subscription. Idempotent: mounting an already-mounted controller
// is a no-op. In a degraded environment (nil display, or a backend that
// cannot build a trigger) the controller mounts triggerless and every
// trigger operation is a no-op.
func (c *Controller) Mount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mounted {
		return
	}
	c.mounted = true

	t := NewTrigger(c.display, c.opts)
	if t == nil {
		return
	}
	if err := t.Attach(); err != nil {
		return
	}
	c.trigger = t

	sub := t.Subscribe(func() { c.handleChange() })
	c.sub = sub
}

// handleChange is the trigger's change-notification handler. The
// subscription flag is checked before touching state so that a
// notification arriving after Unmount never mutates the selection nor
// invokes the callback.
func (c *Controller) handleChange() {
	c.mu.Lock()
	sub := c.sub
	t := c.trigger
	if sub == nil || sub.Cancelled() || t == nil {
		c.mu.Unlock()
		return
	}

	files := t.Files()
	if files == nil {
		// Dialog dismissed without a committed pick: silent no-op.
		// OnCancel is reserved and deliberately not invoked here.
		c.mu.Unlock()
		return
	}

	c.selection = files
	onChange := c.opts.OnChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(files)
	}
}

// Unmount cancels the active subscription and detaches the trigger. Safe
// to call at any time, including when nothing is mounted; cancelling an
// already-cancelled subscription is a no-op. Unmount is final for the
// current trigger/subscription pair — a later Mount builds a new pair.
func (c *Controller) Unmount() {
	c.mu.Lock()
	sub := c.sub
	t := c.trigger
	c.sub = nil
	c.trigger = nil
	c.mounted = false
	c.mu.Unlock()

	// Cancel strictly before detach so no late notification slips through
	// while the trigger is being torn down.
	sub.Cancel()
	if t != nil {
		t.Detach()
	}
}

// Reset clears the selection. With a live trigger it also clears the
// trigger's committed value — so a subsequent identical pick still fires a
// change — and invokes OnChange(nil). Without a trigger only the state is
// updated and the callback stays silent; there is nothing to clear.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.selection = nil
	t := c.trigger
	onChange := c.opts.OnChange
	c.mu.Unlock()

	if t == nil {
		return
	}
	t.ClearValue()
	if onChange != nil {
		onChange(nil)
	}
}

// Open programmatically activates the trigger, equivalent to a user click
// on the hidden control. When Options.ResetOnOpen is set the full Reset
// contract runs strictly before the activation. Without a trigger Open is
// a no-op: the dialog silently never opens.
func (c *Controller) Open() {
	if c.opts.ResetOnOpen {
		c.Reset()
	}

	c.mu.Lock()
	t := c.trigger
	c.mu.Unlock()

	if t == nil {
		return
	}
	t.Activate()
}
