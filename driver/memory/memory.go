// Package memory provides an in-memory display driver for dialogkit.
//
// The driver shows no real dialog: tests and headless programs script the
// user instead. Activating a trigger arms it, and [Display.CompletePick]
// plays the part of the user committing a selection in the native dialog.
package memory

import (
	"sync"

	"github.com/gobeaver/dialogkit"
	"github.com/gobwas/glob"
)

// Display is a scripted display capability. It tracks how many triggers
// are attached and how many activations happened, so tests can assert the
// one-live-trigger invariant and activation ordering.
type Display struct {
	mu          sync.Mutex
	attached    map[*Trigger]bool
	activations int
}

// New creates a new in-memory display
func New() *Display {
	return &Display{attached: make(map[*Trigger]bool)}
}

// NewTrigger implements dialogkit.Display.
func (d *Display) NewTrigger(o *dialogkit.Options) (dialogkit.Trigger, error) {
	t := &Trigger{
		display: d,
		opts:    o,
		filter:  dialogkit.ParseAccept(o.Accept),
	}
	for _, p := range t.filter.Patterns() {
		if g, err := glob.Compile(p); err == nil {
			t.globs = append(t.globs, g)
		}
	}
	return t, nil
}

// AttachedCount returns the number of currently attached triggers.
func (d *Display) AttachedCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.attached)
}

// Activations returns the total number of trigger activations seen by the
// display.
func (d *Display) Activations() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activations
}

// activeTrigger returns the attached trigger that is awaiting a pick, if
// any. At most one trigger is attached per controller, and a second
// activation cannot happen while a dialog is modal, so ranging is fine.
func (d *Display) activeTrigger() *Trigger {
	d.mu.Lock()
	defer d.mu.Unlock()
	for t := range d.attached {
		if t.awaiting() {
			return t
		}
	}
	return nil
}

// CompletePick simulates the user committing a pick in the open dialog.
// The refs run through the trigger's accept filter, and a single-select
// trigger keeps only the first surviving ref. It reports whether a change
// notification was raised: false when no dialog is open, when every ref
// was filtered out, or when the pick equals the already committed value.
func (d *Display) CompletePick(refs ...dialogkit.FileRef) bool {
	t := d.activeTrigger()
	if t == nil {
		return false
	}
	return t.completePick(refs)
}

// DismissPick simulates the user closing the open dialog without a pick.
// No notification is raised; the trigger just returns to idle.
func (d *Display) DismissPick() {
	if t := d.activeTrigger(); t != nil {
		t.dismiss()
	}
}

// Trigger is the in-memory trigger implementation.
type Trigger struct {
	dialogkit.TriggerState

	display *Display
	opts    *dialogkit.Options
	filter  dialogkit.AcceptFilter
	globs   []glob.Glob

	mu       sync.Mutex
	attached bool
	pending  bool
}

// Attach implements dialogkit.Trigger.
func (t *Trigger) Attach() error {
	t.mu.Lock()
	t.attached = true
	t.mu.Unlock()

	t.display.mu.Lock()
	t.display.attached[t] = true
	t.display.mu.Unlock()
	return nil
}

// Detach implements dialogkit.Trigger. Idempotent; cancels every
// subscription so nothing outlives the trigger.
func (t *Trigger) Detach() {
	t.mu.Lock()
	wasAttached := t.attached
	t.attached = false
	t.pending = false
	t.mu.Unlock()

	if wasAttached {
		t.display.mu.Lock()
		delete(t.display.attached, t)
		t.display.mu.Unlock()
	}
	t.CancelAll()
}

// Activate implements dialogkit.Trigger: it arms the trigger for the next
// CompletePick and returns immediately.
func (t *Trigger) Activate() {
	t.mu.Lock()
	if !t.attached {
		t.mu.Unlock()
		return
	}
	t.pending = true
	t.mu.Unlock()

	t.display.mu.Lock()
	t.display.activations++
	t.display.mu.Unlock()
}

// MultiSelect implements dialogkit.CanMultiSelect.
func (t *Trigger) MultiSelect() bool { return t.opts.Multiple }

// PickDirectory implements dialogkit.CanPickDirectory.
func (t *Trigger) PickDirectory() bool { return t.opts.Directory }

func (t *Trigger) awaiting() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attached && t.pending
}

func (t *Trigger) dismiss() {
	t.mu.Lock()
	t.pending = false
	t.mu.Unlock()
}

func (t *Trigger) completePick(refs []dialogkit.FileRef) bool {
	t.mu.Lock()
	if !t.attached || !t.pending {
		t.mu.Unlock()
		return false
	}
	t.pending = false
	t.mu.Unlock()

	var picked []dialogkit.FileRef
	for _, ref := range refs {
		if ref.ContentType == "" {
			ref.ContentType = dialogkit.GuessContentType(ref.Name)
		}
		if !t.matches(&ref) {
			continue
		}
		picked = append(picked, ref)
		if !t.opts.Multiple {
			break
		}
	}
	if len(picked) == 0 {
		return false
	}

	return t.Commit(dialogkit.NewFileList(picked...))
}

// matches checks the ref against the accept filter, first by name glob and
// then by MIME type for filters the globs cannot express.
func (t *Trigger) matches(ref *dialogkit.FileRef) bool {
	if t.filter.All() {
		return true
	}
	for _, g := range t.globs {
		if g.Match(ref.Name) {
			return true
		}
	}
	return t.filter.Match(ref)
}
