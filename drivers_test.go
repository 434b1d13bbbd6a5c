package dialogkit

import (
	"fmt"
)

func init() {
	// Register test drivers
	RegisterDriver("fake", newFakeDriver)
	RegisterDriver("absent", newAbsentDriver)
}

func newFakeDriver(cfg *Config) (Display, error) {
	return newFakeDisplay(), nil
}

// newAbsentDriver models a driver whose capability is missing in this
// environment: a registered name that yields no display.
func newAbsentDriver(cfg *Config) (Display, error) {
	return nil, nil
}

// fakeDisplay is a simple scripted display implementation for testing.
// Tests are single-goroutine, so it skips locking on purpose.
type fakeDisplay struct {
	attached    map[*fakeTrigger]bool
	activations int
	buildErr    error
}

func newFakeDisplay() *fakeDisplay {
	return &fakeDisplay{attached: make(map[*fakeTrigger]bool)}
}

func (d *fakeDisplay) NewTrigger(o *Options) (Trigger, error) {
	if d.buildErr != nil {
		return nil, d.buildErr
	}
	return &fakeTrigger{display: d, opts: o}, nil
}

func (d *fakeDisplay) attachedCount() int { return len(d.attached) }

// activeTrigger returns the attached trigger awaiting a pick, if any.
func (d *fakeDisplay) activeTrigger() *fakeTrigger {
	for t := range d.attached {
		if t.pending {
			return t
		}
	}
	return nil
}

// completePick simulates the user committing a pick in the open dialog.
func (d *fakeDisplay) completePick(refs ...FileRef) bool {
	t := d.activeTrigger()
	if t == nil {
		return false
	}
	t.pending = false
	if !t.opts.Multiple && len(refs) > 1 {
		refs = refs[:1]
	}
	return t.Commit(NewFileList(refs...))
}

// dismissPick simulates the user closing the dialog without a pick.
func (d *fakeDisplay) dismissPick() {
	if t := d.activeTrigger(); t != nil {
		t.pending = false
	}
}

type fakeTrigger struct {
	TriggerState

	display  *fakeDisplay
	opts     *Options
	attached bool
	pending  bool
}

func (t *fakeTrigger) Attach() error {
	if t.attached {
		return fmt.Errorf("trigger attached twice")
	}
	t.attached = true
	t.display.attached[t] = true
	return nil
}

func (t *fakeTrigger) Detach() {
	if t.attached {
		t.attached = false
		delete(t.display.attached, t)
	}
	t.pending = false
	t.CancelAll()
}

func (t *fakeTrigger) Activate() {
	if !t.attached {
		return
	}
	t.pending = true
	t.display.activations++
}

func (t *fakeTrigger) MultiSelect() bool { return t.opts.Multiple }
