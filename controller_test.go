package dialogkit

import (
	"testing"
)

func TestControllerInitialFiles(t *testing.T) {
	a := FileRef{Name: "a.txt", Path: "/a.txt"}
	b := FileRef{Name: "b.txt", Path: "/b.txt"}

	d := newFakeDisplay()
	c := NewController(d, WithInitialFiles(FileRefs{a, b}))

	sel := c.Selection()
	if sel.Len() != 2 {
		t.Fatalf("Selection().Len() = %d, want 2", sel.Len())
	}
	if sel.Item(0).Path != "/a.txt" || sel.Item(1).Path != "/b.txt" {
		t.Errorf("initial selection order wrong: %v", sel.Paths())
	}
}

func TestControllerInitialFileListIdentity(t *testing.T) {
	list := NewFileList(FileRef{Name: "a.txt", Path: "/a.txt"})
	c := NewController(newFakeDisplay(), WithInitialFiles(list))

	if c.Selection() != list {
		t.Error("platform-shaped initial selection must be kept by identity")
	}
}

func TestControllerSingleFilePick(t *testing.T) {
	d := newFakeDisplay()

	var changes []*FileList
	c := NewController(d,
		WithMultiple(false),
		WithAccept("image/*"),
		WithOnChange(func(files *FileList) { changes = append(changes, files) }),
	)
	c.Mount()
	defer c.Unmount()

	c.Open()
	picked := FileRef{Name: "photo.png", Path: "/pics/photo.png", Size: 42}
	if !d.completePick(picked) {
		t.Fatal("completePick reported no notification")
	}

	sel := c.Selection()
	if sel.Len() != 1 || sel.Item(0).Path != "/pics/photo.png" {
		t.Errorf("selection = %v, want the picked file", sel.Paths())
	}
	if len(changes) != 1 {
		t.Fatalf("OnChange called %d times, want 1", len(changes))
	}
	if changes[0] != sel {
		t.Error("OnChange must receive the same collection exposed as Selection")
	}
}

func TestControllerDismissalIsSilent(t *testing.T) {
	d := newFakeDisplay()

	changes := 0
	cancels := 0
	c := NewController(d,
		WithOnChange(func(*FileList) { changes++ }),
		WithOnCancel(func() { cancels++ }),
	)
	c.Mount()
	defer c.Unmount()

	c.Open()
	d.dismissPick()

	if c.Selection() != nil {
		t.Error("selection changed on dismissal")
	}
	if changes != 0 {
		t.Errorf("OnChange called %d times on dismissal, want 0", changes)
	}
	if cancels != 0 {
		t.Errorf("OnCancel called %d times, want 0 (reserved hook)", cancels)
	}
}

func TestControllerReset(t *testing.T) {
	d := newFakeDisplay()

	var changes []*FileList
	c := NewController(d,
		WithInitialFiles(FileRefs{{Name: "a.txt", Path: "/a.txt"}}),
		WithOnChange(func(files *FileList) { changes = append(changes, files) }),
	)
	c.Mount()
	defer c.Unmount()

	c.Reset()

	if c.Selection() != nil {
		t.Error("Selection() should be nil after Reset")
	}
	if len(changes) != 1 || changes[0] != nil {
		t.Errorf("OnChange calls = %v, want exactly one nil call", changes)
	}

	// With the committed value cleared, the identical pick fires again.
	c.Open()
	ref := FileRef{Name: "a.txt", Path: "/a.txt"}
	d.completePick(ref)
	c.Reset()
	c.Open()
	if !d.completePick(ref) {
		t.Error("identical pick after Reset should still notify")
	}
}

func TestControllerResetWithoutTrigger(t *testing.T) {
	changes := 0
	c := NewController(nil,
		WithInitialFiles(FileRefs{{Name: "a.txt", Path: "/a.txt"}}),
		WithOnChange(func(*FileList) { changes++ }),
	)
	c.Mount()
	defer c.Unmount()

	c.Reset()

	if c.Selection() != nil {
		t.Error("Selection() should be nil after Reset")
	}
	if changes != 0 {
		t.Errorf("OnChange called %d times with no trigger, want 0", changes)
	}
}

func TestControllerResetOnOpenOrdering(t *testing.T) {
	d := newFakeDisplay()

	var activationsAtReset []int
	c := NewController(d,
		WithResetOnOpen(true),
		WithInitialFiles(FileRefs{{Name: "a.txt", Path: "/a.txt"}}),
		WithOnChange(func(files *FileList) {
			if files == nil {
				activationsAtReset = append(activationsAtReset, d.activations)
			}
		}),
	)
	c.Mount()
	defer c.Unmount()

	c.Open()

	if len(activationsAtReset) != 1 {
		t.Fatalf("reset callback fired %d times, want 1", len(activationsAtReset))
	}
	if activationsAtReset[0] != 0 {
		t.Error("reset must complete strictly before the trigger activates")
	}
	if d.activations != 1 {
		t.Errorf("activations = %d, want 1", d.activations)
	}
}

func TestControllerNoDisplayNoops(t *testing.T) {
	c := NewController(nil, WithOnChange(func(*FileList) {
		t.Error("OnChange must never fire without a display")
	}))

	// None of these may panic or invoke callbacks.
	c.Mount()
	c.Open()
	c.Reset()
	c.Unmount()
	c.Unmount()

	if c.Selection() != nil {
		t.Error("selection should stay nil")
	}
}

func TestControllerDriverBuildFailureDegrades(t *testing.T) {
	d := newFakeDisplay()
	d.buildErr = ErrNoDisplay

	c := NewController(d)
	c.Mount()
	defer c.Unmount()

	c.Open() // no trigger was built; must be a silent no-op
	if d.activations != 0 {
		t.Errorf("activations = %d, want 0", d.activations)
	}
}

func TestControllerMountIdempotent(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d)

	c.Mount()
	c.Mount()
	if d.attachedCount() != 1 {
		t.Errorf("attached triggers = %d after double Mount, want 1", d.attachedCount())
	}

	c.Unmount()
	if d.attachedCount() != 0 {
		t.Errorf("attached triggers = %d after Unmount, want 0", d.attachedCount())
	}
}

func TestControllerLateNotificationAfterUnmount(t *testing.T) {
	d := newFakeDisplay()

	changes := 0
	c := NewController(d, WithOnChange(func(*FileList) { changes++ }))
	c.Mount()
	c.Open()

	// Grab the live trigger, then unmount while the dialog is "open".
	trig := d.activeTrigger()
	c.Unmount()

	// The platform reports a pick after teardown. The cancelled
	// subscription must swallow it.
	trig.Commit(NewFileList(FileRef{Name: "late.txt", Path: "/late.txt"}))

	if changes != 0 {
		t.Errorf("OnChange called %d times after Unmount, want 0", changes)
	}
	if c.Selection() != nil {
		t.Error("selection mutated by a late notification")
	}
}

func TestControllerOpenWhileUnmounted(t *testing.T) {
	d := newFakeDisplay()
	c := NewController(d)

	c.Open() // before Mount
	if d.activations != 0 {
		t.Errorf("activations = %d before Mount, want 0", d.activations)
	}

	c.Mount()
	c.Unmount()
	c.Open() // after Unmount
	if d.activations != 0 {
		t.Errorf("activations = %d after Unmount, want 0", d.activations)
	}
}
