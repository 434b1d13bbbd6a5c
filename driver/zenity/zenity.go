// Package zenity provides a native-dialog display driver for dialogkit
// backed by github.com/ncruces/zenity.
//
// Activation opens the platform's real open-file dialog. The zenity call
// blocks, so it runs in its own goroutine and the committed pick arrives
// as a change notification; cancellation by the user is a silent no-op.
package zenity

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/ncruces/zenity"

	"github.com/gobeaver/dialogkit"
)

// Display shows native open-file dialogs.
type Display struct {
	// Title is the dialog window title.
	Title string

	// InitialPath preselects the directory the dialog opens in.
	InitialPath string
}

// New creates a native display, or nil when no dialog tool is available
// in this environment. A nil display is the degraded no-op capability,
// not an error.
func New() *Display {
	if !zenity.IsAvailable() {
		return nil
	}
	return &Display{}
}

// NewTrigger implements dialogkit.Display. It is nil-receiver safe so a
// nil *Display stored in a dialogkit.Display still degrades to a no-op
// controller.
func (d *Display) NewTrigger(o *dialogkit.Options) (dialogkit.Trigger, error) {
	if d == nil {
		return nil, dialogkit.ErrNoDisplay
	}
	return &Trigger{
		display: d,
		opts:    o,
		filter:  dialogkit.ParseAccept(o.Accept),
	}, nil
}

// Trigger drives one native dialog per activation.
type Trigger struct {
	dialogkit.TriggerState

	display *Display
	opts    *dialogkit.Options
	filter  dialogkit.AcceptFilter

	mu       sync.Mutex
	attached bool
}

// Attach implements dialogkit.Trigger. Native dialogs need no shared
// resources, so attachment only marks the trigger live.
func (t *Trigger) Attach() error {
	t.mu.Lock()
	t.attached = true
	t.mu.Unlock()
	return nil
}

// Detach implements dialogkit.Trigger. A dialog still open keeps running
// until the user closes it, but its result is discarded: every
// subscription is cancelled and the commit path checks liveness.
func (t *Trigger) Detach() {
	t.mu.Lock()
	t.attached = false
	t.mu.Unlock()
	t.CancelAll()
}

// Activate implements dialogkit.Trigger: it opens the native dialog in a
// goroutine and returns immediately.
func (t *Trigger) Activate() {
	t.mu.Lock()
	live := t.attached
	t.mu.Unlock()
	if !live {
		return
	}

	go t.run()
}

// MultiSelect implements dialogkit.CanMultiSelect.
func (t *Trigger) MultiSelect() bool { return t.opts.Multiple }

// PickDirectory implements dialogkit.CanPickDirectory.
func (t *Trigger) PickDirectory() bool { return t.opts.Directory }

func (t *Trigger) run() {
	opts := t.dialogOptions()

	var paths []string
	var err error
	if t.opts.Multiple {
		paths, err = zenity.SelectFileMultiple(opts...)
	} else {
		var path string
		path, err = zenity.SelectFile(opts...)
		if path != "" {
			paths = []string{path}
		}
	}
	if err != nil || len(paths) == 0 {
		// Cancelled or failed: no state change, no callback.
		return
	}

	t.mu.Lock()
	live := t.attached
	t.mu.Unlock()
	if !live {
		return
	}

	t.Commit(fileList(paths))
}

func (t *Trigger) dialogOptions() []zenity.Option {
	opts := []zenity.Option{zenity.Title(t.display.Title)}
	if t.display.InitialPath != "" {
		opts = append(opts, zenity.Filename(t.display.InitialPath))
	}
	if t.opts.Directory {
		opts = append(opts, zenity.Directory())
		return opts
	}
	if !t.filter.All() {
		opts = append(opts, zenity.FileFilters{
			{Name: t.filter.String(), Patterns: t.filter.Patterns(), CaseFold: true},
		})
	}
	return opts
}

// fileList builds the canonical selection from the paths the dialog
// reported, in the order it reported them.
func fileList(paths []string) *dialogkit.FileList {
	refs := make([]dialogkit.FileRef, 0, len(paths))
	for _, p := range paths {
		ref := dialogkit.FileRef{
			Name:        filepath.Base(p),
			Path:        p,
			ContentType: dialogkit.GuessContentType(p),
		}
		if info, err := os.Stat(p); err == nil {
			ref.Size = info.Size()
			ref.ModTime = info.ModTime()
		}
		refs = append(refs, ref)
	}
	return dialogkit.NewFileList(refs...)
}
