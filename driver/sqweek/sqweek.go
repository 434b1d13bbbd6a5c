// Package sqweek provides a native-dialog display driver for dialogkit
// backed by github.com/sqweek/dialog.
//
// The underlying toolkit only supports single-file picks, so the driver
// does not implement dialogkit.CanMultiSelect: Options.Multiple degrades
// to a one-element selection. The dialog call blocks its thread, so every
// activation runs in its own goroutine.
package sqweek

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sqweek/dialog"

	"github.com/gobeaver/dialogkit"
)

// Display shows native open-file dialogs.
type Display struct {
	// Title is the dialog window title.
	Title string

	// InitialPath is the directory the dialog starts in.
	InitialPath string
}

// New creates a native display.
func New() *Display {
	return &Display{}
}

// NewTrigger implements dialogkit.Display.
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

// Attach implements dialogkit.Trigger.
func (t *Trigger) Attach() error {
	t.mu.Lock()
	t.attached = true
	t.mu.Unlock()
	return nil
}

// Detach implements dialogkit.Trigger.
func (t *Trigger) Detach() {
	t.mu.Lock()
	t.attached = false
	t.mu.Unlock()
	t.CancelAll()
}

// Activate implements dialogkit.Trigger. The sqweek builders block the
// calling thread, so the dialog runs in a goroutine and the pick comes
// back as a change notification.
func (t *Trigger) Activate() {
	t.mu.Lock()
	live := t.attached
	t.mu.Unlock()
	if !live {
		return
	}

	go t.run()
}

// PickDirectory implements dialogkit.CanPickDirectory.
func (t *Trigger) PickDirectory() bool { return t.opts.Directory }

func (t *Trigger) run() {
	var path string
	var err error
	if t.opts.Directory {
		path, err = t.directoryBuilder().Browse()
	} else {
		path, err = t.fileBuilder().Load()
	}
	if err != nil || path == "" {
		// dialog.ErrCancelled and failures alike: silent no-op.
		return
	}

	t.mu.Lock()
	live := t.attached
	t.mu.Unlock()
	if !live {
		return
	}

	ref := dialogkit.FileRef{
		Name:        filepath.Base(path),
		Path:        path,
		ContentType: dialogkit.GuessContentType(path),
	}
	if info, statErr := os.Stat(path); statErr == nil {
		ref.Size = info.Size()
		ref.ModTime = info.ModTime()
	}
	t.Commit(dialogkit.NewFileList(ref))
}

func (t *Trigger) fileBuilder() *dialog.FileBuilder {
	b := dialog.File().Title(t.display.Title)
	if t.display.InitialPath != "" {
		b = b.SetStartDir(t.display.InitialPath)
	}
	if exts := filterExtensions(t.filter); len(exts) > 0 {
		b = b.Filter(t.filter.String(), exts...)
	}
	return b
}

func (t *Trigger) directoryBuilder() *dialog.DirectoryBuilder {
	return dialog.Directory().Title(t.display.Title)
}

// filterExtensions converts accept patterns into the bare extensions the
// sqweek filter API expects ("*.png" -> "png"). A filter that accepts
// everything yields none, leaving the dialog unfiltered.
func filterExtensions(f dialogkit.AcceptFilter) []string {
	if f.All() {
		return nil
	}
	var exts []string
	for _, p := range f.Patterns() {
		ext := strings.TrimPrefix(p, "*.")
		if ext != "" && ext != "*" {
			exts = append(exts, ext)
		}
	}
	return exts
}
