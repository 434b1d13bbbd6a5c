// Package dropdir provides a headless display driver for dialogkit backed
// by a watched drop directory.
//
// There is no dialog to show: activating the trigger arms a watcher on the
// configured directory, and the files that appear there before the
// debounce window closes become the committed selection. This gives
// server-side and kiosk environments a working "pick files" flow with the
// same controller contract as the native backends.
package dropdir

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gobwas/glob"

	"github.com/gobeaver/dialogkit"
)

const defaultDebounce = 500 * time.Millisecond

// Display is the drop-directory capability.
type Display struct {
	// Path is the watched directory. It must exist.
	Path string

	// Debounce is how long the trigger keeps collecting files after the
	// last event before committing the selection.
	Debounce time.Duration

	// Pattern optionally restricts collected files by name glob, on top
	// of the per-trigger accept filter.
	Pattern string
}

// New creates a drop-directory display for the given path.
func New(path string) *Display {
	return &Display{Path: path, Debounce: defaultDebounce}
}

// NewTrigger implements dialogkit.Display.
func (d *Display) NewTrigger(o *dialogkit.Options) (dialogkit.Trigger, error) {
	if d == nil {
		return nil, dialogkit.ErrNoDisplay
	}
	if info, err := os.Stat(d.Path); err != nil || !info.IsDir() {
		return nil, &dialogkit.OpError{Op: "watch", Driver: "dropdir", Err: dialogkit.ErrNoDisplay}
	}

	t := &Trigger{
		display:  d,
		opts:     o,
		filter:   dialogkit.ParseAccept(o.Accept),
		debounce: d.Debounce,
	}
	if t.debounce <= 0 {
		t.debounce = defaultDebounce
	}
	if d.Pattern != "" && d.Pattern != "*" {
		if g, err := glob.Compile(d.Pattern); err == nil {
			t.nameGlob = g
		}
	}
	return t, nil
}

// Trigger watches the drop directory while armed.
type Trigger struct {
	dialogkit.TriggerState

	display  *Display
	opts     *dialogkit.Options
	filter   dialogkit.AcceptFilter
	nameGlob glob.Glob
	debounce time.Duration

	mu         sync.Mutex
	watcher    *fsnotify.Watcher
	armed      bool
	candidates []string
	seen       map[string]bool
	timer      *time.Timer
	done       chan struct{}
}

// Attach implements dialogkit.Trigger: it starts the directory watcher.
func (t *Trigger) Attach() error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return &dialogkit.OpError{Op: "watch", Driver: "dropdir", Err: err}
	}
	if err := w.Add(t.display.Path); err != nil {
		_ = w.Close()
		return &dialogkit.OpError{Op: "watch", Driver: "dropdir", Err: err}
	}

	done := make(chan struct{})
	t.mu.Lock()
	t.watcher = w
	t.done = done
	t.mu.Unlock()

	go t.loop(w, done)
	return nil
}

// Detach implements dialogkit.Trigger: it stops the watcher and cancels
// every subscription. Idempotent.
func (t *Trigger) Detach() {
	t.mu.Lock()
	w := t.watcher
	done := t.done
	t.watcher = nil
	t.done = nil
	t.armed = false
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()

	if w != nil {
		_ = w.Close()
	}
	if done != nil {
		close(done)
	}
	t.CancelAll()
}

// Activate implements dialogkit.Trigger: it arms the collection window.
// Files dropped into the directory from now on accumulate; the selection
// commits once the directory has been quiet for the debounce interval.
func (t *Trigger) Activate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.watcher == nil {
		return
	}
	t.armed = true
	t.candidates = nil
	t.seen = make(map[string]bool)
}

// MultiSelect implements dialogkit.CanMultiSelect.
func (t *Trigger) MultiSelect() bool { return t.opts.Multiple }

// loop forwards watcher events until the trigger detaches.
func (t *Trigger) loop(w *fsnotify.Watcher, done chan struct{}) {
	for {
		select {
		case <-done:
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				t.record(event.Name)
			}
		case _, ok := <-w.Errors:
			if !ok {
				return
			}
			// Watcher errors do not tear the trigger down; the next
			// usable event still counts.
		}
	}
}

// record adds a dropped file to the pending pick and (re)starts the
// debounce timer.
func (t *Trigger) record(path string) {
	name := filepath.Base(path)

	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.armed || t.seen[path] {
		return
	}
	if t.nameGlob != nil && !t.nameGlob.Match(name) {
		return
	}
	t.seen[path] = true
	t.candidates = append(t.candidates, path)

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.debounce, t.flush)
}

// flush closes the collection window and commits whatever passed the
// accept filter. An empty surviving set behaves like a dismissed dialog.
func (t *Trigger) flush() {
	t.mu.Lock()
	if !t.armed {
		t.mu.Unlock()
		return
	}
	t.armed = false
	paths := t.candidates
	t.candidates = nil
	t.seen = nil
	t.timer = nil
	t.mu.Unlock()

	var refs []dialogkit.FileRef
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		ref := dialogkit.FileRef{
			Name:        filepath.Base(p),
			Path:        p,
			Size:        info.Size(),
			ModTime:     info.ModTime(),
			ContentType: dialogkit.GuessContentType(p),
		}
		if !t.filter.Match(&ref) {
			continue
		}
		refs = append(refs, ref)
		if !t.opts.Multiple {
			break
		}
	}
	if len(refs) == 0 {
		return
	}

	t.Commit(dialogkit.NewFileList(refs...))
}
