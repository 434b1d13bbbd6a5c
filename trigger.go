package dialogkit

import (
	"encoding/binary"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// NewTrigger builds a trigger for the given display, configured from o.
// A nil display means no display capability exists: the result is a nil
// Trigger, and all downstream operations on it are no-ops rather than
// errors. Construction has no side effects beyond the trigger object
// itself; the trigger is not attached to the display yet.
func NewTrigger(d Display, o *Options) Trigger {
	if d == nil {
		return nil
	}
	if o == nil {
		o = NewOptions()
	}
	t, err := d.NewTrigger(o)
	if err != nil {
		// Absorb-and-no-op: a backend that cannot build a trigger behaves
		// like a missing display.
		return nil
	}
	return t
}

// ============================================================================
// TriggerState (shared backend plumbing)
// ============================================================================

// TriggerState owns the committed selection value of a trigger and its
// change notifier. Backends embed it and report picks through Commit; the
// surrounding driver only has to implement Attach/Detach/Activate.
//
// Commit suppresses notifications for a selection identical to the one
// already committed, matching native trigger behavior: picking the same
// files again does not fire a change. ClearValue forgets the committed
// digest so an identical re-pick fires again, which is what makes a
// controller Reset observable.
type TriggerState struct {
	ChangeNotifier

	mu     sync.Mutex
	files  *FileList
	digest uint64
}

// Files returns the last committed selection, or nil before any pick.
func (s *TriggerState) Files() *FileList {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files
}

// ClearValue forgets the committed value and its digest.
func (s *TriggerState) ClearValue() {
	s.mu.Lock()
	s.files = nil
	s.digest = 0
	s.mu.Unlock()
}

// Commit records a committed pick and signals subscribers. It reports
// whether a notification was raised; a pick identical to the currently
// committed value is suppressed.
func (s *TriggerState) Commit(files *FileList) bool {
	d := selectionDigest(files)

	s.mu.Lock()
	if s.files != nil && s.digest == d {
		s.mu.Unlock()
		return false
	}
	s.files = files
	s.digest = d
	s.mu.Unlock()

	s.Signal()
	return true
}

// selectionDigest fingerprints an ordered selection over (path, size,
// modtime). Used only for same-value suppression, not integrity.
func selectionDigest(files *FileList) uint64 {
	h := xxhash.New()
	var buf [8]byte
	for i := 0; i < files.Len(); i++ {
		ref := files.Item(i)
		_, _ = h.WriteString(ref.Path)
		_, _ = h.Write([]byte{0})
		binary.LittleEndian.PutUint64(buf[:], uint64(ref.Size))
		_, _ = h.Write(buf[:])
		binary.LittleEndian.PutUint64(buf[:], uint64(ref.ModTime.UnixNano()))
		_, _ = h.Write(buf[:])
	}
	_, _ = h.WriteString(strconv.Itoa(files.Len()))
	return h.Sum64()
}
