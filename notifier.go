package dialogkit

import (
	"sync"
	"sync/atomic"
)

// ============================================================================
// Change Notification
// ============================================================================

// Subscription is a cancellable binding between a trigger's change
// notification and a handler. Cancelling it is the only mechanism for
// suppressing a late-arriving notification after unmount: the notifier
// checks the flag before invoking the handler, and handlers may check
// Cancelled themselves before mutating state.
type Subscription struct {
	cancelled  atomic.Bool
	unregister func()
}

// Cancel detaches the subscription. Safe to call multiple times;
// cancelling an already-cancelled subscription is a no-op.
func (s *Subscription) Cancel() {
	if s == nil {
		return
	}
	if s.cancelled.Swap(true) {
		return
	}
	if s.unregister != nil {
		s.unregister()
	}
}

// Cancelled reports whether Cancel has been called.
func (s *Subscription) Cancelled() bool {
	return s != nil && s.cancelled.Load()
}

// ChangeNotifier is the shared change-notification plumbing for trigger
// implementations. Unlike a single-use change token it is multi-shot: a
// trigger signals once per committed pick, for as long as it stays
// attached.
//
// Backends embed it (usually via [TriggerState]) and call Signal when the
// platform reports a committed selection.
type ChangeNotifier struct {
	mu   sync.RWMutex
	subs []*subEntry
}

type subEntry struct {
	sub *Subscription
	fn  func()
}

// Subscribe registers a callback and returns its subscription.
func (n *ChangeNotifier) Subscribe(fn func()) *Subscription {
	e := &subEntry{fn: fn}
	sub := &Subscription{}

	n.mu.Lock()
	n.subs = append(n.subs, e)
	index := len(n.subs) - 1
	n.mu.Unlock()

	sub.unregister = func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if index < len(n.subs) {
			// Set to nil instead of removing to avoid index shifting
			n.subs[index] = nil
		}
	}
	e.sub = sub
	return sub
}

// Signal invokes all live subscribers. Subscriptions cancelled before the
// callback runs are skipped even if they were captured in the snapshot.
func (n *ChangeNotifier) Signal() {
	n.mu.RLock()
	entries := make([]*subEntry, len(n.subs))
	copy(entries, n.subs)
	n.mu.RUnlock()

	for _, e := range entries {
		if e == nil || e.fn == nil {
			continue
		}
		if e.sub != nil && e.sub.Cancelled() {
			continue
		}
		e.fn()
	}
}

// CancelAll cancels every registered subscription. Called by backends on
// detach so nothing outlives the trigger.
func (n *ChangeNotifier) CancelAll() {
	n.mu.RLock()
	entries := make([]*subEntry, len(n.subs))
	copy(entries, n.subs)
	n.mu.RUnlock()

	for _, e := range entries {
		if e != nil {
			e.sub.Cancel()
		}
	}
}
