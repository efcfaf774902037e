// Package state holds the in-memory mirror of server-side entities:
// the auth session plus one store per list resource, each with keyed
// detail caches for the entity whose detail view is open. Stores fold
// command outcomes into state transitions; they never perform network
// work themselves.
package state

import "sync"

// Status is the lifecycle of one fetchable piece of state. Neither
// terminal status is final: the next command re-enters StatusLoading.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// notifier fans a change signal out to subscribers, the hook the view
// layer re-renders from. Callbacks run outside store locks.
type notifier struct {
	mu   sync.Mutex
	subs []func()
}

// Subscribe registers fn to run after every state change.
func (n *notifier) Subscribe(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = append(n.subs, fn)
}

func (n *notifier) notify() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}
