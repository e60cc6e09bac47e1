package layout

import "sync"

// Notifier fans a "layout settled" event out to its subscribers.
type Notifier struct {
	mu   sync.Mutex
	subs []func()
}

// Subscribe registers fn to run on every Settle.
func (n *Notifier) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	n.subs = append(n.subs, fn)
	n.mu.Unlock()
}

// Settle calls every subscriber in subscription order on the calling
// goroutine.
func (n *Notifier) Settle() {
	n.mu.Lock()
	subs := make([]func(), len(n.subs))
	copy(subs, n.subs)
	n.mu.Unlock()

	for _, fn := range subs {
		fn()
	}
}

// Subscribers reports how many callbacks are registered.
func (n *Notifier) Subscribers() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
