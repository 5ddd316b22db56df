package event

import (
	"sort"
	"sync"

	"github.com/dshills/richeditor/internal/event/topic"
)

// registry stores subscriptions ordered by priority, then by age.
type registry struct {
	mu   sync.RWMutex
	subs []*subscription
	next uint64
}

func (r *registry) add(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) *subscription {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.next++
	sub := newSubscription(pattern, handler, r.next, opts...)
	r.subs = append(r.subs, sub)
	sort.SliceStable(r.subs, func(i, j int) bool {
		a, b := r.subs[i], r.subs[j]
		if a.config.priority != b.config.priority {
			return a.config.priority < b.config.priority
		}
		return a.seq < b.seq
	})
	return sub
}

func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.id == id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return true
		}
	}
	return false
}

// match returns the active subscriptions whose pattern matches t.
// The returned slice is a snapshot; handlers may subscribe or
// unsubscribe while it is being delivered.
func (r *registry) match(t topic.Topic) []*subscription {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*subscription
	for _, s := range r.subs {
		if s.IsActive() && t.Matches(s.pattern) {
			out = append(out, s)
		}
	}
	return out
}

func (r *registry) countActive() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, s := range r.subs {
		if s.IsActive() {
			n++
		}
	}
	return n
}
