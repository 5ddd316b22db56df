package attach

import "sync"

// Manual holds callbacks until RunPending is called.
// It is safe for concurrent use.
type Manual struct {
	mu      sync.Mutex
	pending []func()
	stopped bool
}

// NewManual creates a manual scheduler.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule queues fn.
func (m *Manual) Schedule(fn func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return ErrStopped
	}
	m.pending = append(m.pending, fn)
	return nil
}

// Pending returns the number of queued callbacks.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// RunPending runs every queued callback in order, including callbacks
// scheduled while running, and returns how many ran.
func (m *Manual) RunPending() int {
	n := 0
	for m.RunNext() {
		n++
	}
	return n
}

// RunNext runs the oldest queued callback. It reports whether one ran.
func (m *Manual) RunNext() bool {
	m.mu.Lock()
	if len(m.pending) == 0 {
		m.mu.Unlock()
		return false
	}
	fn := m.pending[0]
	m.pending = m.pending[1:]
	m.mu.Unlock()

	fn()
	return true
}

// Stop discards queued callbacks and rejects new ones.
func (m *Manual) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopped = true
	m.pending = nil
}
