package attach

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/richeditor/internal/event/dispatch"
)

// DefaultDelay is the attachment delay used when none is configured.
const DefaultDelay = 200 * time.Millisecond

// Scheduler runs fn at some later point, preserving submission order.
type Scheduler interface {
	Schedule(fn func()) error
}

// Queue fires callbacks in submission order after a fixed delay.
// It is safe for concurrent use.
type Queue struct {
	delay    time.Duration
	executor *dispatch.Executor

	mu      sync.Mutex
	pending []task
	stopped bool

	wake chan struct{}
	stop chan struct{}
	done chan struct{}

	fired   atomic.Uint64
	dropped atomic.Uint64
}

type task struct {
	due time.Time
	fn  func()
}

// Option configures a Queue.
type Option func(*Queue)

// WithDelay sets the attachment delay. Negative values are treated as 0.
func WithDelay(d time.Duration) Option {
	return func(q *Queue) {
		if d < 0 {
			d = 0
		}
		q.delay = d
	}
}

// WithPanicHandler sets the handler called when a callback panics.
func WithPanicHandler(h dispatch.PanicHandler) Option {
	return func(q *Queue) {
		q.executor = dispatch.NewExecutor(dispatch.WithExecutorPanicHandler(h))
	}
}

// NewQueue creates a queue and starts its worker.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		delay:    DefaultDelay,
		executor: dispatch.NewExecutor(),
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(q)
	}
	go q.worker()
	return q
}

// Delay returns the configured delay.
func (q *Queue) Delay() time.Duration {
	return q.delay
}

// Schedule queues fn to run after the delay.
func (q *Queue) Schedule(fn func()) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrStopped
	}
	q.pending = append(q.pending, task{due: time.Now().Add(q.delay), fn: fn})
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
	return nil
}

// Pending returns the number of callbacks not yet fired.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Fired returns the number of callbacks that ran.
func (q *Queue) Fired() uint64 {
	return q.fired.Load()
}

// Dropped returns the number of callbacks discarded by Stop.
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}

// Stop discards pending callbacks and waits for the worker to exit or
// for ctx to expire. A callback already running is allowed to finish.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		return ErrStopped
	}
	q.stopped = true
	q.dropped.Add(uint64(len(q.pending)))
	q.pending = nil
	close(q.stop)
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *Queue) worker() {
	defer close(q.done)

	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.mu.Unlock()
			select {
			case <-q.wake:
				continue
			case <-q.stop:
				return
			}
		}
		next := q.pending[0]
		q.mu.Unlock()

		if wait := time.Until(next.due); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-q.stop:
				timer.Stop()
				return
			}
		}

		q.mu.Lock()
		if q.stopped {
			q.mu.Unlock()
			return
		}
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.executor.Run(context.Background(), next.fn)
		q.fired.Add(1)
	}
}
