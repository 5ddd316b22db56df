package attach

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestQueueFiresInOrder(t *testing.T) {
	q := NewQueue(WithDelay(5 * time.Millisecond))
	defer q.Stop(context.Background())

	var mu sync.Mutex
	var got []int
	done := make(chan struct{})
	for i := 0; i < 5; i++ {
		i := i
		if err := q.Schedule(func() {
			mu.Lock()
			got = append(got, i)
			n := len(got)
			mu.Unlock()
			if n == 5 {
				close(done)
			}
		}); err != nil {
			t.Fatalf("schedule: %v", err)
		}
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("callbacks did not fire")
	}

	mu.Lock()
	defer mu.Unlock()
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4}, got); diff != "" {
		t.Errorf("firing order mismatch (-want +got):\n%s", diff)
	}
	if q.Fired() != 5 {
		t.Errorf("Fired = %d, want 5", q.Fired())
	}
}

func TestQueueHonoursDelay(t *testing.T) {
	delay := 30 * time.Millisecond
	q := NewQueue(WithDelay(delay))
	defer q.Stop(context.Background())

	start := time.Now()
	fired := make(chan time.Time, 1)
	_ = q.Schedule(func() { fired <- time.Now() })

	select {
	case at := <-fired:
		if at.Sub(start) < delay {
			t.Errorf("fired after %v, want at least %v", at.Sub(start), delay)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestQueueStopDropsPending(t *testing.T) {
	q := NewQueue(WithDelay(time.Hour))
	ran := false
	_ = q.Schedule(func() { ran = true })
	_ = q.Schedule(func() { ran = true })

	if q.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", q.Pending())
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := q.Stop(ctx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if ran {
		t.Error("pending callback ran after Stop")
	}
	if q.Dropped() != 2 || q.Pending() != 0 {
		t.Errorf("Dropped = %d, Pending = %d", q.Dropped(), q.Pending())
	}
	if err := q.Schedule(func() {}); !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}
	if err := q.Stop(ctx); !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped on second Stop, got %v", err)
	}
}

func TestQueueRecoversPanics(t *testing.T) {
	recovered := make(chan any, 1)
	q := NewQueue(
		WithDelay(0),
		WithPanicHandler(func(_ any, v any, _ []byte) { recovered <- v }),
	)
	defer q.Stop(context.Background())

	after := make(chan struct{})
	_ = q.Schedule(func() { panic("bad presenter") })
	_ = q.Schedule(func() { close(after) })

	select {
	case v := <-recovered:
		if v != "bad presenter" {
			t.Errorf("recovered %v", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("panic not reported")
	}
	select {
	case <-after:
	case <-time.After(2 * time.Second):
		t.Fatal("worker stopped after a panic")
	}
}

func TestWithDelayNegative(t *testing.T) {
	q := NewQueue(WithDelay(-time.Second))
	defer q.Stop(context.Background())
	if q.Delay() != 0 {
		t.Errorf("Delay = %v, want 0", q.Delay())
	}
}

func TestManual(t *testing.T) {
	m := NewManual()
	var got []string
	_ = m.Schedule(func() {
		got = append(got, "a")
		_ = m.Schedule(func() { got = append(got, "c") })
	})
	_ = m.Schedule(func() { got = append(got, "b") })

	if m.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", m.Pending())
	}
	if n := m.RunPending(); n != 3 {
		t.Errorf("RunPending ran %d, want 3", n)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if m.RunNext() {
		t.Error("RunNext on empty scheduler reported work")
	}

	_ = m.Schedule(func() { t.Error("dropped callback ran") })
	m.Stop()
	if m.RunPending() != 0 {
		t.Error("callbacks survived Stop")
	}
	if err := m.Schedule(func() {}); !errors.Is(err, ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", err)
	}
}
