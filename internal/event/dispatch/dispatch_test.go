package dispatch

import (
	"context"
	"errors"
	"testing"
)

func TestExecutorSuccess(t *testing.T) {
	e := NewExecutor()
	var got any
	r := e.Execute(context.Background(), "payload", HandlerFunc(func(_ context.Context, ev any) error {
		got = ev
		return nil
	}))
	if !r.IsSuccess() {
		t.Errorf("expected success, got %+v", r)
	}
	if got != "payload" {
		t.Errorf("handler saw %v", got)
	}
}

func TestExecutorError(t *testing.T) {
	boom := errors.New("boom")
	r := NewExecutor().Execute(context.Background(), nil, HandlerFunc(func(context.Context, any) error {
		return boom
	}))
	if r.IsSuccess() || !errors.Is(r.Error, boom) {
		t.Errorf("expected boom, got %+v", r)
	}
}

func TestExecutorPanic(t *testing.T) {
	var reported any
	e := NewExecutor(WithExecutorPanicHandler(func(_ any, v any, stack []byte) {
		reported = v
		if len(stack) == 0 {
			t.Error("expected a stack trace")
		}
	}))

	r := e.Run(context.Background(), func() { panic("kaboom") })
	if !r.Panicked || r.PanicValue != "kaboom" {
		t.Errorf("expected recovered panic, got %+v", r)
	}
	if reported != "kaboom" {
		t.Errorf("panic handler saw %v", reported)
	}
}

func TestExecutorPanicHandlerPanics(t *testing.T) {
	e := NewExecutor(WithExecutorPanicHandler(func(any, any, []byte) { panic("again") }))
	r := e.Run(context.Background(), func() { panic("first") })
	if !r.Panicked {
		t.Error("expected panicked result")
	}
}

func TestExecutorSkipsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	r := NewExecutor().Run(ctx, func() { ran = true })
	if ran {
		t.Error("handler ran with cancelled context")
	}
	if !r.Skipped || !errors.Is(r.Error, context.Canceled) {
		t.Errorf("expected skipped result, got %+v", r)
	}
}

func TestSyncDispatcherStats(t *testing.T) {
	d := NewSyncDispatcher(WithPanicHandler(func(any, any, []byte) {}))
	ctx := context.Background()

	d.Dispatch(ctx, nil, HandlerFunc(func(context.Context, any) error { return nil }))
	d.Dispatch(ctx, nil, HandlerFunc(func(context.Context, any) error { return errors.New("x") }))
	d.Dispatch(ctx, nil, HandlerFunc(func(context.Context, any) error { panic("p") }))

	s := d.Stats()
	if s.Dispatched != 3 || s.Succeeded != 1 || s.Failed != 1 || s.Panicked != 1 {
		t.Errorf("unexpected stats %+v", s)
	}
}
