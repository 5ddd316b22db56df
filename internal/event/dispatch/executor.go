package dispatch

import (
	"context"
	"runtime/debug"
	"time"
)

// Executor runs handlers, recovering panics and measuring duration.
type Executor struct {
	panicHandler PanicHandler
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithExecutorPanicHandler sets the panic handler.
func WithExecutorPanicHandler(h PanicHandler) ExecutorOption {
	return func(e *Executor) {
		if h != nil {
			e.panicHandler = h
		}
	}
}

// NewExecutor creates an executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{panicHandler: defaultPanicHandler}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute runs handler with event. A done context skips the handler.
func (e *Executor) Execute(ctx context.Context, event any, handler Handler) (result Result) {
	select {
	case <-ctx.Done():
		return Result{Error: ctx.Err(), Skipped: true}
	default:
	}

	start := time.Now()
	defer func() {
		result.Duration = time.Since(start)
		if r := recover(); r != nil {
			stack := debug.Stack()
			result.Success = false
			result.Panicked = true
			result.PanicValue = r
			result.PanicStack = stack
			e.reportPanic(event, r, stack)
		}
	}()

	err := handler.Handle(ctx, event)
	return Result{Success: err == nil, Error: err}
}

// Run executes fn as a handler that ignores its event.
func (e *Executor) Run(ctx context.Context, fn func()) Result {
	return e.Execute(ctx, nil, HandlerFunc(func(context.Context, any) error {
		fn()
		return nil
	}))
}

func (e *Executor) reportPanic(event, value any, stack []byte) {
	defer func() {
		// A panicking panic handler must not escape.
		_ = recover()
	}()
	e.panicHandler(event, value, stack)
}
