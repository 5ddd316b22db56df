package dispatch

import (
	"context"
	"time"
)

// Handler processes one event.
// This mirrors event.Handler to avoid an import cycle.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// Result is the outcome of one handler execution.
type Result struct {
	// Success is true if the handler returned nil without panicking.
	Success bool

	// Error is the error returned by the handler, if any.
	Error error

	// Panicked is true if the handler panicked.
	Panicked bool

	// PanicValue is the recovered value when Panicked is true.
	PanicValue any

	// PanicStack is the stack captured at the panic.
	PanicStack []byte

	// Duration is the handler execution time.
	Duration time.Duration

	// Skipped is true if the handler did not run because ctx was done.
	Skipped bool
}

// IsSuccess reports whether the handler completed cleanly.
func (r Result) IsSuccess() bool {
	return r.Success && !r.Panicked && r.Error == nil
}

// PanicHandler is called when a handler panics.
type PanicHandler func(event any, panicValue any, stack []byte)

func defaultPanicHandler(any, any, []byte) {}
