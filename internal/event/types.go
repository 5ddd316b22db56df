package event

import "context"

// Priority orders handlers on the same event. Lower values run first.
type Priority int

const (
	// PriorityCritical is for presenters that must observe changes first.
	PriorityCritical Priority = 0

	// PriorityNormal is the default.
	PriorityNormal Priority = 200

	// PriorityLow is for logging and diagnostics.
	PriorityLow Priority = 300
)

// Handler processes an event. The event is type-erased; handlers assert
// the concrete Event[T] they expect.
type Handler interface {
	Handle(ctx context.Context, event any) error
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, event any) error

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, event any) error {
	return f(ctx, event)
}

// PayloadHandler builds a handler that only sees events carrying a T
// payload. Events of other types are ignored.
func PayloadHandler[T any](fn func(ctx context.Context, payload T) error) HandlerFunc {
	return func(ctx context.Context, ev any) error {
		typed, ok := ev.(Event[T])
		if !ok {
			return nil
		}
		return fn(ctx, typed.Payload)
	}
}

// PanicHandler is called when a handler panics.
type PanicHandler func(event any, recovered any)
