package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/dshills/richeditor/internal/engine/attach"
	"github.com/dshills/richeditor/internal/event"
)

// Default configuration values.
const (
	DefaultPlaceholder = "input here"
	DefaultAttachDelay = attach.DefaultDelay
)

// Option configures an Editor during creation.
type Option func(*Editor)

// WithPresenter sets the presenter receiving change notifications.
func WithPresenter(p Presenter) Option {
	return func(e *Editor) {
		if p != nil {
			e.presenter = p
		}
	}
}

// WithHost sets the host used by InsertImageFromPath.
func WithHost(h Host) Option {
	return func(e *Editor) {
		e.host = h
	}
}

// WithScheduler sets the scheduler for deferred image attachment.
// When unset, the editor runs its own attach.Queue.
func WithScheduler(s attach.Scheduler) Option {
	return func(e *Editor) {
		e.scheduler = s
	}
}

// WithAttachDelay sets the delay of the editor's own attach.Queue.
// It has no effect when WithScheduler is used.
func WithAttachDelay(d time.Duration) Option {
	return func(e *Editor) {
		if d >= 0 {
			e.attachDelay = d
		}
	}
}

// WithBus publishes every change on bus in addition to the presenter.
func WithBus(bus *event.Bus) Option {
	return func(e *Editor) {
		e.bus = bus
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithPlaceholder sets the hint of the first text block.
func WithPlaceholder(hint string) Option {
	return func(e *Editor) {
		e.placeholder = hint
	}
}

// WithMaxImageWidth caps the decode width used by InsertImageFromPath.
// Zero means the viewport width.
func WithMaxImageWidth(w int) Option {
	return func(e *Editor) {
		if w >= 0 {
			e.maxImageWidth = w
		}
	}
}
