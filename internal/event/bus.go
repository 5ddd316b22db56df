package event

import (
	"context"
	"sync/atomic"

	"github.com/dshills/richeditor/internal/event/dispatch"
	"github.com/dshills/richeditor/internal/event/topic"
)

// Bus delivers events to subscribers synchronously.
// It is safe for concurrent use.
type Bus struct {
	registry   registry
	dispatcher *dispatch.SyncDispatcher
	config     busConfig

	published     atomic.Uint64
	delivered     atomic.Uint64
	handlerErrors atomic.Uint64
	handlerPanics atomic.Uint64
}

// Stats reports bus counters.
type Stats struct {
	EventsPublished   uint64
	EventsDelivered   uint64
	HandlerErrors     uint64
	HandlerPanics     uint64
	ActiveSubscribers int
}

// NewBus creates a bus.
func NewBus(opts ...BusOption) *Bus {
	cfg := defaultBusConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &Bus{config: cfg}
	b.dispatcher = dispatch.NewSyncDispatcher(
		dispatch.WithPanicHandler(func(ev any, v any, _ []byte) {
			b.config.panicHandler(ev, v)
		}),
	)
	return b
}

// Publish delivers event to every matching subscriber and returns once
// all of them ran. Handler errors are counted, not returned: one failing
// subscriber does not stop delivery to the rest.
func (b *Bus) Publish(ctx context.Context, event any) error {
	tp, ok := event.(TopicProvider)
	if !ok || tp.EventTopic() == "" {
		return ErrInvalidEvent
	}

	b.published.Add(1)
	for _, sub := range b.registry.match(tp.EventTopic()) {
		if !sub.IsActive() {
			continue
		}
		result := b.dispatcher.Dispatch(ctx, event, sub.handler)
		switch {
		case result.Skipped:
			return result.Error
		case result.Panicked:
			b.handlerPanics.Add(1)
		case result.Error != nil:
			b.handlerErrors.Add(1)
		default:
			b.delivered.Add(1)
			if sub.config.once {
				sub.Cancel()
				b.registry.remove(sub.id)
			}
		}
	}
	return nil
}

// Subscribe registers handler for events matching pattern.
func (b *Bus) Subscribe(pattern topic.Topic, handler Handler, opts ...SubscriptionOption) (Subscription, error) {
	if handler == nil {
		return nil, ErrNilHandler
	}
	if !pattern.IsValid() {
		return nil, ErrInvalidTopic
	}
	return b.registry.add(pattern, handler, opts...), nil
}

// SubscribeFunc registers a function handler.
func (b *Bus) SubscribeFunc(pattern topic.Topic, fn HandlerFunc, opts ...SubscriptionOption) (Subscription, error) {
	if fn == nil {
		return nil, ErrNilHandler
	}
	return b.Subscribe(pattern, fn, opts...)
}

// Unsubscribe cancels and removes sub.
func (b *Bus) Unsubscribe(sub Subscription) error {
	if sub == nil {
		return ErrInvalidSubscription
	}
	sub.Cancel()
	if !b.registry.remove(sub.ID()) {
		return ErrSubscriptionNotFound
	}
	return nil
}

// Stats returns the current counters.
func (b *Bus) Stats() Stats {
	return Stats{
		EventsPublished:   b.published.Load(),
		EventsDelivered:   b.delivered.Load(),
		HandlerErrors:     b.handlerErrors.Load(),
		HandlerPanics:     b.handlerPanics.Load(),
		ActiveSubscribers: b.registry.countActive(),
	}
}
