package app

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/dshills/richeditor/internal/event"
	"github.com/dshills/richeditor/internal/event/events"
	"github.com/dshills/richeditor/internal/event/topic"
)

// Stats counts document events over a session.
type Stats struct {
	blocksInserted atomic.Uint64
	blocksRemoved  atomic.Uint64
	textEdits      atomic.Uint64
	imagesAttached atomic.Uint64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	BlocksInserted uint64
	BlocksRemoved  uint64
	TextEdits      uint64
	ImagesAttached uint64
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		BlocksInserted: s.blocksInserted.Load(),
		BlocksRemoved:  s.blocksRemoved.Load(),
		TextEdits:      s.textEdits.Load(),
		ImagesAttached: s.imagesAttached.Load(),
	}
}

// subscribe wires the stats counters and debug logging to the bus.
func (app *Application) subscribe() error {
	count := func(c *atomic.Uint64) event.HandlerFunc {
		return func(context.Context, any) error {
			c.Add(1)
			return nil
		}
	}

	subs := []struct {
		topic   topic.Topic
		handler event.HandlerFunc
	}{
		{events.TopicBlockInserted, count(&app.stats.blocksInserted)},
		{events.TopicBlockRemoved, count(&app.stats.blocksRemoved)},
		{events.TopicTextChanged, count(&app.stats.textEdits)},
		{events.TopicImageAttached, count(&app.stats.imagesAttached)},
	}
	for _, s := range subs {
		if _, err := app.bus.SubscribeFunc(s.topic, s.handler); err != nil {
			return err
		}
	}

	_, err := app.bus.SubscribeFunc("**", func(_ context.Context, ev any) error {
		if tp, ok := ev.(event.TopicProvider); ok {
			app.logger.Debug("event", zap.Stringer("topic", tp.EventTopic()))
		}
		return nil
	}, event.WithPriority(event.PriorityLow))
	return err
}
