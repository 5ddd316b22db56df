// Package event provides the synchronous event bus that carries document
// and cursor changes from the editing engine to interested parties.
//
// Events are typed values wrapped in Event[T]. Each carries a topic from
// the topic package and standard metadata (id, timestamp, source).
//
// Delivery is synchronous: Publish runs every matching handler in the
// publisher's goroutine, in priority order, before it returns. This keeps
// the ordering of structural changes exactly as the engine issued them.
// Handler panics are recovered and reported to the configured panic
// handler.
//
// Basic usage:
//
//	bus := event.NewBus()
//	sub, _ := bus.SubscribeFunc("document.**", func(ctx context.Context, ev any) error {
//	    e := ev.(event.Event[events.BlockInserted])
//	    fmt.Println(e.Payload.Index)
//	    return nil
//	})
//	defer bus.Unsubscribe(sub)
package event
