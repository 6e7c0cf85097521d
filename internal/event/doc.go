// Package event provides the synchronous event bus for Keyline.
//
// Components publish typed events after they change state; subscribers
// (the terminal redraw marker, Lua hooks, debug logging) react without the
// publisher knowing about them.
//
// # Topics
//
// Events use hierarchical topics with dot notation, and subscriptions may
// use the wildcards described in package topic:
//
//	buffer.changed   - document content changed
//	cursor.moved     - caret or selection changed
//	buffer.saved     - document written to disk
//	config.reloaded  - configuration file reloaded
//
// # Delivery
//
// Publish delivers to every matching subscription in the caller's
// goroutine, ordered by priority and then by subscription order. A handler
// that panics is isolated: the panic is recovered and reported as a
// PanicError, and the remaining handlers still run.
//
// # Usage
//
//	bus := event.NewBus()
//	sub, _ := bus.SubscribeFunc("buffer.*", func(ctx context.Context, ev any) error {
//		e := ev.(event.Event[event.BufferChanged])
//		log.Printf("revision %d", e.Payload.Revision)
//		return nil
//	})
//	defer bus.Unsubscribe(sub)
//
//	bus.Publish(ctx, event.NewEvent(event.TopicBufferChanged, event.BufferChanged{Revision: 3}, "engine"))
package event
