// Package event provides the notification bus the router publishes to.
//
// Events are typed values wrapped in Event[T] and addressed by a
// hierarchical topic. Subscribers register a handler for a topic pattern
// and are called synchronously, in subscription order, on the publishing
// goroutine.
//
// # Usage
//
//	bus := event.NewBus()
//	sub, err := bus.Subscribe("ui.shortcut.*", func(ctx context.Context, ev any) error {
//	    e := ev.(event.Event[events.ShortcutUnhandled])
//	    return handle(e.Payload.Command)
//	})
//
//	err = bus.Publish(ctx, event.NewEvent(events.TopicShortcutUnhandled, payload, "router"))
//
// Handler errors and panics do not stop delivery to the remaining
// subscribers; they are joined into the error Publish returns.
package event
