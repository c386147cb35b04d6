package events

import (
	"github.com/kelindar/event"
)

// Bus wraps kelindar/event dispatcher for event broadcasting
type Bus struct {
	dispatcher *event.Dispatcher
}

// New creates a new event bus
func New() *Bus {
	return &Bus{
		dispatcher: event.NewDispatcher(),
	}
}

// Publish publishes an event to all subscribers
// Usage: bus.Publish(BatteryStateChangedEvent{...})
func (b *Bus) Publish(ev Event) {
	// Use type switch to call the generic Publish with the correct type
	switch e := ev.(type) {
	case BatteryStateChangedEvent:
		event.Publish(b.dispatcher, e)
	case NotificationEvent:
		event.Publish(b.dispatcher, e)
	case AttentionEvent:
		event.Publish(b.dispatcher, e)
	case LEDDeviceChangedEvent:
		event.Publish(b.dispatcher, e)
	case LightAppliedEvent:
		event.Publish(b.dispatcher, e)
	}
}

// Subscribe subscribes to events with a handler function
// The handler type determines which events it receives (type inference)
// Returns an unsubscribe function
// Usage: unsub := bus.Subscribe(func(e BatteryStateChangedEvent) { ... })
func (b *Bus) Subscribe(handler any) func() {
	// kelindar/event needs the concrete event type, so match the handler
	// signature against each known event type
	switch h := handler.(type) {
	case func(BatteryStateChangedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(NotificationEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(AttentionEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(LEDDeviceChangedEvent):
		return event.Subscribe(b.dispatcher, h)
	case func(LightAppliedEvent):
		return event.Subscribe(b.dispatcher, h)
	default:
		// Return a no-op function if handler type is not recognized
		return func() {}
	}
}
