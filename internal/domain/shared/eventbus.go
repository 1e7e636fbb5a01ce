package shared

import "context"

// WildcardEvent subscribes a handler to every event name
const WildcardEvent = "*"

// EventMessage is a single event emitted by a module service
type EventMessage struct {
	EventName string `json:"eventName"`
	Data      any    `json:"data"`
}

// EventHandler handles emitted events
type EventHandler interface {
	// Handle processes one event message
	Handle(ctx context.Context, msg EventMessage) error
}

// EventHandlerFunc adapts a function to EventHandler
type EventHandlerFunc func(ctx context.Context, msg EventMessage) error

// Handle calls f(ctx, msg)
func (f EventHandlerFunc) Handle(ctx context.Context, msg EventMessage) error {
	return f(ctx, msg)
}

// EventBusModuleService is the emission capability module services depend on.
// A module service holding a nil EventBusModuleService skips emission.
type EventBusModuleService interface {
	// Emit publishes the messages in order
	Emit(ctx context.Context, messages ...EventMessage) error
}

// EventSubscriber registers handlers by event name
type EventSubscriber interface {
	// Subscribe registers handler for eventName under subscriberID.
	// eventName may be WildcardEvent to receive every event.
	Subscribe(eventName, subscriberID string, handler EventHandler)
	// Unsubscribe removes the subscriberID handler for eventName
	Unsubscribe(eventName, subscriberID string)
}

// EventBus combines emission and subscription with a lifecycle
type EventBus interface {
	EventBusModuleService
	EventSubscriber
	// Start starts the event bus (e.g., background consumers)
	Start(ctx context.Context) error
	// Stop gracefully stops the event bus
	Stop(ctx context.Context) error
}
