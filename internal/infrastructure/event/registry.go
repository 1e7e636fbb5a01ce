package event

import (
	"sync"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
)

type subscription struct {
	id      string
	handler shared.EventHandler
}

// HandlerRegistry manages event handler registrations
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[string][]subscription // eventName -> subscriptions, in subscription order
}

// NewHandlerRegistry creates a new handler registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[string][]subscription),
	}
}

// Register adds handler for eventName under subscriberID, replacing an
// earlier handler with the same subscriberID
func (r *HandlerRegistry) Register(eventName, subscriberID string, handler shared.EventHandler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.handlers[eventName]
	for i, sub := range subs {
		if sub.id == subscriberID {
			subs[i].handler = handler
			return
		}
	}
	r.handlers[eventName] = append(subs, subscription{id: subscriberID, handler: handler})
}

// Unregister removes the subscriberID handler for eventName
func (r *HandlerRegistry) Unregister(eventName, subscriberID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := r.handlers[eventName]
	result := make([]subscription, 0, len(subs))
	for _, sub := range subs {
		if sub.id != subscriberID {
			result = append(result, sub)
		}
	}
	if len(result) == 0 {
		delete(r.handlers, eventName)
		return
	}
	r.handlers[eventName] = result
}

// GetHandlers returns the handlers for eventName followed by the wildcard handlers
func (r *HandlerRegistry) GetHandlers(eventName string) []shared.EventHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()

	named := r.handlers[eventName]
	var wildcard []subscription
	if eventName != shared.WildcardEvent {
		wildcard = r.handlers[shared.WildcardEvent]
	}

	result := make([]shared.EventHandler, 0, len(named)+len(wildcard))
	for _, sub := range named {
		result = append(result, sub.handler)
	}
	for _, sub := range wildcard {
		result = append(result, sub.handler)
	}
	return result
}

// EventNames returns the names with at least one subscriber
func (r *HandlerRegistry) EventNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}
