package event

import (
	"context"
	"testing"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func noopHandler(calls *[]string, tag string) shared.EventHandler {
	return shared.EventHandlerFunc(func(ctx context.Context, msg shared.EventMessage) error {
		*calls = append(*calls, tag+":"+msg.EventName)
		return nil
	})
}

func TestHandlerRegistry_Register(t *testing.T) {
	registry := NewHandlerRegistry()
	var calls []string

	registry.Register("product.deleted", "search", noopHandler(&calls, "search"))
	registry.Register("product.deleted", "cache", noopHandler(&calls, "cache"))
	registry.Register(shared.WildcardEvent, "audit", noopHandler(&calls, "audit"))

	handlers := registry.GetHandlers("product.deleted")
	assert.Len(t, handlers, 3)

	for _, h := range handlers {
		_ = h.Handle(context.Background(), shared.EventMessage{EventName: "product.deleted"})
	}
	assert.Equal(t, []string{"search:product.deleted", "cache:product.deleted", "audit:product.deleted"}, calls)

	assert.Len(t, registry.GetHandlers("product-variant.deleted"), 1)
	assert.Len(t, registry.GetHandlers(shared.WildcardEvent), 1)
}

func TestHandlerRegistry_RegisterSameSubscriberReplaces(t *testing.T) {
	registry := NewHandlerRegistry()
	var calls []string

	registry.Register("product.deleted", "search", noopHandler(&calls, "old"))
	registry.Register("product.deleted", "search", noopHandler(&calls, "new"))

	handlers := registry.GetHandlers("product.deleted")
	assert.Len(t, handlers, 1)
	_ = handlers[0].Handle(context.Background(), shared.EventMessage{EventName: "product.deleted"})
	assert.Equal(t, []string{"new:product.deleted"}, calls)
}

func TestHandlerRegistry_Unregister(t *testing.T) {
	registry := NewHandlerRegistry()
	var calls []string

	registry.Register("product.deleted", "search", noopHandler(&calls, "search"))
	registry.Register("product.deleted", "cache", noopHandler(&calls, "cache"))

	registry.Unregister("product.deleted", "search")
	assert.Len(t, registry.GetHandlers("product.deleted"), 1)

	registry.Unregister("product.deleted", "cache")
	assert.Empty(t, registry.GetHandlers("product.deleted"))
	assert.Empty(t, registry.EventNames())

	registry.Unregister("unknown", "nobody")
}
