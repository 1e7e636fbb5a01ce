package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// testHandler records the messages it receives
type testHandler struct {
	mu       sync.Mutex
	received []shared.EventMessage
	err      error
}

func (h *testHandler) Handle(ctx context.Context, msg shared.EventMessage) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.received = append(h.received, msg)
	return h.err
}

func (h *testHandler) getReceived() []shared.EventMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]shared.EventMessage(nil), h.received...)
}

func TestLocalEventBus_Emit(t *testing.T) {
	bus := NewLocalEventBus(zap.NewNop())
	handler := &testHandler{}
	bus.Subscribe("product.deleted", "test", handler)

	err := bus.Emit(context.Background(),
		shared.EventMessage{EventName: "product.deleted", Data: map[string]any{"id": "prod_1"}},
		shared.EventMessage{EventName: "product.created", Data: map[string]any{"id": "prod_2"}},
		shared.EventMessage{EventName: "product.deleted", Data: map[string]any{"id": "prod_3"}},
	)

	require.NoError(t, err)
	received := handler.getReceived()
	require.Len(t, received, 2)
	assert.Equal(t, map[string]any{"id": "prod_1"}, received[0].Data)
	assert.Equal(t, map[string]any{"id": "prod_3"}, received[1].Data)
}

func TestLocalEventBus_Wildcard(t *testing.T) {
	bus := NewLocalEventBus(nil)
	handler := &testHandler{}
	bus.Subscribe(shared.WildcardEvent, "audit", handler)

	require.NoError(t, bus.Emit(context.Background(),
		shared.EventMessage{EventName: "product.deleted"},
		shared.EventMessage{EventName: "product-variant.deleted"},
	))
	assert.Len(t, handler.getReceived(), 2)
}

func TestLocalEventBus_HandlerFailuresAreIsolated(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	bus := NewLocalEventBus(zap.New(core))

	failing := &testHandler{err: errors.New("boom")}
	healthy := &testHandler{}
	bus.Subscribe("product.deleted", "failing", failing)
	bus.Subscribe("product.deleted", "panicking", shared.EventHandlerFunc(func(ctx context.Context, msg shared.EventMessage) error {
		panic("unexpected")
	}))
	bus.Subscribe("product.deleted", "healthy", healthy)

	err := bus.Emit(context.Background(), shared.EventMessage{EventName: "product.deleted"})

	require.NoError(t, err)
	assert.Len(t, healthy.getReceived(), 1)
	assert.Equal(t, 1, logs.FilterMessage("handler failed to process event").Len())
	assert.Equal(t, 1, logs.FilterMessage("handler panicked").Len())
}

func TestLocalEventBus_Unsubscribe(t *testing.T) {
	bus := NewLocalEventBus(nil)
	handler := &testHandler{}
	bus.Subscribe("product.deleted", "test", handler)
	bus.Unsubscribe("product.deleted", "test")

	require.NoError(t, bus.Emit(context.Background(), shared.EventMessage{EventName: "product.deleted"}))
	assert.Empty(t, handler.getReceived())
}

func TestLocalEventBus_Lifecycle(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	bus := NewLocalEventBus(zap.New(core))
	handler := &testHandler{}
	bus.Subscribe("product.created", "test", handler)

	require.NoError(t, bus.Emit(context.Background(), shared.EventMessage{EventName: "product.created"}))
	require.NoError(t, bus.Start(context.Background()))
	require.NoError(t, bus.Stop(context.Background()))
	require.NoError(t, bus.Emit(context.Background(), shared.EventMessage{EventName: "product.created"}))

	assert.Len(t, handler.getReceived(), 2)
	assert.Equal(t, 1, logs.FilterMessage("event bus started").Len())
	assert.Equal(t, 1, logs.FilterMessage("event bus stopped").Len())
}
