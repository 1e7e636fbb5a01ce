package event

import (
	"context"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"go.uber.org/zap"
)

// LocalEventBus implements EventBus with in-process, synchronous delivery
type LocalEventBus struct {
	registry *HandlerRegistry
	logger   *zap.Logger
}

// NewLocalEventBus creates a new in-process event bus
func NewLocalEventBus(logger *zap.Logger) *LocalEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalEventBus{
		registry: NewHandlerRegistry(),
		logger:   logger,
	}
}

// Emit delivers every message to its subscribers in order.
// Handler failures are logged and do not fail the emission.
func (b *LocalEventBus) Emit(ctx context.Context, messages ...shared.EventMessage) error {
	for _, msg := range messages {
		dispatch(ctx, b.registry, b.logger, msg)
	}
	return nil
}

// Subscribe registers handler for eventName
func (b *LocalEventBus) Subscribe(eventName, subscriberID string, handler shared.EventHandler) {
	b.registry.Register(eventName, subscriberID, handler)
	b.logger.Debug("handler subscribed",
		zap.String("event_name", eventName),
		zap.String("subscriber_id", subscriberID),
	)
}

// Unsubscribe removes a handler
func (b *LocalEventBus) Unsubscribe(eventName, subscriberID string) {
	b.registry.Unregister(eventName, subscriberID)
	b.logger.Debug("handler unsubscribed",
		zap.String("event_name", eventName),
		zap.String("subscriber_id", subscriberID),
	)
}

// Start starts the event bus. Delivery is synchronous, so Emit works
// whether or not the bus was started.
func (b *LocalEventBus) Start(ctx context.Context) error {
	b.logger.Info("event bus started", zap.String("backend", "local"))
	return nil
}

// Stop stops the event bus
func (b *LocalEventBus) Stop(ctx context.Context) error {
	b.logger.Info("event bus stopped", zap.String("backend", "local"))
	return nil
}

// dispatch hands msg to every matching handler, isolating failures
func dispatch(ctx context.Context, registry *HandlerRegistry, logger *zap.Logger, msg shared.EventMessage) {
	for _, handler := range registry.GetHandlers(msg.EventName) {
		if err := safeHandle(ctx, handler, msg, logger); err != nil {
			logger.Error("handler failed to process event",
				zap.String("event_name", msg.EventName),
				zap.Error(err),
			)
		}
	}
}

func safeHandle(ctx context.Context, handler shared.EventHandler, msg shared.EventMessage, logger *zap.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("handler panicked",
				zap.String("event_name", msg.EventName),
				zap.Any("panic", r),
			)
		}
	}()
	return handler.Handle(ctx, msg)
}

// Ensure LocalEventBus implements EventBus
var _ shared.EventBus = (*LocalEventBus)(nil)
