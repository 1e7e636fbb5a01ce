package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultStopTimeout = 5 * time.Second

// RedisEventBus publishes events on a Redis Pub/Sub channel and delivers
// received events to local subscribers
type RedisEventBus struct {
	client     *redis.Client
	ownsClient bool
	channel    string
	registry   *HandlerRegistry
	logger     *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// RedisEventBusOption is a functional option for configuring the bus
type RedisEventBusOption func(*RedisEventBus)

// WithRedisLogger sets the logger for the bus
func WithRedisLogger(logger *zap.Logger) RedisEventBusOption {
	return func(b *RedisEventBus) {
		b.logger = logger
	}
}

// WithOwnedClient makes Stop close the Redis client
func WithOwnedClient() RedisEventBusOption {
	return func(b *RedisEventBus) {
		b.ownsClient = true
	}
}

// NewRedisEventBus creates a bus on channel using client.
// The caller keeps ownership of client unless WithOwnedClient is given.
func NewRedisEventBus(client *redis.Client, channel string, opts ...RedisEventBusOption) *RedisEventBus {
	b := &RedisEventBus{
		client:   client,
		channel:  channel,
		registry: NewHandlerRegistry(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Emit publishes the messages in order using a single pipeline
func (b *RedisEventBus) Emit(ctx context.Context, messages ...shared.EventMessage) error {
	if len(messages) == 0 {
		return nil
	}

	pipe := b.client.Pipeline()
	for _, msg := range messages {
		data, err := Encode(msg)
		if err != nil {
			return err
		}
		pipe.Publish(ctx, b.channel, data)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		b.logger.Error("failed to publish events",
			zap.String("channel", b.channel),
			zap.Int("count", len(messages)),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish events: %w", err)
	}

	b.logger.Debug("events published",
		zap.String("channel", b.channel),
		zap.Int("count", len(messages)),
	)
	return nil
}

// Subscribe registers handler for eventName
func (b *RedisEventBus) Subscribe(eventName, subscriberID string, handler shared.EventHandler) {
	b.registry.Register(eventName, subscriberID, handler)
}

// Unsubscribe removes a handler
func (b *RedisEventBus) Unsubscribe(eventName, subscriberID string) {
	b.registry.Unregister(eventName, subscriberID)
}

// Start subscribes to the channel and consumes it in the background
func (b *RedisEventBus) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		return errors.New("event bus already started")
	}

	subCtx, cancel := context.WithCancel(context.Background())
	pubsub := b.client.Subscribe(subCtx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		cancel()
		_ = pubsub.Close()
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}

	b.cancel = cancel
	b.done = make(chan struct{})
	go b.consume(subCtx, pubsub, b.done)

	b.logger.Info("event bus started",
		zap.String("backend", "redis"),
		zap.String("channel", b.channel),
	)
	return nil
}

func (b *RedisEventBus) consume(ctx context.Context, pubsub *redis.PubSub, done chan struct{}) {
	defer close(done)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				b.logger.Warn("event channel closed", zap.String("channel", b.channel))
				return
			}
			b.handlePayload(ctx, []byte(msg.Payload))
		}
	}
}

func (b *RedisEventBus) handlePayload(ctx context.Context, payload []byte) {
	msg, err := Decode(payload)
	if err != nil {
		b.logger.Error("failed to decode event",
			zap.String("channel", b.channel),
			zap.Error(err),
		)
		return
	}
	dispatch(ctx, b.registry, b.logger, msg)
}

// Stop ends the subscription and waits for the consumer to exit
func (b *RedisEventBus) Stop(ctx context.Context) error {
	b.mu.Lock()
	cancel, done := b.cancel, b.done
	b.cancel, b.done = nil, nil
	b.mu.Unlock()

	if cancel != nil {
		cancel()
		select {
		case <-done:
		case <-ctx.Done():
			b.logger.Warn("timeout waiting for event consumer to stop")
		case <-time.After(defaultStopTimeout):
			b.logger.Warn("timeout waiting for event consumer to stop")
		}
	}

	b.logger.Info("event bus stopped", zap.String("backend", "redis"))
	if b.ownsClient {
		return b.client.Close()
	}
	return nil
}

// Ensure RedisEventBus implements EventBus
var _ shared.EventBus = (*RedisEventBus)(nil)
