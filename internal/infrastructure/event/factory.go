package event

import (
	"context"
	"fmt"
	"time"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/aeshevdaniyar/medusa/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewEventBus creates the event bus selected by cfg.EventBus.Backend.
// It returns nil for the "none" backend.
func NewEventBus(cfg *config.Config, logger *zap.Logger) (shared.EventBus, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "event_bus"))

	switch cfg.EventBus.Backend {
	case config.EventBusNone:
		return nil, nil
	case config.EventBusLocal, "":
		return NewLocalEventBus(logger), nil
	case config.EventBusRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return NewRedisEventBus(client, cfg.EventBus.Channel, WithRedisLogger(logger), WithOwnedClient()), nil
	case config.EventBusKafka:
		return NewKafkaEventBus(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID, logger), nil
	default:
		return nil, fmt.Errorf("unsupported event bus backend %q", cfg.EventBus.Backend)
	}
}
