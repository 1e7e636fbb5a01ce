package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/aeshevdaniyar/medusa/internal/domain/shared"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter is the part of *kafka.Writer the bus uses
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MessageReader is the part of *kafka.Reader the bus uses
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// readRetryDelay is the pause after a failed read before trying again
const readRetryDelay = time.Second

// KafkaEventBus publishes events to a Kafka topic keyed by event name and
// delivers consumed events to local subscribers
type KafkaEventBus struct {
	writer    MessageWriter
	newReader func() MessageReader
	registry  *HandlerRegistry
	logger    *zap.Logger
	retry     time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewKafkaEventBus creates a bus for topic on brokers. Consumers share groupID.
func NewKafkaEventBus(brokers []string, topic, groupID string, logger *zap.Logger) *KafkaEventBus {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	newReader := func() MessageReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:        brokers,
			Topic:          topic,
			GroupID:        groupID,
			CommitInterval: time.Second,
		})
	}
	return NewKafkaEventBusWith(writer, newReader, logger)
}

// NewKafkaEventBusWith creates a bus on an existing writer and reader factory
func NewKafkaEventBusWith(writer MessageWriter, newReader func() MessageReader, logger *zap.Logger) *KafkaEventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaEventBus{
		writer:    writer,
		newReader: newReader,
		registry:  NewHandlerRegistry(),
		logger:    logger,
		retry:     readRetryDelay,
	}
}

// Emit writes the messages in order
func (b *KafkaEventBus) Emit(ctx context.Context, messages ...shared.EventMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, msg := range messages {
		data, err := Encode(msg)
		if err != nil {
			return err
		}
		batch = append(batch, kafka.Message{
			Key:   []byte(msg.EventName),
			Value: data,
		})
	}

	if err := b.writer.WriteMessages(ctx, batch...); err != nil {
		b.logger.Error("failed to write events", zap.Int("count", len(batch)), zap.Error(err))
		return fmt.Errorf("failed to write events: %w", err)
	}
	return nil
}

// Subscribe registers handler for eventName
func (b *KafkaEventBus) Subscribe(eventName, subscriberID string, handler shared.EventHandler) {
	b.registry.Register(eventName, subscriberID, handler)
}

// Unsubscribe removes a handler
func (b *KafkaEventBus) Unsubscribe(eventName, subscriberID string) {
	b.registry.Unregister(eventName, subscriberID)
}

// Start consumes the topic in the background
func (b *KafkaEventBus) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cancel != nil {
		return errors.New("event bus already started")
	}

	consumeCtx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.done = make(chan struct{})
	go b.consume(consumeCtx, b.newReader(), b.done)

	b.logger.Info("event bus started", zap.String("backend", "kafka"))
	return nil
}

func (b *KafkaEventBus) consume(ctx context.Context, reader MessageReader, done chan struct{}) {
	defer close(done)
	defer reader.Close()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			b.logger.Error("failed to read event", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(b.retry):
			}
			continue
		}

		msg, err := Decode(m.Value)
		if err != nil {
			b.logger.Error("failed to decode event",
				zap.Int64("offset", m.Offset),
				zap.Error(err),
			)
			continue
		}
		dispatch(ctx, b.registry, b.logger, msg)
	}
}

// Stop stops consuming and closes the writer
func (b *KafkaEventBus) Stop(ctx context.Context) error {
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
		}
	}

	b.logger.Info("event bus stopped", zap.String("backend", "kafka"))
	return b.writer.Close()
}

// Ensure KafkaEventBus implements EventBus
var _ shared.EventBus = (*KafkaEventBus)(nil)
