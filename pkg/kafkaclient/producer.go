package kafkaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaWriter defines the interface for a Kafka message writer.
// This allows for easy mocking in unit tests.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes JSON encoded events to a single topic.
type Producer struct {
	writer KafkaWriter
	topic  string
	logger *zap.Logger
}

// NewProducer creates a Producer writing to topic on broker. Writes are
// synchronous and wait for all in-sync replicas.
func NewProducer(broker, topic string, logger *zap.Logger) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
	}
	return &Producer{writer: writer, topic: topic, logger: logger}
}

// Publish encodes v as JSON and writes it with the given key.
func (p *Producer) Publish(ctx context.Context, key string, v any) error {
	value, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	msg := kafka.Message{Key: []byte(key), Value: value, Time: time.Now().UTC()}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}

	p.logger.Info("Published event", zap.String("topic", p.topic), zap.String("key", key))
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	if err := p.writer.Close(); err != nil {
		p.logger.Warn("Failed to close Kafka writer", zap.Error(err))
		return err
	}
	return nil
}
