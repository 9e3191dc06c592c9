package facades

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/temmu/temmu-api/internal/logger"
	"github.com/temmu/temmu-api/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FighterEventPublisher publishes fighter lifecycle events to Kafka.
type FighterEventPublisher struct {
	writer KafkaWriter
}

// NewFighterEventPublisher creates a publisher writing through writer.
func NewFighterEventPublisher(writer KafkaWriter) *FighterEventPublisher {
	return &FighterEventPublisher{writer: writer}
}

// NewKafkaWriter returns a writer for topic on the given brokers.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 10 * time.Millisecond,
	}
}

// Publish writes event keyed by the fighter id, so events of one fighter stay ordered.
func (p *FighterEventPublisher) Publish(ctx context.Context, event models.FighterEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to marshal fighter event", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(event.FighterID, 10)),
		Value: data,
		Time:  time.Unix(event.Timestamp, 0),
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.FromContext(ctx).Errorw("failed to publish fighter event to Kafka",
			"event_id", event.EventID, "fighter_id", event.FighterID, "error", err)
		return err
	}

	logger.FromContext(ctx).Infow("fighter event published",
		"event_id", event.EventID, "fighter_id", event.FighterID, "operation", event.Operation)
	return nil
}

// Close closes the underlying writer.
func (p *FighterEventPublisher) Close() error {
	return p.writer.Close()
}
