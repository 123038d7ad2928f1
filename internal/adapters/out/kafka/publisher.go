// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"fmt"

	"aims/internal/core/ports"

	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	HeaderEventType = "event-type"
	HeaderMessageID = "message-id"
)

// OrderEventPublisher writes outbox messages to the order-changed topic.
// Messages are keyed by order id, so every event of one order lands on the
// same partition and consumers see them in order.
type OrderEventPublisher struct {
	writer *kafkaGo.Writer
}

// NewOrderEventPublisher creates a publisher for topic on the given brokers.
func NewOrderEventPublisher(brokers []string, topic string) *OrderEventPublisher {
	return &OrderEventPublisher{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireAll,
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish writes all messages in one batch. Either error is returned for
// the whole batch, and the relay retries it on the next tick.
func (p *OrderEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	if err := p.writer.WriteMessages(ctx, toKafkaMessages(messages)...); err != nil {
		return fmt.Errorf("failed to publish %d order events: %w", len(messages), err)
	}
	return nil
}

// Close flushes pending writes and releases connections.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}

func toKafkaMessages(messages []ports.OutboxMessage) []kafkaGo.Message {
	out := make([]kafkaGo.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, kafkaGo.Message{
			Key:   []byte(m.AggregateID.String()),
			Value: m.Payload,
			Time:  m.OccurredAt,
			Headers: []kafkaGo.Header{
				{Key: HeaderEventType, Value: []byte(m.EventType)},
				{Key: HeaderMessageID, Value: []byte(m.ID.String())},
			},
		})
	}
	return out
}
