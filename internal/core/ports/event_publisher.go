package ports

import "context"

// EventPublisher delivers outbox messages to downstream consumers such as the
// refund and notification services.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
