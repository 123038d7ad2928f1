package ports

import (
	"context"
	"time"

	"aims/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored alongside the aggregate change that
// produced it, waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores and drains domain events.
type OutboxRepository interface {
	// Add stores events in the current transaction.
	Add(ctx context.Context, events ...kernel.DomainEvent) error

	// GetUnpublished locks up to limit unpublished messages, oldest first.
	// Rows locked by another relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps messages as delivered.
	MarkPublished(ctx context.Context, publishedAt time.Time, ids ...kernel.UUID) error
}
