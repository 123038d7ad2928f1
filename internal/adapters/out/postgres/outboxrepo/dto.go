// Package outboxrepo persists domain events in the transactional outbox.
// Events are written in the same transaction as the aggregate change that
// produced them and relayed to the broker later.
package outboxrepo

import (
	"encoding/json"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO is one outbox row.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// fromEvent serializes a domain event into a new outbox row.
func fromEvent(event kernel.DomainEvent) (MessageDTO, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return MessageDTO{}, err
	}

	return MessageDTO{
		ID:          kernel.NewUUID().Bytes(),
		AggregateID: event.AggregateID().Bytes(),
		EventType:   event.EventType(),
		Payload:     payload,
		OccurredAt:  event.OccurredAt().UTC(),
	}, nil
}

func toMessage(dto MessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		AggregateID: aggregateID,
		EventType:   dto.EventType,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
	}, nil
}
