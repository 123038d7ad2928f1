package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Events are collected by the
// unit of work on commit and stored in the outbox, so their exported fields
// form the published payload.
type DomainEvent interface {
	EventType() string
	AggregateID() UUID
	OccurredAt() time.Time
}

// EventSource is implemented by aggregates that record domain events.
type EventSource interface {
	DomainEvents() []DomainEvent
	ClearDomainEvents()
}
