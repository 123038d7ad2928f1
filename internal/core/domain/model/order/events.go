package order

import (
	"time"

	"aims/internal/core/domain/model/kernel"
)

const (
	EventTypePlaced    = "order.placed"
	EventTypeApproved  = "order.approved"
	EventTypeRejected  = "order.rejected"
	EventTypeCancelled = "order.cancelled"
)

// EventLine is the part of an order line carried in events.
type EventLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// PlacedEvent is recorded when a paid order enters PendingProcessing.
type PlacedEvent struct {
	OrderID       kernel.UUID `json:"-"`
	ID            string      `json:"orderId"`
	Lines         []EventLine `json:"lines"`
	TotalAmount   int64       `json:"totalAmount"`
	Email         string      `json:"email"`
	TransactionID string      `json:"transactionId"`
	At            time.Time   `json:"occurredAt"`
}

func (e PlacedEvent) EventType() string        { return EventTypePlaced }
func (e PlacedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e PlacedEvent) OccurredAt() time.Time    { return e.At }

// ApprovedEvent tells the inventory side which units left the shelf.
type ApprovedEvent struct {
	OrderID kernel.UUID `json:"-"`
	ID      string      `json:"orderId"`
	Lines   []EventLine `json:"lines"`
	At      time.Time   `json:"occurredAt"`
}

func (e ApprovedEvent) EventType() string        { return EventTypeApproved }
func (e ApprovedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e ApprovedEvent) OccurredAt() time.Time    { return e.At }

// RejectedEvent is recorded when staff decline an order.
type RejectedEvent struct {
	OrderID kernel.UUID `json:"-"`
	ID      string      `json:"orderId"`
	Reason  string      `json:"reason,omitempty"`
	At      time.Time   `json:"occurredAt"`
}

func (e RejectedEvent) EventType() string        { return EventTypeRejected }
func (e RejectedEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e RejectedEvent) OccurredAt() time.Time    { return e.At }

// CancelledEvent is consumed by the payment reversal side to refund the full amount.
type CancelledEvent struct {
	OrderID       kernel.UUID `json:"-"`
	ID            string      `json:"orderId"`
	RefundAmount  int64       `json:"refundAmount"`
	TransactionID string      `json:"transactionId"`
	Reason        string      `json:"reason"`
	Comments      string      `json:"comments,omitempty"`
	At            time.Time   `json:"occurredAt"`
}

func (e CancelledEvent) EventType() string        { return EventTypeCancelled }
func (e CancelledEvent) AggregateID() kernel.UUID { return e.OrderID }
func (e CancelledEvent) OccurredAt() time.Time    { return e.At }
