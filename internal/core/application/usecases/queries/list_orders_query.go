package queries

import (
	"errors"
	"slices"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
	"aims/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists orders for the staff review queue, newest first.
// With no statuses every order is listed.
//
// Example:
//
//	query, _ := NewListOrdersQuery(order.PendingProcessing)
//	pending, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query filtered by the given statuses.
func NewListOrdersQuery(statuses ...order.Status) (ListOrdersQuery, error) {
	filter := make([]order.Status, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		if !slices.Contains(filter, s) {
			filter = append(filter, s)
		}
	}

	return ListOrdersQuery{statuses: filter, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []order.Status {
	return slices.Clone(q.statuses)
}

// ListOrdersQueryResponse is one row of the order list.
type ListOrdersQueryResponse struct {
	ID             kernel.UUID
	Status         order.Status
	RecipientName  string
	Email          string
	Province       string
	IsRushDelivery bool
	TotalAmount    kernel.Money
	PaymentMethod  order.PaymentMethod
	CreatedAt      time.Time
}
