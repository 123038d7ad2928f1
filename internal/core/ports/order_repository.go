package ports

import (
	"context"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
)

// OrderRepository persists Order aggregates.
type OrderRepository interface {
	// Add persists a newly placed order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status, reason and comments of an existing order.
	// The checkout snapshot is never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by id.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
