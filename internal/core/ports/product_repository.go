package ports

import (
	"context"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
)

// ProductRepository persists catalog products and is the source of stock
// levels at approval time.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *catalog.Product) error

	// Update persists price, value and stock changes.
	Update(ctx context.Context, aggregate *catalog.Product) error

	// Get retrieves a product by id.
	// Returns errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// GetMany retrieves the products that exist among ids. Missing ids are skipped.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)

	// GetManyForUpdate is GetMany with row locks taken in id order, so that
	// concurrent approvals drawing on the same products are serialized.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}
