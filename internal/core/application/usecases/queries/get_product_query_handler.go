package queries

import (
	"context"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
)

// ProductGetter loads a single product.
type ProductGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}

// GetProductQueryHandler reads a product through the repository so that the
// sale price is computed by the catalog rules, not duplicated in SQL.
type GetProductQueryHandler struct {
	products ProductGetter
}

func NewGetProductQueryHandler(products ProductGetter) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

// Handle returns the product or errs.ObjectNotFoundError.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*GetProductQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	p, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		return nil, err
	}

	return &GetProductQueryResponse{
		ID:              p.ID(),
		Category:        p.Category(),
		Title:           p.Title(),
		Price:           p.Price(),
		SalePrice:       p.SalePrice(),
		DiscountPercent: p.DiscountPercent(),
		Weight:          p.Weight(),
		Quantity:        p.Quantity(),
	}, nil
}
