package commands

import (
	"errors"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds a catalog entry. The product is validated in full
// by the constructor, including the price band against the base value.
type CreateProductCommand struct {
	product *catalog.Product

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(
	productID kernel.UUID,
	category catalog.Category,
	title string,
	price kernel.Money,
	value kernel.Money,
	weight kernel.Weight,
	quantity int,
	discountPercent int,
) (CreateProductCommand, error) {
	p, err := catalog.NewProduct(productID, category, title, price, value, weight, quantity, discountPercent)
	if err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		product: p,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) ProductID() kernel.UUID {
	if c.product == nil {
		return kernel.UUID{}
	}
	return c.product.ID()
}
