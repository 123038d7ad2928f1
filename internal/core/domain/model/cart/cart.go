package cart

import (
	"errors"
	"slices"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"
)

// ErrLineNotFound is returned when a cart has no line for the product.
var ErrLineNotFound = errors.New("cart line not found")

// Cart is a shopper's working set of lines, at most one line per product.
// It lives only for the duration of a checkout; placing an order snapshots
// the lines and the caller clears the cart.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts a product into the cart. Adding a product that is already present
// increases its quantity and keeps the price locked in by the first add.
func (c *Cart) Add(product *catalog.Product, quantity int) error {
	if err := product.Validate(); err != nil {
		return err
	}

	if i := c.indexOf(product.ID()); i >= 0 {
		if _, err := c.lines[i].WithQuantity(quantity); err != nil {
			return err
		}
		updated, err := c.lines[i].WithQuantity(c.lines[i].Quantity() + quantity)
		if err != nil {
			return err
		}
		c.lines[i] = updated
		return nil
	}

	line, err := NewLine(product, quantity)
	if err != nil {
		return err
	}
	c.lines = append(c.lines, line)
	return nil
}

// Item is a product and quantity as submitted by the storefront.
type Item struct {
	ProductID kernel.UUID
	Quantity  int
}

// ItemProductIDs lists the product ids of items in order.
func ItemProductIDs(items []Item) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}
	return ids
}

// AddItems adds each item using the matching product from products.
// An item whose product is not among products fails with errs.ObjectNotFoundError.
func (c *Cart) AddItems(items []Item, products []*catalog.Product) error {
	byID := make(map[kernel.UUID]*catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID()] = p
	}

	for _, it := range items {
		p, ok := byID[it.ProductID]
		if !ok {
			return errs.NewObjectNotFoundError("product", it.ProductID.String())
		}
		if err := c.Add(p, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// ChangeQuantity sets the quantity of an existing line.
func (c *Cart) ChangeQuantity(productID kernel.UUID, quantity int) error {
	i := c.indexOf(productID)
	if i < 0 {
		return ErrLineNotFound
	}

	updated, err := c.lines[i].WithQuantity(quantity)
	if err != nil {
		return err
	}
	c.lines[i] = updated
	return nil
}

// Remove drops the line for a product.
func (c *Cart) Remove(productID kernel.UUID) error {
	i := c.indexOf(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines = slices.Delete(c.lines, i, i+1)
	return nil
}

// Clear empties the cart, typically after the order was placed.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return slices.Clone(c.lines)
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) indexOf(productID kernel.UUID) int {
	return slices.IndexFunc(c.lines, func(l Line) bool {
		return l.ProductID().IsEqual(productID)
	})
}

// StockWarning flags a line that asks for more units than are on hand.
type StockWarning struct {
	ProductID kernel.UUID
	Title     string
	Requested int
	Available int
}

// StockWarnings compares the cart against a stock snapshot. The result is
// advisory feedback for the shopper; stock is enforced when staff approve the order.
func (c *Cart) StockWarnings(stock catalog.StockLevels) []StockWarning {
	var warnings []StockWarning
	for _, l := range c.lines {
		if available := stock.Available(l.ProductID()); l.Quantity() > available {
			warnings = append(warnings, StockWarning{
				ProductID: l.ProductID(),
				Title:     l.Title(),
				Requested: l.Quantity(),
				Available: available,
			})
		}
	}
	return warnings
}
