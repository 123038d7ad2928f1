package cart

import (
	"errors"
	"fmt"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned for lines not built through NewLine or RestoreLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one product in a shopper's cart with the unit price locked in when
// the product was added. Lines are values; changing the quantity yields a new Line.
type Line struct {
	productID kernel.UUID
	title     string
	category  catalog.Category
	weight    kernel.Weight
	quantity  int
	unitPrice kernel.Money

	isConstructed bool
}

// NewLine snapshots a product's sale price and per-unit weight.
func NewLine(product *catalog.Product, quantity int) (Line, error) {
	if err := product.Validate(); err != nil {
		return Line{}, err
	}
	return RestoreLine(product.ID(), product.Title(), product.Category(), product.Weight(), quantity, product.SalePrice())
}

// RestoreLine rebuilds a line from previously snapshotted values.
func RestoreLine(
	productID kernel.UUID,
	title string,
	category catalog.Category,
	weight kernel.Weight,
	quantity int,
	unitPrice kernel.Money,
) (Line, error) {
	l := Line{
		title:         title,
		category:      category,
		weight:        weight,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setProductID(productID),
		l.setQuantity(quantity),
		l.setUnitPrice(unitPrice),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

// Validate ensures the line was built through a constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l Line) ProductID() kernel.UUID     { return l.productID }
func (l Line) Title() string              { return l.title }
func (l Line) Category() catalog.Category { return l.category }
func (l Line) Weight() kernel.Weight      { return l.weight }
func (l Line) Quantity() int              { return l.quantity }
func (l Line) UnitPrice() kernel.Money    { return l.unitPrice }

// Amount is unit price times quantity.
func (l Line) Amount() kernel.Money {
	return l.unitPrice.Times(l.quantity)
}

// WithQuantity returns a copy of the line with a new quantity.
func (l Line) WithQuantity(quantity int) (Line, error) {
	if err := l.setQuantity(quantity); err != nil {
		return Line{}, err
	}
	return l, nil
}

func (l *Line) setProductID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.productID = id
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setUnitPrice(price kernel.Money) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("unit price", int64(price), 0, "unbounded")
	}
	l.unitPrice = price
	return nil
}
