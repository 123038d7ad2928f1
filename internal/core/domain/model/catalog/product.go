package catalog

import (
	"errors"
	"fmt"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"
)

const (
	// minPricePercentOfValue and maxPricePercentOfValue bound the selling price
	// relative to the product's base value.
	minPricePercentOfValue = 30
	maxPricePercentOfValue = 150
)

var (
	// ErrProductIsNotConstructed is returned for products not built through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
	// ErrTitleIsRequired is returned for a blank title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrNotEnoughStock is returned when a withdrawal would make stock negative.
	ErrNotEnoughStock = errors.New("not enough stock")
)

// Product is a catalog entry: a book, CD, LP or DVD offered for sale.
//
// Invariants:
//   - price lies within 30%..150% of value (checked whenever the price or value is edited)
//   - weight and stock quantity are never negative
//   - discount percent lies within 0..100
//
// The pricing engine only reads products. Stock is changed by the inventory
// side of the system through Restock and Withdraw.
type Product struct {
	id              kernel.UUID
	category        Category
	title           string
	price           kernel.Money
	value           kernel.Money
	weight          kernel.Weight
	quantity        int
	discountPercent int

	isConstructed bool
}

// NewProduct creates a catalog entry. All rule violations are reported together.
//
// Example:
//
//	weight, _ := kernel.ParseWeight("0.5")
//	p, err := catalog.NewProduct(kernel.NewUUID(), catalog.Book, "Dế Mèn Phiêu Lưu Ký", 180000, 150000, weight, 20, 0)
func NewProduct(
	id kernel.UUID,
	category Category,
	title string,
	price kernel.Money,
	value kernel.Money,
	weight kernel.Weight,
	quantity int,
	discountPercent int,
) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setCategory(category),
		p.setTitle(title),
		p.setPricing(price, value),
		p.setWeight(weight),
		p.setQuantity(quantity),
		p.setDiscountPercent(discountPercent),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage. It applies the same
// rules as NewProduct except the price band, which is a catalog-edit rule and
// must not make previously stored rows unreadable.
func RestoreProduct(
	id kernel.UUID,
	category Category,
	title string,
	price kernel.Money,
	value kernel.Money,
	weight kernel.Weight,
	quantity int,
	discountPercent int,
) (*Product, error) {
	p := &Product{isConstructed: true, price: price, value: value}

	if err := errors.Join(
		p.setID(id),
		p.setCategory(category),
		p.setTitle(title),
		p.setWeight(weight),
		p.setQuantity(quantity),
		p.setDiscountPercent(discountPercent),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was built through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID       { return p.id }
func (p *Product) Category() Category    { return p.category }
func (p *Product) Title() string         { return p.title }
func (p *Product) Price() kernel.Money   { return p.price }
func (p *Product) Value() kernel.Money   { return p.value }
func (p *Product) Weight() kernel.Weight { return p.weight }
func (p *Product) Quantity() int         { return p.quantity }
func (p *Product) DiscountPercent() int  { return p.discountPercent }

// SalePrice is the price after the product discount, rounded to whole dong.
// It is the unit price a cart line snapshots.
func (p *Product) SalePrice() kernel.Money {
	if p.discountPercent == 0 {
		return p.price
	}
	remaining := (int64(p.price)*int64(100-p.discountPercent) + 50) / 100
	return kernel.Money(remaining)
}

// ChangePrice edits price and value together, enforcing the 30%..150% band.
func (p *Product) ChangePrice(price, value kernel.Money) error {
	return p.setPricing(price, value)
}

// Restock adds received units to stock.
func (p *Product) Restock(units int) error {
	if units <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("units", fmt.Errorf("%d is not greater than 0", units))
	}
	p.quantity += units
	return nil
}

// Withdraw removes units from stock, e.g. when an approved order ships.
// Stock is left untouched on failure.
func (p *Product) Withdraw(units int) error {
	if units <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("units", fmt.Errorf("%d is not greater than 0", units))
	}
	if units > p.quantity {
		return fmt.Errorf("%w: product %s has %d, requested %d", ErrNotEnoughStock, p.id, p.quantity, units)
	}
	p.quantity -= units
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Product) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	p.title = title
	return nil
}

func (p *Product) setPricing(price, value kernel.Money) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%d is not greater than 0", value))
	}

	minPrice := int64(value) * minPricePercentOfValue
	maxPrice := int64(value) * maxPricePercentOfValue
	if int64(price)*100 < minPrice || int64(price)*100 > maxPrice {
		return errs.NewValueIsOutOfRangeError("price", int64(price), minPrice/100, maxPrice/100)
	}

	p.price = price
	p.value = value
	return nil
}

func (p *Product) setWeight(weight kernel.Weight) error {
	if weight.Kg().IsNegative() {
		return errs.NewValueIsOutOfRangeError("weight", weight.String(), 0, "unbounded")
	}
	p.weight = weight
	return nil
}

func (p *Product) setQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	p.quantity = quantity
	return nil
}

func (p *Product) setDiscountPercent(discount int) error {
	if discount < 0 || discount > 100 {
		return errs.NewValueIsOutOfRangeError("discount percent", discount, 0, 100)
	}
	p.discountPercent = discount
	return nil
}
