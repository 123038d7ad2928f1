package order

import (
	"errors"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"
)

// FeeBreakdown is the derived pricing of a cart. It is recomputed on every
// quote and frozen into the order when it is placed.
type FeeBreakdown struct {
	Subtotal        kernel.Money
	VAT             kernel.Money
	DeliveryFee     kernel.Money
	RushDeliveryFee kernel.Money
}

// Total is subtotal + VAT + delivery fee + rush delivery fee.
func (f FeeBreakdown) Total() kernel.Money {
	return f.Subtotal + f.VAT + f.DeliveryFee + f.RushDeliveryFee
}

// Validate rejects negative components.
func (f FeeBreakdown) Validate() error {
	check := func(name string, m kernel.Money) error {
		if m < 0 {
			return errs.NewValueIsOutOfRangeError(name, m.Int64(), 0, "unbounded")
		}
		return nil
	}
	return errors.Join(
		check("subtotal", f.Subtotal),
		check("vat", f.VAT),
		check("delivery fee", f.DeliveryFee),
		check("rush delivery fee", f.RushDeliveryFee),
	)
}
