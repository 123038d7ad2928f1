package commands

import (
	"errors"
	"fmt"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/order"
	"aims/internal/pkg/errs"
	"aims/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// PlaceOrderCommand checks out a cart: the delivery form is validated, fees
// are computed, the shopper is charged and the order is stored in PendingProcessing.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    []cart.Item{{ProductID: bookID, Quantity: 2}},
//	    delivery.Info{RecipientName: "Nguyen Van A", ...},
//	    order.PaymentMethodVNPay,
//	)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	items         []cart.Item
	deliveryInfo  delivery.Info
	paymentMethod order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the shape of the request. Delivery fields
// are checked by the handler so that all field errors come back together.
func NewPlaceOrderCommand(
	items []cart.Item,
	deliveryInfo delivery.Info,
	paymentMethod order.PaymentMethod,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		deliveryInfo: deliveryInfo,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setItems(items),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Items() []cart.Item {
	return append([]cart.Item(nil), c.items...)
}

func (c PlaceOrderCommand) DeliveryInfo() delivery.Info {
	return c.deliveryInfo
}

func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

func (c *PlaceOrderCommand) setItems(items []cart.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	var result []error
	for i, it := range items {
		if err := it.ProductID.Validate(); err != nil {
			result = append(result, fmt.Errorf("item %d: %w", i, err))
		}
		if it.Quantity < 1 {
			result = append(result, fmt.Errorf("item %d: %w", i,
				errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", it.Quantity))))
		}
	}
	if err := errors.Join(result...); err != nil {
		return err
	}

	c.items = append([]cart.Item(nil), items...)
	return nil
}

func (c *PlaceOrderCommand) setPaymentMethod(method order.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
