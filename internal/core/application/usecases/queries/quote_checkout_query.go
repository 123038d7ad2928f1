// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"fmt"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/pkg/errs"
	"aims/internal/pkg/guard"
)

var (
	ErrQuoteCheckoutQueryIsNotConstructed = errors.New(
		"QuoteCheckoutQuery must be created via NewQuoteCheckoutQuery constructor",
	)
)

// QuoteCheckoutQuery prices a cart for the checkout page without charging
// anything. It is re-run whenever the shopper edits the cart or the delivery
// form, so fees always reflect the current input.
//
// Example:
//
//	query, err := NewQuoteCheckoutQuery(
//	    []cart.Item{{ProductID: bookID, Quantity: 2}},
//	    delivery.Info{Province: "Hà Nội", IsRushDelivery: true},
//	)
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(quote.Total.Format())
type QuoteCheckoutQuery struct {
	items        []cart.Item
	deliveryInfo delivery.Info

	guard guard.ConstructorGuard
}

// NewQuoteCheckoutQuery checks the item list. An incomplete delivery form is
// allowed; its problems come back in the response.
func NewQuoteCheckoutQuery(items []cart.Item, deliveryInfo delivery.Info) (QuoteCheckoutQuery, error) {
	if len(items) == 0 {
		return QuoteCheckoutQuery{}, errs.NewValueIsRequiredError("items")
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
		return QuoteCheckoutQuery{}, err
	}

	return QuoteCheckoutQuery{
		items:        append([]cart.Item(nil), items...),
		deliveryInfo: deliveryInfo,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q QuoteCheckoutQuery) Validate() error {
	return q.guard.Validate(ErrQuoteCheckoutQueryIsNotConstructed)
}

func (q QuoteCheckoutQuery) Items() []cart.Item {
	return append([]cart.Item(nil), q.items...)
}

func (q QuoteCheckoutQuery) DeliveryInfo() delivery.Info {
	return q.deliveryInfo
}

// QuoteCheckoutQueryResponse is the checkout page read model.
//
// FieldErrors is empty when the delivery form would be accepted by
// PlaceOrder. StockWarnings are advisory: stock is only enforced when staff
// approve the order.
type QuoteCheckoutQueryResponse struct {
	Lines              []cart.Line
	Fees               FeeView
	Province           kernel.Province
	CanUseRushDelivery bool
	FieldErrors        delivery.FieldErrors
	StockWarnings      []cart.StockWarning
}
