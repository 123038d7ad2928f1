package queries

import (
	"context"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/services"
)

// ProductReader loads catalog products for read-only use.
type ProductReader interface {
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*catalog.Product, error)
}

// QuoteCheckoutQueryHandler prices a cart with the same calculator and
// validator PlaceOrder uses, so a quote and the charged amount never disagree.
type QuoteCheckoutQueryHandler struct {
	products   ProductReader
	calculator services.FeeCalculator
	validator  services.DeliveryValidator
}

func NewQuoteCheckoutQueryHandler(
	products ProductReader,
	calculator services.FeeCalculator,
	validator services.DeliveryValidator,
) QuoteCheckoutQueryHandler {
	return QuoteCheckoutQueryHandler{
		products:   products,
		calculator: calculator,
		validator:  validator,
	}
}

// Handle builds cart lines at current sale prices and quotes them.
// Returns errs.ObjectNotFoundError when an item names an unknown product.
// A blank province is reported as a field error and priced at the
// non-metro rate.
func (h QuoteCheckoutQueryHandler) Handle(
	ctx context.Context,
	query QuoteCheckoutQuery,
) (QuoteCheckoutQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteCheckoutQueryResponse{}, err
	}

	items := query.Items()
	products, err := h.products.GetMany(ctx, cart.ItemProductIDs(items))
	if err != nil {
		return QuoteCheckoutQueryResponse{}, err
	}

	shoppingCart := cart.New()
	if err = shoppingCart.AddItems(items, products); err != nil {
		return QuoteCheckoutQueryResponse{}, err
	}
	lines := shoppingCart.Lines()

	info := query.DeliveryInfo().Normalized()
	province, _ := info.ProvinceValue()

	return QuoteCheckoutQueryResponse{
		Lines:              lines,
		Fees:               feeViewOf(h.calculator.ComputeFees(lines, province, info.IsRushDelivery)),
		Province:           province,
		CanUseRushDelivery: h.calculator.CanUseRushDelivery(lines, province),
		FieldErrors:        h.validator.Validate(info, lines),
		StockWarnings:      shoppingCart.StockWarnings(catalog.StockLevelsOf(products...)),
	}, nil
}
