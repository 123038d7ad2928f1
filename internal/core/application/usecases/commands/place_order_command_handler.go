package commands

import (
	"context"
	"log/slog"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/order"
	"aims/internal/core/domain/services"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// PlaceOrderCommandHandler runs checkout.
//
// Steps:
//   - load the requested products and build cart lines at their sale prices
//   - validate the delivery form; all field errors are returned as delivery.FieldErrors
//   - compute fees with the delivery policy
//   - charge the shopper through the order assembler
//   - store the order and its OrderPlaced event in one transaction
//
// The payment call happens outside the database transaction so that a slow
// gateway never holds row locks.
//
// Example:
//
//	placed, err := handler.Handle(ctx, cmd)
//	var fieldErrs delivery.FieldErrors
//	switch {
//	case errors.As(err, &fieldErrs):
//	    // re-render the form
//	case errors.Is(err, services.ErrPaymentFailed):
//	    // offer to retry
//	}
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.FeeCalculator
	validator  services.DeliveryValidator
	assembler  services.OrderAssembler
	logger     *slog.Logger
}

func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	calculator services.FeeCalculator,
	validator services.DeliveryValidator,
	assembler services.OrderAssembler,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		validator:  validator,
		assembler:  assembler,
		logger:     logger.With("component", "PlaceOrderCommandHandler"),
	}
}

// Handle places the order and returns it.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	ctx, span := tracer.Start(ctx, "PlaceOrder")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	items := cmd.Items()
	products, err := uow.ProductRepository().GetMany(ctx, cart.ItemProductIDs(items))
	if err != nil {
		return nil, err
	}

	shoppingCart := cart.New()
	if err = shoppingCart.AddItems(items, products); err != nil {
		return nil, err
	}
	lines := shoppingCart.Lines()

	info := cmd.DeliveryInfo().Normalized()
	if err = h.validator.Validate(info, lines).Err(); err != nil {
		return nil, err
	}

	province, err := info.ProvinceValue()
	if err != nil {
		return nil, err
	}
	fees := h.calculator.ComputeFees(lines, province, info.IsRushDelivery)

	placed, err := h.assembler.PlaceOrder(ctx, lines, info, fees, cmd.PaymentMethod())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "payment failed")
		return nil, err
	}
	span.SetAttributes(
		attribute.String("order.id", placed.ID().String()),
		attribute.Int64("order.total", placed.TotalAmount().Int64()),
	)

	if err = h.store(ctx, uow, placed); err != nil {
		h.logger.ErrorContext(ctx, "order was paid but could not be stored",
			"order_id", placed.ID().String(),
			"transaction_id", placed.Payment().TransactionID,
			"amount", placed.TotalAmount().Int64(),
			"error", err)
		return nil, err
	}

	return placed, nil
}

func (h PlaceOrderCommandHandler) store(ctx context.Context, uow UoW, placed *order.Order) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
