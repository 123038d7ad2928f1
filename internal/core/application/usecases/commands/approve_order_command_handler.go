package commands

import (
	"context"
	"time"

	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// ApproveOrderCommandHandler approves an order against current stock.
//
// Concurrency: the order key is locked through ports.Locker, the order row
// and the product rows are locked FOR UPDATE (products in id order), and the
// status change and stock withdrawal commit in the same transaction. Two
// approvals drawing on the same product therefore see each other's
// withdrawals, and the stock check can never be invalidated by a race.
//
// On *order.InsufficientInventoryError or *order.InvalidTransitionError the
// transaction is rolled back and nothing changes.
type ApproveOrderCommandHandler struct {
	uowFactory UoWFactory
	locker     ports.Locker
	now        func() time.Time
}

func NewApproveOrderCommandHandler(
	uowFactory UoWFactory,
	locker ports.Locker,
	now func() time.Time,
) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
		now:        now,
	}
}

func (h ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
	ctx, span := tracer.Start(ctx, "ApproveOrder")
	defer span.End()

	if err := cmd.Validate(); err != nil {
		return err
	}
	span.SetAttributes(attribute.String("order.id", cmd.OrderID().String()))

	unlock, err := h.locker.Lock(ctx, orderLockKey(cmd.OrderID().String()))
	if err != nil {
		return err
	}
	defer unlock()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	productRepo := uow.ProductRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	products, err := productRepo.GetManyForUpdate(ctx, o.ProductIDs())
	if err != nil {
		return err
	}

	if err = o.Approve(catalog.StockLevelsOf(products...), h.now()); err != nil {
		span.RecordError(err)
		return err
	}

	required := o.RequiredStock()
	for _, p := range products {
		if err = p.Withdraw(required[p.ID()]); err != nil {
			return err
		}
		if err = productRepo.Update(ctx, p); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
