package commands

import (
	"context"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
	"aims/internal/core/ports"

	"go.opentelemetry.io/otel/attribute"
)

// RejectOrderCommandHandler moves a pending order to Rejected.
type RejectOrderCommandHandler struct {
	transitioner orderTransitioner
}

func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.Locker,
	now func() time.Time,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locker: locker, now: now},
	}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transitioner.apply(ctx, "RejectOrder", cmd.OrderID(), func(o *order.Order, at time.Time) error {
		return o.Reject(cmd.Reason(), at)
	})
}

// CancelOrderCommandHandler moves a pending order to Cancelled. The
// OrderCancelled event it stores drives the refund downstream. A cancel
// without a reason fails with order.ErrCancelReasonIsRequired.
type CancelOrderCommandHandler struct {
	transitioner orderTransitioner
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locker ports.Locker,
	now func() time.Time,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		transitioner: orderTransitioner{uowFactory: uowFactory, locker: locker, now: now},
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.transitioner.apply(ctx, "CancelOrder", cmd.OrderID(), func(o *order.Order, at time.Time) error {
		return o.Cancel(cmd.Reason(), cmd.Comments(), at)
	})
}

// orderTransitioner runs a status change under the per-order lock and a row lock.
type orderTransitioner struct {
	uowFactory OrderUoWFactory
	locker     ports.Locker
	now        func() time.Time
}

func (t orderTransitioner) apply(
	ctx context.Context,
	spanName string,
	orderID kernel.UUID,
	transition func(o *order.Order, at time.Time) error,
) error {
	ctx, span := tracer.Start(ctx, spanName)
	defer span.End()
	span.SetAttributes(attribute.String("order.id", orderID.String()))

	unlock, err := t.locker.Lock(ctx, orderLockKey(orderID.String()))
	if err != nil {
		return err
	}
	defer unlock()

	uow := t.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	if err = transition(o, t.now()); err != nil {
		span.RecordError(err)
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
