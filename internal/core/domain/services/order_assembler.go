package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
	"aims/internal/core/ports"
)

// DefaultPaymentTimeout bounds a payment call when no timeout is configured.
const DefaultPaymentTimeout = 10 * time.Second

// ErrPaymentFailed is matched by errors.Is for every *PaymentError.
var ErrPaymentFailed = errors.New("payment failed")

// PaymentError means the charge did not go through and no order was created.
// The shopper may retry checkout.
type PaymentError struct {
	Amount kernel.Money
	Method order.PaymentMethod
	// Reason is the gateway's decline message, if any.
	Reason string
	Cause  error
}

func (e *PaymentError) Error() string {
	msg := fmt.Sprintf("%s: %s via %s", ErrPaymentFailed, e.Amount.Format(), e.Method)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *PaymentError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrPaymentFailed, e.Cause}
	}
	return []error{ErrPaymentFailed}
}

// OrderAssembler turns a priced cart into a placed order by charging the shopper.
//
// Business rules:
//   - the charged amount is subtotal + VAT + delivery fee + rush fee
//   - the payment call is bounded by a timeout; a slow gateway fails the
//     checkout instead of blocking it
//   - a failed, declined or timed out payment creates no order
//   - a successful payment yields an order in PendingProcessing holding a
//     frozen copy of the lines, delivery info and fees
//   - stock is not touched; it is withdrawn when staff approve the order
type OrderAssembler struct {
	gateway ports.PaymentGateway
	timeout time.Duration
	now     func() time.Time
}

// NewOrderAssembler creates an assembler. A non-positive timeout falls back to
// DefaultPaymentTimeout and a nil clock to time.Now.
func NewOrderAssembler(gateway ports.PaymentGateway, timeout time.Duration, now func() time.Time) OrderAssembler {
	if timeout <= 0 {
		timeout = DefaultPaymentTimeout
	}
	if now == nil {
		now = time.Now
	}
	return OrderAssembler{gateway: gateway, timeout: timeout, now: now}
}

// PlaceOrder charges fees.Total() and assembles the order.
func (a OrderAssembler) PlaceOrder(
	ctx context.Context,
	lines []cart.Line,
	info delivery.Info,
	fees order.FeeBreakdown,
	method order.PaymentMethod,
) (*order.Order, error) {
	if len(lines) == 0 {
		return nil, order.ErrOrderHasNoLines
	}
	if err := method.Validate(); err != nil {
		return nil, err
	}
	if err := fees.Validate(); err != nil {
		return nil, err
	}

	amount := fees.Total()
	result, err := a.charge(ctx, amount, method)
	if err != nil {
		return nil, &PaymentError{Amount: amount, Method: method, Cause: err}
	}
	if !result.Success {
		return nil, &PaymentError{Amount: amount, Method: method, Reason: declineReason(result)}
	}

	payment := order.Payment{
		Method:              method,
		TransactionID:       result.TransactionID,
		TransactionDatetime: result.TransactionDatetime,
	}
	if err = payment.Validate(); err != nil {
		return nil, &PaymentError{Amount: amount, Method: method, Reason: "incomplete payment receipt", Cause: err}
	}

	return order.NewOrder(kernel.NewUUID(), lines, info.Normalized(), fees, payment, a.now())
}

func (a OrderAssembler) charge(ctx context.Context, amount kernel.Money, method order.PaymentMethod) (ports.PaymentResult, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	type outcome struct {
		result ports.PaymentResult
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := a.gateway.ProcessPayment(ctx, amount, method)
		done <- outcome{result: result, err: err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-ctx.Done():
		return ports.PaymentResult{}, fmt.Errorf("payment gateway did not answer: %w", ctx.Err())
	}
}

func declineReason(result ports.PaymentResult) string {
	if msg := strings.TrimSpace(result.Message); msg != "" {
		return msg
	}
	return "declined by gateway"
}
