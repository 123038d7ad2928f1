package ports

import (
	"context"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
)

// PaymentResult is the payment collaborator's answer to a charge.
type PaymentResult struct {
	Success             bool
	TransactionID       string
	TransactionDatetime time.Time
	// Message explains a declined charge.
	Message string
}

// PaymentGateway charges the shopper. Implementations must honour ctx cancellation.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, amount kernel.Money, method order.PaymentMethod) (PaymentResult, error)
}
