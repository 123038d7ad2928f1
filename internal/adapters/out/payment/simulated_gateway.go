// Package payment holds the payment gateway adapters.
package payment

import (
	"context"
	"sync"
	"time"

	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
	"aims/internal/core/ports"

	"github.com/google/uuid"
)

const DefaultDeclineMessage = "payment declined: insufficient funds"

// Charge is a payment accepted by the simulated gateway.
type Charge struct {
	TransactionID string
	Amount        kernel.Money
	Method        order.PaymentMethod
	At            time.Time
}

// SimulatedGateway is an in-memory stand-in for the card and VNPay
// processors. It approves every charge unless told to fail, and remembers
// accepted charges so that refunds can be matched to them.
type SimulatedGateway struct {
	mu         sync.RWMutex
	charges    map[string]Charge
	shouldFail bool
	latency    time.Duration
	now        func() time.Time
}

func NewSimulatedGateway(latency time.Duration) *SimulatedGateway {
	return &SimulatedGateway{
		charges: make(map[string]Charge),
		latency: latency,
		now:     time.Now,
	}
}

// SetShouldFail makes subsequent charges decline.
func (g *SimulatedGateway) SetShouldFail(shouldFail bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.shouldFail = shouldFail
}

// ProcessPayment charges amount. A declined charge is a result with
// Success=false, not an error; errors mean the gateway could not be reached,
// here only a cancelled or expired context.
func (g *SimulatedGateway) ProcessPayment(
	ctx context.Context,
	amount kernel.Money,
	method order.PaymentMethod,
) (ports.PaymentResult, error) {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ports.PaymentResult{}, ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.shouldFail {
		return ports.PaymentResult{Message: DefaultDeclineMessage}, nil
	}
	if err := method.Validate(); err != nil {
		return ports.PaymentResult{Message: err.Error()}, nil
	}

	charge := Charge{
		TransactionID: uuid.New().String(),
		Amount:        amount,
		Method:        method,
		At:            g.now().UTC(),
	}
	g.charges[charge.TransactionID] = charge

	return ports.PaymentResult{
		Success:             true,
		TransactionID:       charge.TransactionID,
		TransactionDatetime: charge.At,
	}, nil
}

// Charge returns an accepted charge by transaction id.
func (g *SimulatedGateway) Charge(transactionID string) (Charge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c, ok := g.charges[transactionID]
	return c, ok
}
