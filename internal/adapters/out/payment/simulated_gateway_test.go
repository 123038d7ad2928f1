package payment_test

import (
	"context"
	"testing"
	"time"

	"aims/internal/adapters/out/payment"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedGateway_ProcessPayment_Success(t *testing.T) {
	gateway := payment.NewSimulatedGateway(0)

	result, err := gateway.ProcessPayment(t.Context(), 638000, order.PaymentMethodVNPay)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.TransactionID)
	assert.False(t, result.TransactionDatetime.IsZero())

	charge, ok := gateway.Charge(result.TransactionID)
	require.True(t, ok)
	assert.Equal(t, kernel.Money(638000), charge.Amount)
	assert.Equal(t, order.PaymentMethodVNPay, charge.Method)
}

func TestSimulatedGateway_ProcessPayment_Declined(t *testing.T) {
	gateway := payment.NewSimulatedGateway(0)
	gateway.SetShouldFail(true)

	result, err := gateway.ProcessPayment(t.Context(), 1000, order.PaymentMethodCreditCard)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, payment.DefaultDeclineMessage, result.Message)
	assert.Empty(t, result.TransactionID)
}

func TestSimulatedGateway_ProcessPayment_UnknownMethod(t *testing.T) {
	result, err := payment.NewSimulatedGateway(0).ProcessPayment(t.Context(), 1000, "CASH")

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "payment method")
}

func TestSimulatedGateway_ProcessPayment_ContextExpires(t *testing.T) {
	gateway := payment.NewSimulatedGateway(time.Second)
	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()

	_, err := gateway.ProcessPayment(ctx, 1000, order.PaymentMethodDomesticCard)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}
