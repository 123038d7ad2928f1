package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProduct(t *testing.T, title string, price kernel.Money, weight string, stock int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), catalog.Book, title, price, price, kernel.MustWeight(weight), stock, 0)
	require.NoError(t, err)
	return p
}

func hanoiDelivery() delivery.Info {
	return delivery.Info{
		RecipientName: "Nguyen Van A",
		Email:         "a@example.com",
		Phone:         "0912345678",
		Province:      "Hanoi",
		Address:       "1 Dai Co Viet",
	}
}

func pendingOrder(t *testing.T, product *catalog.Product, quantity int) *order.Order {
	t.Helper()
	line, err := cart.NewLine(product, quantity)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []cart.Line{line}, hanoiDelivery(),
		order.FeeBreakdown{Subtotal: line.Amount()},
		order.Payment{Method: order.PaymentMethodVNPay, TransactionID: "TX-1", TransactionDatetime: fixedNow},
		fixedNow)
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
