package http_test

import (
	"context"

	"aims/internal/core/application/usecases/commands"
	"aims/internal/core/application/usecases/queries"
	"aims/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
)

type MockPlaceOrderHandler struct{ mock.Mock }

func (m *MockPlaceOrderHandler) Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockApproveOrderHandler struct{ mock.Mock }

func (m *MockApproveOrderHandler) Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCancelOrderHandler struct{ mock.Mock }

func (m *MockCancelOrderHandler) Handle(ctx context.Context, cmd commands.CancelOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	v, _ := args.Get(0).(*queries.GetOrderQueryResponse)
	return v, args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(
	ctx context.Context,
	query queries.ListOrdersQuery,
) ([]queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	rows, _ := args.Get(0).([]queries.ListOrdersQueryResponse)
	return rows, args.Error(1)
}

type MockQuoteCheckoutHandler struct{ mock.Mock }

func (m *MockQuoteCheckoutHandler) Handle(
	ctx context.Context,
	query queries.QuoteCheckoutQuery,
) (queries.QuoteCheckoutQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.QuoteCheckoutQueryResponse), args.Error(1)
}
