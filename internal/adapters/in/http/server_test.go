package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"aims/api"
	aimshttp "aims/internal/adapters/in/http"
	"aims/internal/core/application/usecases/commands"
	"aims/internal/core/application/usecases/queries"
	"aims/internal/core/domain/model/cart"
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"
	"aims/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 10, 15, 3, 0, 0, 0, time.UTC)

type testAPI struct {
	echo       *echo.Echo
	placeOrder *MockPlaceOrderHandler
	approve    *MockApproveOrderHandler
	cancel     *MockCancelOrderHandler
	getOrder   *MockGetOrderHandler
	listOrders *MockListOrdersHandler
	quote      *MockQuoteCheckoutHandler
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()
	a := testAPI{
		echo:       echo.New(),
		placeOrder: &MockPlaceOrderHandler{},
		approve:    &MockApproveOrderHandler{},
		cancel:     &MockCancelOrderHandler{},
		getOrder:   &MockGetOrderHandler{},
		listOrders: &MockListOrdersHandler{},
		quote:      &MockQuoteCheckoutHandler{},
	}

	doc, err := aimshttp.LoadOpenAPI(api.OpenAPI)
	require.NoError(t, err)
	validator, err := aimshttp.RequestValidator(doc)
	require.NoError(t, err)
	a.echo.Use(validator)

	server := aimshttp.NewServer(aimshttp.Handlers{
		PlaceOrder:    a.placeOrder,
		ApproveOrder:  a.approve,
		CancelOrder:   a.cancel,
		GetOrder:      a.getOrder,
		ListOrders:    a.listOrders,
		QuoteCheckout: a.quote,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	aimshttp.RegisterHandlers(a.echo, server)
	return a
}

func (a testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func placeOrderBody(productID kernel.UUID) string {
	return `{
		"items": [{"productId": "` + productID.String() + `", "quantity": 2}],
		"deliveryInfo": {
			"recipientName": "Nguyen Van A",
			"email": "a@example.com",
			"phone": "0912345678",
			"province": "Hanoi",
			"address": "1 Dai Co Viet"
		},
		"paymentMethod": "VNPAY"
	}`
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), catalog.Book, "Go in Action", 150000, 150000,
		kernel.MustWeight("0.5"), 10, 0)
	require.NoError(t, err)
	line, err := cart.NewLine(p, 2)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), []cart.Line{line}, delivery.Info{
		RecipientName: "Nguyen Van A",
		Email:         "a@example.com",
		Phone:         "0912345678",
		Province:      "Hanoi",
		Address:       "1 Dai Co Viet",
	}, order.FeeBreakdown{Subtotal: 300000, VAT: 30000},
		order.Payment{Method: order.PaymentMethodVNPay, TransactionID: "TX-1", TransactionDatetime: placedAt},
		placedAt)
	require.NoError(t, err)
	return o
}

func TestHealth(t *testing.T) {
	rec := newTestAPI(t).do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Healthy", rec.Body.String())
}

func TestPlaceOrder_Created(t *testing.T) {
	a := newTestAPI(t)
	placed := placedOrder(t)
	a.placeOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.PlaceOrderCommand) bool {
		return cmd.PaymentMethod() == order.PaymentMethodVNPay && len(cmd.Items()) == 1 &&
			cmd.DeliveryInfo().Province == "Hanoi"
	})).Return(placed, nil).Once()

	rec := a.do(http.MethodPost, "/api/v1/orders", placeOrderBody(kernel.NewUUID()))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body aimshttp.Order
	decode(t, rec, &body)
	assert.Equal(t, placed.ID().String(), body.ID)
	assert.Equal(t, "PENDING_PROCESSING", body.Status)
	assert.Equal(t, int64(330000), body.Fees.Total)
	require.Len(t, body.Lines, 1)
	assert.Equal(t, int64(300000), body.Lines[0].Amount)
	assert.Equal(t, "TX-1", body.Payment.TransactionID)
	a.placeOrder.AssertExpectations(t)
}

func TestPlaceOrder_FieldErrors(t *testing.T) {
	a := newTestAPI(t)
	a.placeOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, delivery.FieldErrors{
		delivery.FieldEmail: "email is not valid",
		delivery.FieldPhone: "phone must have 10 digits",
	}).Once()

	rec := a.do(http.MethodPost, "/api/v1/orders", placeOrderBody(kernel.NewUUID()))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body aimshttp.Error
	decode(t, rec, &body)
	assert.Equal(t, map[string]string{
		"email": "email is not valid",
		"phone": "phone must have 10 digits",
	}, body.FieldErrors)
}

func TestPlaceOrder_PaymentDeclined(t *testing.T) {
	a := newTestAPI(t)
	a.placeOrder.On("Handle", mock.Anything, mock.Anything).Return(nil, &services.PaymentError{
		Amount: 330000,
		Method: order.PaymentMethodVNPay,
		Reason: "insufficient funds",
	}).Once()

	rec := a.do(http.MethodPost, "/api/v1/orders", placeOrderBody(kernel.NewUUID()))

	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient funds")
}

func TestPlaceOrder_RejectedBySchema(t *testing.T) {
	a := newTestAPI(t)

	rec := a.do(http.MethodPost, "/api/v1/orders", `{"items": [], "deliveryInfo": {}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	a.placeOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestApproveOrder_InsufficientInventory(t *testing.T) {
	a := newTestAPI(t)
	productID := kernel.NewUUID()
	a.approve.On("Handle", mock.Anything, mock.Anything).Return(&order.InsufficientInventoryError{
		Shortages: []order.Shortage{{ProductID: productID, Title: "Abbey Road", Requested: 3, Available: 1}},
	}).Once()

	rec := a.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/approve", "")

	require.Equal(t, http.StatusConflict, rec.Code)
	var body aimshttp.Error
	decode(t, rec, &body)
	require.Len(t, body.Shortages, 1)
	assert.Equal(t, productID.String(), body.Shortages[0].ProductID)
	assert.Equal(t, 1, body.Shortages[0].Available)
	a.getOrder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCancelOrder_ReturnsUpdatedOrder(t *testing.T) {
	a := newTestAPI(t)
	orderID := kernel.NewUUID()
	a.cancel.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CancelOrderCommand) bool {
		return cmd.OrderID() == orderID && cmd.Reason() == "changed my mind"
	})).Return(nil).Once()
	a.getOrder.On("Handle", mock.Anything, mock.Anything).Return(&queries.GetOrderQueryResponse{
		ID:        orderID,
		Status:    order.Cancelled,
		Reason:    "changed my mind",
		CreatedAt: placedAt,
	}, nil).Once()

	rec := a.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/cancel", `{"reason": "changed my mind"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body aimshttp.Order
	decode(t, rec, &body)
	assert.Equal(t, "CANCELLED", body.Status)
	assert.Equal(t, "changed my mind", body.Reason)
}

func TestCancelOrder_AlreadyApproved(t *testing.T) {
	a := newTestAPI(t)
	a.cancel.On("Handle", mock.Anything, mock.Anything).
		Return(&order.InvalidTransitionError{From: order.Approved, Action: order.ActionCancel}).Once()

	rec := a.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/cancel", `{"reason": "late"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetOrder_InvalidID(t *testing.T) {
	rec := newTestAPI(t).do(http.MethodGet, "/api/v1/orders/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListOrders_StatusFilter(t *testing.T) {
	a := newTestAPI(t)
	a.listOrders.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.ListOrdersQuery) bool {
		s := q.Statuses()
		return len(s) == 2 && s[0] == order.PendingProcessing && s[1] == order.Approved
	})).Return([]queries.ListOrdersQueryResponse{{
		ID:            kernel.NewUUID(),
		Status:        order.PendingProcessing,
		RecipientName: "Nguyen Van A",
		TotalAmount:   330000,
		PaymentMethod: order.PaymentMethodVNPay,
		CreatedAt:     placedAt,
	}}, nil).Once()

	rec := a.do(http.MethodGet, "/api/v1/orders?status=PENDING_PROCESSING&status=APPROVED", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body []aimshttp.OrderSummary
	decode(t, rec, &body)
	require.Len(t, body, 1)
	assert.Equal(t, int64(330000), body[0].TotalAmount)
	a.listOrders.AssertExpectations(t)
}

func TestQuoteCheckout_ReportsFieldErrorsWithFees(t *testing.T) {
	a := newTestAPI(t)
	a.quote.On("Handle", mock.Anything, mock.Anything).Return(queries.QuoteCheckoutQueryResponse{
		Fees: queries.FeeView{Subtotal: 80000, VAT: 8000, DeliveryFee: 35000, Total: 123000},
		FieldErrors: delivery.FieldErrors{
			delivery.FieldProvince: "province is required",
		},
	}, nil).Once()

	rec := a.do(http.MethodPost, "/api/v1/checkout/quote", `{
		"items": [{"productId": "`+kernel.NewUUID().String()+`", "quantity": 1}],
		"deliveryInfo": {}
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var body aimshttp.Quote
	decode(t, rec, &body)
	assert.Equal(t, int64(123000), body.Fees.Total)
	assert.Equal(t, "province is required", body.FieldErrors["province"])
}
