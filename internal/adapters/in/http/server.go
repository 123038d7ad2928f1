// Package http is the storefront REST API.
package http

import (
	"context"
	"log/slog"
	"net/http"

	"aims/internal/core/application/usecases/commands"
	"aims/internal/core/application/usecases/queries"
	"aims/internal/core/domain/model/catalog"
	"aims/internal/core/domain/model/kernel"
	"aims/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateProductHandler interface {
		Handle(ctx context.Context, cmd commands.CreateProductCommand) error
	}
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PlaceOrderCommand) (*order.Order, error)
	}
	ApproveOrderHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error
	}
	RejectOrderHandler interface {
		Handle(ctx context.Context, cmd commands.RejectOrderCommand) error
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) error
	}
	GetProductHandler interface {
		Handle(ctx context.Context, query queries.GetProductQuery) (*queries.GetProductQueryResponse, error)
	}
	QuoteCheckoutHandler interface {
		Handle(ctx context.Context, query queries.QuoteCheckoutQuery) (queries.QuoteCheckoutQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*queries.GetOrderQueryResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
	}
)

// Handlers bundles the use cases the API exposes.
type Handlers struct {
	CreateProduct CreateProductHandler
	PlaceOrder    PlaceOrderHandler
	ApproveOrder  ApproveOrderHandler
	RejectOrder   RejectOrderHandler
	CancelOrder   CancelOrderHandler
	GetProduct    GetProductHandler
	QuoteCheckout QuoteCheckoutHandler
	GetOrder      GetOrderHandler
	ListOrders    ListOrdersHandler
}

// Server translates HTTP requests into commands and queries and maps
// domain errors onto status codes.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      handlers,
		logger: logger.With("component", "http.Server"),
	}
}

// CreateProduct handles POST /api/v1/products.
//
//	@Summary	Add a product to the catalog
//	@Tags		catalog
//	@Accept		json
//	@Produce	json
//	@Param		product	body		NewProduct	true	"product"
//	@Success	201		{object}	Product
//	@Failure	400		{object}	Error
//	@Router		/api/v1/products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req NewProduct
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	weight, err := kernel.WeightFromKg(req.Weight)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(),
		category,
		req.Title,
		kernel.Money(req.Price),
		kernel.Money(req.Value),
		weight,
		req.Quantity,
		req.DiscountPercent,
	)
	if err != nil {
		return s.badRequest(ctx, "Invalid product data: "+err.Error())
	}

	if err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetProductQuery(cmd.ProductID())
	if err != nil {
		return s.fail(ctx, err)
	}
	product, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productOf(product))
}

// GetProduct handles GET /api/v1/products/{productId}.
//
//	@Summary	Get a product with its sale price
//	@Tags		catalog
//	@Produce	json
//	@Param		productId	path		string	true	"product id"	format(uuid)
//	@Success	200			{object}	Product
//	@Failure	404			{object}	Error
//	@Router		/api/v1/products/{productId} [get]
func (s *Server) GetProduct(ctx echo.Context) error {
	productID, err := bindUUIDParam(ctx, "productId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetProductQuery(productID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	product, err := s.h.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productOf(product))
}

// QuoteCheckout handles POST /api/v1/checkout/quote. Delivery form problems
// are part of a 200 response so the page can render them next to the fees.
//
//	@Summary	Price a cart
//	@Tags		checkout
//	@Accept		json
//	@Produce	json
//	@Param		quote	body		QuoteRequest	true	"cart and delivery form"
//	@Success	200		{object}	Quote
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Router		/api/v1/checkout/quote [post]
func (s *Server) QuoteCheckout(ctx echo.Context) error {
	var req QuoteRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	items, err := itemsToDomain(req.Items)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	query, err := queries.NewQuoteCheckoutQuery(items, req.DeliveryInfo.toDomain())
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	quote, err := s.h.QuoteCheckout.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, quoteOf(quote))
}

// PlaceOrder handles POST /api/v1/orders.
//
//	@Summary	Check out and pay
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		PlaceOrderRequest	true	"cart, delivery form and payment method"
//	@Success	201		{object}	Order
//	@Failure	400		{object}	Error
//	@Failure	402		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	422		{object}	Error
//	@Router		/api/v1/orders [post]
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req PlaceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	items, err := itemsToDomain(req.Items)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	method, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPlaceOrderCommand(items, req.DeliveryInfo.toDomain(), method)
	if err != nil {
		return s.badRequest(ctx, "Invalid order data: "+err.Error())
	}

	placed, err := s.h.PlaceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderOf(placed))
}

// ListOrders handles GET /api/v1/orders.
//
//	@Summary	List orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Param		status	query		[]string	false	"status filter"	collectionFormat(multi)
//	@Success	200		{array}		OrderSummary
//	@Router		/api/v1/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	var names []string
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &names); err != nil {
		return s.badRequest(ctx, "Invalid format for parameter status: "+err.Error())
	}

	statuses := make([]order.Status, 0, len(names))
	for _, name := range names {
		status, err := order.ParseStatus(name)
		if err != nil {
			return s.badRequest(ctx, err.Error())
		}
		statuses = append(statuses, status)
	}

	query, err := queries.NewListOrdersQuery(statuses...)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	rows, err := s.h.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderSummary, len(rows))
	for i, r := range rows {
		response[i] = orderSummaryOf(r)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId}.
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"order id"	format(uuid)
//	@Success	200		{object}	Order
//	@Failure	404		{object}	Error
//	@Router		/api/v1/orders/{orderId} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := bindUUIDParam(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	return s.respondWithOrder(ctx, orderID)
}

// ApproveOrder handles POST /api/v1/orders/{orderId}/approve.
//
//	@Summary	Approve a pending order and take its stock
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"order id"	format(uuid)
//	@Success	200		{object}	Order
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/api/v1/orders/{orderId}/approve [post]
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := bindUUIDParam(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	if err := s.h.ApproveOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// RejectOrder handles POST /api/v1/orders/{orderId}/reject.
//
//	@Summary	Reject a pending order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string			true	"order id"	format(uuid)
//	@Param		body	body		RejectRequest	false	"reason"
//	@Success	200		{object}	Order
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/api/v1/orders/{orderId}/reject [post]
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := bindUUIDParam(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	var req RejectRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, req.Reason)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	if err := s.h.RejectOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
//
//	@Summary	Cancel a pending order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orderId	path		string			true	"order id"	format(uuid)
//	@Param		body	body		CancelRequest	true	"non-blank reason (required) and optional comments"
//	@Success	200		{object}	Order
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Failure	409		{object}	Error
//	@Router		/api/v1/orders/{orderId}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := bindUUIDParam(ctx, "orderId")
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	var req CancelRequest
	if err := ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, req.Comments)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	if err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return s.respondWithOrder(ctx, orderID)
}

func (s *Server) respondWithOrder(ctx echo.Context, orderID kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.badRequest(ctx, err.Error())
	}
	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orderViewOf(view))
}

func bindUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromString(id.String())
}
