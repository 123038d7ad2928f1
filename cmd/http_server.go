package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpin "aims/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewHTTPServer builds the API server: openAPI validates every request and is
// published to the Swagger UI, and the handlers come from app.
func NewHTTPServer(app CompositionRoot, openAPI []byte, addr string, logger *slog.Logger) (*http.Server, error) {
	doc, err := httpin.LoadOpenAPI(openAPI)
	if err != nil {
		return nil, err
	}
	validator, err := httpin.RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err := httpin.RegisterDocs(doc); err != nil {
		return nil, fmt.Errorf("failed to register API docs: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(validator)

	server := httpin.NewServer(httpin.Handlers{
		CreateProduct: app.CreateCreateProductCommandHandler(),
		PlaceOrder:    app.CreatePlaceOrderCommandHandler(),
		ApproveOrder:  app.CreateApproveOrderCommandHandler(),
		RejectOrder:   app.CreateRejectOrderCommandHandler(),
		CancelOrder:   app.CreateCancelOrderCommandHandler(),
		GetProduct:    app.CreateGetProductQueryHandler(),
		QuoteCheckout: app.CreateQuoteCheckoutQueryHandler(),
		GetOrder:      app.CreateGetOrderQueryHandler(),
		ListOrders:    app.CreateListOrdersQueryHandler(),
	}, logger)
	httpin.RegisterHandlers(e, server)

	return &http.Server{
		Addr:              addr,
		Handler:           otelhttp.NewHandler(e, "aims-http"),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}
