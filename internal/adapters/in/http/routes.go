package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterHandlers mounts the API, the health check and the Swagger UI on e.
func RegisterHandlers(e *echo.Echo, s *Server) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")
	v1.POST("/products", s.CreateProduct)
	v1.GET("/products/:productId", s.GetProduct)
	v1.POST("/checkout/quote", s.QuoteCheckout)
	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:orderId", s.GetOrder)
	v1.POST("/orders/:orderId/approve", s.ApproveOrder)
	v1.POST("/orders/:orderId/reject", s.RejectOrder)
	v1.POST("/orders/:orderId/cancel", s.CancelOrder)
}
