package http

import (
	"context"
	"errors"
	"net/http"

	"aims/internal/core/domain/model/delivery"
	"aims/internal/core/domain/model/order"
	"aims/internal/core/domain/services"
	"aims/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error onto an HTTP status code.
func statusOf(err error) int {
	var fieldErrs delivery.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrPaymentFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, order.ErrInsufficientInventory),
		errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorBody(code int, err error) Error {
	body := Error{Code: code, Message: err.Error()}

	var fieldErrs delivery.FieldErrors
	if errors.As(err, &fieldErrs) {
		body.Message = delivery.ErrDeliveryInfoIsInvalid.Error()
		body.FieldErrors = fieldErrorsOf(fieldErrs)
	}

	var inventoryErr *order.InsufficientInventoryError
	if errors.As(err, &inventoryErr) {
		for _, sh := range inventoryErr.Shortages {
			body.Shortages = append(body.Shortages, Shortage{
				ProductID: sh.ProductID.String(),
				Title:     sh.Title,
				Requested: sh.Requested,
				Available: sh.Available,
			})
		}
	}

	if code == http.StatusInternalServerError {
		body.Message = http.StatusText(code)
	}
	return body
}

func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
	}
	return ctx.JSON(code, errorBody(code, err))
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
