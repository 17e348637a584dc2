// Package response shapes the JSON bodies written by the API handlers.
package response

import (
	"net/http"

	deliverycontext "coderr/internal/delivery/context"
	domainerrors "coderr/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail    string                   `json:"detail"`
	Code      string                   `json:"code"`
	Errors    domainerrors.FieldErrors `json:"errors,omitempty"`
	RequestID string                   `json:"request_id"`
}

// Success writes data as the whole response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes a 200 response.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created writes a 201 response.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// NoContent writes an empty 204 response.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error writes an error response. Field errors are only sent with 400.
func Error(c echo.Context, statusCode int, errorCode, message string, fields domainerrors.FieldErrors) error {
	if statusCode != http.StatusBadRequest {
		fields = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Detail:    message,
		Code:      errorCode,
		Errors:    fields,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// InternalServerError writes a 500 response.
func InternalServerError(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
