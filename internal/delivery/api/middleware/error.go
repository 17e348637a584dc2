// Package middleware holds the API's echo middleware and its central error handler.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"coderr/internal/delivery/api/response"
	deliverycontext "coderr/internal/delivery/context"
	domainerrors "coderr/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "Internal server error, please try again later"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *domainerrors.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, http.StatusBadRequest, validationErr.ErrorCode(), validationErr.Message(), validationErr.Fields())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(c, err)
			_ = response.InternalServerError(c, appErr.ErrorCode(), internalErrorMessage)

			return
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		code, message := describeHTTPError(c, httpErr)
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	m.logUnhandled(c, err)
	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), internalErrorMessage)
}

func (m *ErrorMiddleware) logUnhandled(c echo.Context, err error) {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}

// describeHTTPError maps echo's own errors (routing, binding, body limit) to a code and message.
func describeHTTPError(c echo.Context, httpErr *echo.HTTPError) (string, string) {
	switch httpErr.Code {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message()
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", fmt.Sprintf("Method %q not allowed.", c.Request().Method)
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message()
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE", "Request body is too large."
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		return "PARSE_ERROR", "Malformed request."
	}

	if msg, ok := httpErr.Message.(string); ok {
		return "HTTP_ERROR", msg
	}

	return "HTTP_ERROR", http.StatusText(httpErr.Code)
}
