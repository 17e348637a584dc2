// Package context carries per-request values (request ID, scoped logger and
// authenticated user) across echo handlers and plain context.Context calls.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the header a request ID is read from and echoed back in.
const HeaderXRequestID = "X-Request-Id"

type valueKey int

const (
	requestIDKey valueKey = iota
	loggerKey
)

// Keys for values kept on echo.Context, which only accepts strings.
const (
	echoRequestID = "coderr.request_id"
	echoUserID    = "coderr.user_id"
)

// GetRequestID returns the request ID stored on c. A request without one is
// given a fresh UUID, which is stored so later calls agree.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestID).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	SetRequestID(c, id)

	return id
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestID, requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request ID.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLogger returns the request-scoped logger, or nil outside a request.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey).(*slog.Logger)

	return logger
}

func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// SetUserID records the authenticated caller on c.
func SetUserID(c echo.Context, userID uint) {
	c.Set(echoUserID, userID)
}

// GetUserID returns the authenticated caller. The second value is false for
// anonymous requests.
func GetUserID(c echo.Context) (uint, bool) {
	userID, ok := c.Get(echoUserID).(uint)

	return userID, ok && userID != 0
}
