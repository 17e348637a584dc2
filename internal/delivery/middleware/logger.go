package middleware

import (
	"log/slog"
	"net/http"

	"coderr/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// healthPath is kept out of the access log.
const healthPath = "/health"

// NewAccessLogger returns the HTTP access log middleware.
// 4xx responses are logged at warn and 5xx at error. With debug enabled every
// other request is logged at debug, otherwise at info.
func NewAccessLogger(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	level := slog.LevelInfo
	if cfg != nil && cfg.Env.Debug {
		level = slog.LevelDebug
	}

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     level,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithUserAgent:    true,
		Filters: []slogecho.Filter{
			slogecho.IgnorePath(healthPath),
			slogecho.IgnoreMethod(http.MethodOptions),
		},
	})
}
