package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "coderr/internal/delivery/context"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
)

// authSchemes are the accepted Authorization header prefixes.
var authSchemes = []string{"Bearer", "Token"}

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
		}

		if err := m.identify(c, header); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate identifies the caller when a token is sent and lets
// anonymous requests through. A token that is sent but invalid is still rejected.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
			if err := m.identify(c, header); err != nil {
				return err
			}
		}

		return next(c)
	}
}

func (m *AuthMiddleware) identify(c echo.Context, header string) error {
	token, ok := tokenFromHeader(header)
	if !ok {
		return errors.Wrap(domainerrors.ErrInvalidToken, "unsupported authorization scheme")
	}

	claims, err := m.tokenSvc.ValidateToken(token)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	deliverycontext.SetUserID(c, claims.UserID)
	slogecho.AddCustomAttributes(c, slog.Uint64("user_id", uint64(claims.UserID)))

	return nil
}

// tokenFromHeader extracts the token from "Bearer <t>" or "Token <t>". The scheme is case-insensitive.
func tokenFromHeader(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}

	token = strings.TrimSpace(token)
	for _, accepted := range authSchemes {
		if strings.EqualFold(scheme, accepted) && token != "" {
			return token, true
		}
	}

	return "", false
}
