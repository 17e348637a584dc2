package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "coderr/internal/delivery/context"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/service"
	mockService "coderr/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoUserID answers with the authenticated user id, or 0 for anonymous callers.
func echoUserID(c echo.Context) error {
	userID, _ := deliverycontext.GetUserID(c)

	return c.JSON(http.StatusOK, map[string]uint{"user_id": userID})
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/offers/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		setupMock func(m *mockService.MockTokenService)
		wantErr   error
		wantID    uint
	}{
		{
			name:    "missing header",
			header:  "",
			wantErr: domainerrors.ErrUnauthorized,
		},
		{
			name:   "bearer token",
			header: "Bearer good",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 7}, nil)
			},
			wantID: 7,
		},
		{
			name:   "token scheme is case-insensitive",
			header: "token good",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 3}, nil)
			},
			wantID: 3,
		},
		{
			name:    "unsupported scheme",
			header:  "Basic dXNlcjpwYXNz",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:    "scheme without token",
			header:  "Bearer",
			wantErr: domainerrors.ErrInvalidToken,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMock: func(m *mockService.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantErr: domainerrors.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokenSvc := mockService.NewMockTokenService(t)
			if tt.setupMock != nil {
				tt.setupMock(tokenSvc)
			}

			c, rec := newAuthContext(tt.header)
			err := NewAuthMiddleware(tokenSvc).Authenticate(echoUserID)(c)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, c.Response().Committed)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			userID, ok := deliverycontext.GetUserID(c)
			assert.True(t, ok)
			assert.Equal(t, tt.wantID, userID)
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Parallel()

	t.Run("anonymous passes through", func(t *testing.T) {
		t.Parallel()

		c, rec := newAuthContext("")
		err := NewAuthMiddleware(mockService.NewMockTokenService(t)).OptionalAuthenticate(echoUserID)(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		_, ok := deliverycontext.GetUserID(c)
		assert.False(t, ok)
	})

	t.Run("valid token identifies caller", func(t *testing.T) {
		t.Parallel()

		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 4}, nil)

		c, _ := newAuthContext("Bearer good")
		require.NoError(t, NewAuthMiddleware(tokenSvc).OptionalAuthenticate(echoUserID)(c))

		userID, ok := deliverycontext.GetUserID(c)
		assert.True(t, ok)
		assert.Equal(t, uint(4), userID)
	})

	t.Run("invalid token is still rejected", func(t *testing.T) {
		t.Parallel()

		tokenSvc := mockService.NewMockTokenService(t)
		tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

		c, _ := newAuthContext("Bearer bad")
		err := NewAuthMiddleware(tokenSvc).OptionalAuthenticate(echoUserID)(c)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})
}
