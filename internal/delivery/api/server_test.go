package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"coderr/config"
	"coderr/internal/delivery/api/middleware"
	"coderr/internal/delivery/api/response"
	"coderr/internal/delivery/api/router"
	"coderr/internal/delivery/api/router/handler"
	"coderr/internal/domain/entity"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/service"
	mockService "coderr/internal/mocks/service"
	mockUsecase "coderr/internal/mocks/usecase"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type apiFixture struct {
	e        *echo.Echo
	tokens   *mockService.MockTokenService
	auth     *mockUsecase.MockAuthUsecase
	profiles *mockUsecase.MockProfileUsecase
	offers   *mockUsecase.MockOfferUsecase
	orders   *mockUsecase.MockOrderUsecase
	reviews  *mockUsecase.MockReviewUsecase
	baseInfo *mockUsecase.MockBaseInfoUsecase
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.BaseURL = "http://testserver"
	cfg.HTTP.MaxRequestBodySize = "100KB"
	cfg.Pagination = config.PaginationConfig{DefaultPageSize: 6, MaxPageSize: 100}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	f := &apiFixture{
		e:        newEcho(cfg, logger),
		tokens:   mockService.NewMockTokenService(t),
		auth:     mockUsecase.NewMockAuthUsecase(t),
		profiles: mockUsecase.NewMockProfileUsecase(t),
		offers:   mockUsecase.NewMockOfferUsecase(t),
		orders:   mockUsecase.NewMockOrderUsecase(t),
		reviews:  mockUsecase.NewMockReviewUsecase(t),
		baseInfo: mockUsecase.NewMockBaseInfoUsecase(t),
	}

	router.NewRouter(router.RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth, Logger: logger}),
		ProfileHandler:  handler.NewProfileHandler(handler.ProfileHandlerParams{ProfileUC: f.profiles, Logger: logger}),
		OfferHandler:    handler.NewOfferHandler(handler.OfferHandlerParams{OfferUC: f.offers, Config: cfg, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: f.orders, Logger: logger}),
		ReviewHandler:   handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: f.reviews, Logger: logger}),
		BaseInfoHandler: handler.NewBaseInfoHandler(f.baseInfo),
		AuthMiddleware:  middleware.NewAuthMiddleware(f.tokens),
	}).RegisterRoutes(f.e)

	return f
}

// loginAs makes testToken resolve to userID.
func (f *apiFixture) loginAs(userID uint) {
	f.tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{UserID: userID}, nil)
}

func (f *apiFixture) do(method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if authenticated {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func logoOffer() *entity.Offer {
	return &entity.Offer{
		ID:     1,
		UserID: 3,
		Title:  "Logo Design",
		Details: []*entity.OfferDetail{
			{ID: 10, Title: "Basic", Revisions: 2, DeliveryTimeInDays: 5, Price: decimal.NewFromInt(100), Features: []string{"Logo"}, OfferType: entity.OfferTypeBasic},
			{ID: 11, Title: "Standard", Revisions: 5, DeliveryTimeInDays: 7, Price: decimal.NewFromInt(200), OfferType: entity.OfferTypeStandard},
			{ID: 12, Title: "Premium", Revisions: -1, DeliveryTimeInDays: 10, Price: decimal.RequireFromString("500.5"), OfferType: entity.OfferTypePremium},
		},
		User: &entity.User{ID: 3, Username: "kevin", FirstName: "Kevin"},
	}
}

const createOfferBody = `{
	"title": "Logo Design",
	"details": [
		{"title": "Basic", "revisions": 2, "delivery_time_in_days": 5, "price": 100, "features": ["Logo"], "offer_type": "basic"},
		{"title": "Standard", "revisions": 5, "delivery_time_in_days": 7, "price": "200.00", "offer_type": "standard"},
		{"title": "Premium", "revisions": -1, "delivery_time_in_days": 10, "price": 500.5, "offer_type": "premium"}
	]
}`

func TestAPI_Health(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	rec := f.do(http.MethodGet, "/health", "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_CreateOffer(t *testing.T) {
	t.Parallel()

	t.Run("unauthenticated caller gets 401", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		rec := f.do(http.MethodPost, "/api/offers/", createOfferBody, false)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "NOT_AUTHENTICATED", decodeError(t, rec).Code)
	})

	t.Run("creates offer with three details", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.offers.EXPECT().AuthorizeCreate(mock.Anything, uint(3)).Return(nil)
		f.offers.EXPECT().CreateOffer(mock.Anything, uint(3), mock.Anything).
			RunAndReturn(func(_ context.Context, _ uint, input usecase.CreateOfferInput) (*entity.Offer, error) {
				assert.Equal(t, "Logo Design", input.Title)
				require.Len(t, input.Details, 3)
				assert.True(t, input.Details[1].Price.Equal(decimal.NewFromInt(200)))
				assert.Equal(t, []string{}, input.Details[1].Features)
				assert.Equal(t, -1, input.Details[2].Revisions)

				return logoOffer(), nil
			})

		// No trailing slash: the server adds it before routing.
		rec := f.do(http.MethodPost, "/api/offers", createOfferBody, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body handler.OfferWriteResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Details, 3)
		assert.Equal(t, "basic", body.Details[0].OfferType)
		assert.Equal(t, "100.00", body.Details[0].Price)
		assert.Equal(t, "500.50", body.Details[2].Price)
		assert.Equal(t, []string{}, body.Details[1].Features)
		assert.Nil(t, body.Image)
	})

	t.Run("negative price is rejected before the use case", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.offers.EXPECT().AuthorizeCreate(mock.Anything, uint(3)).Return(nil)
		body := strings.Replace(createOfferBody, `"price": 100`, `"price": -1`, 1)

		rec := f.do(http.MethodPost, "/api/offers/", body, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "details[0].price")
	})

	t.Run("customer gets 403 even with an invalid body", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.offers.EXPECT().AuthorizeCreate(mock.Anything, uint(1)).Return(domainerrors.ErrForbidden)
		body := strings.Replace(createOfferBody, `"price": 100`, `"price": -1`, 1)

		rec := f.do(http.MethodPost, "/api/offers/", body, true)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, decodeError(t, rec).Errors)

		rec = f.do(http.MethodPost, "/api/offers/", `{"title": `, true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("price precision follows the column", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			price   string
			message string
		}{
			{"1.239", "Ensure that there are no more than 2 decimal places."},
			{"123456789012", "Ensure that there are no more than 10 digits in total."},
		}

		for _, tt := range tests {
			f := newAPIFixture(t)
			f.loginAs(3)
			f.offers.EXPECT().AuthorizeCreate(mock.Anything, uint(3)).Return(nil)
			body := strings.Replace(createOfferBody, `"price": 100`, `"price": `+tt.price, 1)

			rec := f.do(http.MethodPost, "/api/offers/", body, true)

			require.Equal(t, http.StatusBadRequest, rec.Code, tt.price)
			assert.Equal(t, []string{tt.message}, decodeError(t, rec).Errors["details[0].price"])
		}
	})

	t.Run("image longer than the column", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.offers.EXPECT().AuthorizeCreate(mock.Anything, uint(3)).Return(nil)
		body := strings.Replace(createOfferBody, `"title": "Logo Design",`, `"title": "Logo Design", "image": "`+strings.Repeat("a", 256)+`",`, 1)

		rec := f.do(http.MethodPost, "/api/offers/", body, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"Ensure this field has no more than 255 characters."}, decodeError(t, rec).Errors["image"])
	})

	t.Run("business rule failure from the use case", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.offers.EXPECT().AuthorizeCreate(mock.Anything, uint(3)).Return(nil)
		f.offers.EXPECT().CreateOffer(mock.Anything, uint(3), mock.Anything).
			Return(nil, domainerrors.NewFieldError("details", "An offer must contain exactly 3 details."))

		rec := f.do(http.MethodPost, "/api/offers/", `{"title": "Logo", "details": []}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, []string{"An offer must contain exactly 3 details."}, body.Errors["details"])
	})
}

func TestAPI_ListOffers(t *testing.T) {
	t.Parallel()

	rejected := []struct {
		name       string
		query      string
		wantDetail string
	}{
		{"unknown ordering", "?ordering=title", "Invalid ordering parameter."},
		{"ordering is checked first", "?ordering=title&creator_id=x", "Invalid ordering parameter."},
		{"creator id", "?creator_id=x&min_price=y", "creator_id must be an integer."},
		{"min price", "?min_price=cheap&max_delivery_time=z", "min_price must be a number."},
		{"max delivery time", "?max_delivery_time=soon", "max_delivery_time must be an integer."},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newAPIFixture(t)
			rec := f.do(http.MethodGet, "/api/offers/"+tt.query, "", false)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantDetail, decodeError(t, rec).Detail)
		})
	}

	t.Run("invalid page is 404", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		rec := f.do(http.MethodGet, "/api/offers/?page=abc", "", false)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Invalid page.", decodeError(t, rec).Detail)
	})

	t.Run("paginated envelope", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.offers.EXPECT().ListOffers(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, query usecase.OfferQuery) (*usecase.OfferPage, error) {
				assert.Equal(t, 2, query.Page)
				assert.Equal(t, 1, query.PageSize)
				require.NotNil(t, query.MinPrice)
				assert.Equal(t, "50", query.MinPrice.String())

				return &usecase.OfferPage{Offers: []*entity.Offer{logoOffer()}, Count: 3, Page: 2, PageSize: 1}, nil
			})

		rec := f.do(http.MethodGet, "/api/offers/?page=2&page_size=1&min_price=50", "", false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeMap(t, rec)
		assert.EqualValues(t, 3, body["count"])
		assert.Equal(t, "http://testserver/api/offers/?min_price=50&page=3&page_size=1", body["next"])
		assert.Equal(t, "http://testserver/api/offers/?min_price=50&page_size=1", body["previous"])

		results := body["results"].([]any)
		require.Len(t, results, 1)
		item := results[0].(map[string]any)
		assert.EqualValues(t, 100, item["min_price"])
		assert.EqualValues(t, 5, item["min_delivery_time"])
		assert.Equal(t, map[string]any{"first_name": "Kevin", "last_name": "", "username": "kevin"}, item["user_details"])

		details := item["details"].([]any)
		require.Len(t, details, 3)
		assert.Equal(t, "http://testserver/api/offerdetails/10/", details[0].(map[string]any)["url"])
	})

	t.Run("page size is capped", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.offers.EXPECT().ListOffers(mock.Anything, mock.MatchedBy(func(q usecase.OfferQuery) bool {
			return q.Page == 1 && q.PageSize == 100
		})).Return(&usecase.OfferPage{Page: 1, PageSize: 100}, nil)

		rec := f.do(http.MethodGet, "/api/offers/?page_size=5000", "", false)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeMap(t, rec)
		assert.Nil(t, body["next"])
		assert.Nil(t, body["previous"])
		assert.Equal(t, []any{}, body["results"])
	})
}

func TestAPI_GetOffer(t *testing.T) {
	t.Parallel()

	t.Run("non-integer id is 404", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)

		rec := f.do(http.MethodGet, "/api/offers/abc/", "", true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("single offer has no user details", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.offers.EXPECT().GetOffer(mock.Anything, uint(1)).Return(logoOffer(), nil)

		rec := f.do(http.MethodGet, "/api/offers/1/", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeMap(t, rec)
		assert.NotContains(t, body, "user_details")
		assert.EqualValues(t, 3, body["user"])
	})
}

func TestAPI_UpdateOffer(t *testing.T) {
	t.Parallel()

	t.Run("ownership is checked before the body", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name     string
			authErr  error
			wantCode int
		}{
			{"stranger", domainerrors.ErrForbidden, http.StatusForbidden},
			{"missing offer", domainerrors.ErrNotFound, http.StatusNotFound},
		}

		for _, tt := range tests {
			f := newAPIFixture(t)
			f.loginAs(4)
			f.offers.EXPECT().AuthorizeUpdate(mock.Anything, uint(4), uint(1)).Return(tt.authErr)

			rec := f.do(http.MethodPatch, "/api/offers/1/", `{"title": "", "details": [{"offer_type": "basic", "price": -5}]}`, true)

			assert.Equal(t, tt.wantCode, rec.Code, tt.name)
		}
	})

	t.Run("owner cannot blank the title", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.offers.EXPECT().AuthorizeUpdate(mock.Anything, uint(3), uint(1)).Return(nil)

		rec := f.do(http.MethodPatch, "/api/offers/1/", `{"title": "", "details": [{"offer_type": "basic", "title": ""}]}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errs := decodeError(t, rec).Errors
		assert.Equal(t, []string{"This field may not be blank."}, errs["title"])
		assert.Equal(t, []string{"This field may not be blank."}, errs["details[0].title"])
	})

	t.Run("owner patches a tier", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.offers.EXPECT().AuthorizeUpdate(mock.Anything, uint(3), uint(1)).Return(nil)
		f.offers.EXPECT().UpdateOffer(mock.Anything, uint(3), uint(1), mock.Anything).
			RunAndReturn(func(_ context.Context, _, _ uint, input usecase.UpdateOfferInput) (*entity.Offer, error) {
				require.Len(t, input.Details, 1)
				assert.True(t, input.Details[0].Price.Equal(decimal.RequireFromString("120.5")))

				return logoOffer(), nil
			})

		rec := f.do(http.MethodPatch, "/api/offers/1/", `{"details": [{"offer_type": "basic", "price": "120.50"}]}`, true)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAPI_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("other user's profile is forbidden before the body is read", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.profiles.EXPECT().AuthorizeUpdate(mock.Anything, uint(1), uint(2)).Return(domainerrors.ErrForbidden)

		rec := f.do(http.MethodPatch, "/api/profile/2/", `{"email": "nope"}`, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("file longer than the column", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.profiles.EXPECT().AuthorizeUpdate(mock.Anything, uint(1), uint(1)).Return(nil)

		rec := f.do(http.MethodPatch, "/api/profile/1/", `{"file": "`+strings.Repeat("f", 256)+`"}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Errors, "file")
	})
}

func TestAPI_Registration(t *testing.T) {
	t.Parallel()

	const body = `{"username": "maria", "email": "maria@example.com", "password": "pw", "repeated_password": "pw", "type": "business"}`

	t.Run("created with token", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.auth.EXPECT().Register(mock.Anything, usecase.RegisterInput{
			Username:         "maria",
			Email:            "maria@example.com",
			Password:         "pw",
			RepeatedPassword: "pw",
			Type:             entity.ProfileTypeBusiness,
		}).Return(&usecase.AuthOutput{Token: "jwt", User: &entity.User{ID: 9, Username: "maria", Email: "maria@example.com"}}, nil)

		rec := f.do(http.MethodPost, "/api/registration/", body, false)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got handler.AuthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, handler.AuthResponse{Token: "jwt", Username: "maria", Email: "maria@example.com", UserID: 9}, got)
	})

	t.Run("password mismatch", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.auth.EXPECT().Register(mock.Anything, mock.Anything).
			Return(nil, domainerrors.NewFieldError("repeated_password", "Passwords do not match."))

		rec := f.do(http.MethodPost, "/api/registration/", strings.Replace(body, `"repeated_password": "pw"`, `"repeated_password": "other"`, 1), false)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"Passwords do not match."}, decodeError(t, rec).Errors["repeated_password"])
	})

	t.Run("missing fields never reach the use case", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		rec := f.do(http.MethodPost, "/api/registration/", `{"email": "not-an-email", "type": "admin"}`, false)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errs := decodeError(t, rec).Errors
		assert.Equal(t, []string{"This field is required."}, errs["username"])
		assert.Equal(t, []string{"Enter a valid email address."}, errs["email"])
		assert.Contains(t, errs, "type")
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		rec := f.do(http.MethodPost, "/api/registration/", `{"username": `, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAPI_Login(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	f.auth.EXPECT().Login(mock.Anything, usecase.LoginInput{Username: "kevin", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := f.do(http.MethodPost, "/api/login/", `{"username": "kevin", "password": "wrong"}`, false)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeError(t, rec).Detail)
}

func TestAPI_BaseInfo(t *testing.T) {
	t.Parallel()

	f := newAPIFixture(t)
	f.baseInfo.EXPECT().GetBaseInfo(mock.Anything).Return(&entity.BaseInfo{}, nil)

	rec := f.do(http.MethodGet, "/api/base-info/", "", false)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"review_count": 0, "average_rating": 0, "business_profile_count": 0, "offer_count": 0}`, rec.Body.String())
}

func TestAPI_Orders(t *testing.T) {
	t.Parallel()

	t.Run("offer detail id accepted as string", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		detailID := uint(5)
		f.orders.EXPECT().AuthorizeCreate(mock.Anything, uint(1)).Return(nil)
		f.orders.EXPECT().CreateOrder(mock.Anything, uint(1), usecase.CreateOrderInput{OfferDetailID: &detailID}).
			Return(&entity.Order{ID: 4, CustomerUserID: 1, BusinessUserID: 3, Price: decimal.NewFromInt(100), Status: entity.OrderStatusInProgress, OfferType: entity.OfferTypeBasic}, nil)

		rec := f.do(http.MethodPost, "/api/orders/", `{"offer_detail_id": "5"}`, true)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeMap(t, rec)
		assert.Equal(t, "100.00", body["price"])
		assert.Equal(t, "in_progress", body["status"])
		assert.Equal(t, []any{}, body["features"])
	})

	t.Run("malformed offer detail id is passed as missing", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.orders.EXPECT().AuthorizeCreate(mock.Anything, uint(1)).Return(nil)
		f.orders.EXPECT().CreateOrder(mock.Anything, uint(1), usecase.CreateOrderInput{}).
			Return(nil, domainerrors.NewFieldError("offer_detail_id", "A valid integer is required."))

		rec := f.do(http.MethodPost, "/api/orders/", `{"offer_detail_id": "abc"}`, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("business user cannot order even with a broken body", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.orders.EXPECT().AuthorizeCreate(mock.Anything, uint(3)).Return(domainerrors.ErrForbidden)

		rec := f.do(http.MethodPost, "/api/orders/", `{"offer_detail_id": `, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("status patch by a stranger is forbidden before the body", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.orders.EXPECT().AuthorizeUpdate(mock.Anything, uint(1), uint(4)).Return(domainerrors.ErrForbidden)

		rec := f.do(http.MethodPatch, "/api/orders/4/", `{"status": 7}`, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-staff delete is forbidden", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.orders.EXPECT().DeleteOrder(mock.Anything, uint(1), uint(4)).Return(domainerrors.ErrForbidden)

		rec := f.do(http.MethodDelete, "/api/orders/4/", "", true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("order counts", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.tokens.EXPECT().ValidateToken(testToken).Return(&service.Claims{UserID: 1}, nil).Times(3)
		f.orders.EXPECT().CountOrders(mock.Anything, uint(3), entity.OrderStatusInProgress).Return(2, nil)
		f.orders.EXPECT().CountOrders(mock.Anything, uint(3), entity.OrderStatusCompleted).Return(1, nil)
		f.orders.EXPECT().CountOrders(mock.Anything, uint(1), entity.OrderStatusInProgress).Return(0, domainerrors.ErrNotFound)

		rec := f.do(http.MethodGet, "/api/order-count/3/", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"order_count": 2}`, rec.Body.String())

		rec = f.do(http.MethodGet, "/api/completed-order-count/3/", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"completed_order_count": 1}`, rec.Body.String())

		rec = f.do(http.MethodGet, "/api/order-count/1/", "", true)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAPI_Reviews(t *testing.T) {
	t.Parallel()

	t.Run("duplicate review is forbidden", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		businessUserID, rating := uint(3), 5
		f.reviews.EXPECT().AuthorizeCreate(mock.Anything, uint(1)).Return(nil)
		f.reviews.EXPECT().CreateReview(mock.Anything, uint(1), usecase.CreateReviewInput{
			BusinessUserID: &businessUserID,
			Rating:         &rating,
			Description:    "Great",
		}).Return(nil, domainerrors.ErrDuplicateReview)

		rec := f.do(http.MethodPost, "/api/reviews/", `{"business_user": 3, "rating": 5, "description": "Great"}`, true)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "DUPLICATE_REVIEW", decodeError(t, rec).Code)
	})

	t.Run("rating must be an integer", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)
		f.reviews.EXPECT().AuthorizeCreate(mock.Anything, uint(1)).Return(nil)

		rec := f.do(http.MethodPost, "/api/reviews/", `{"business_user": 3, "rating": "five"}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, []string{"A valid integer is required."}, decodeError(t, rec).Errors["rating"])
	})

	t.Run("business user gets 401 before the body is checked", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(3)
		f.reviews.EXPECT().AuthorizeCreate(mock.Anything, uint(3)).Return(domainerrors.ErrReviewerNotCustomer)

		rec := f.do(http.MethodPost, "/api/reviews/", `{"business_user": "abc", "rating": 5}`, true)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "REVIEWER_NOT_CUSTOMER", decodeError(t, rec).Code)
	})

	t.Run("edit by another user is forbidden before the body", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(2)
		f.reviews.EXPECT().AuthorizeUpdate(mock.Anything, uint(2), uint(8)).Return(domainerrors.ErrForbidden)

		rec := f.do(http.MethodPatch, "/api/reviews/8/", `{"rating": "ten"}`, true)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("malformed filter", func(t *testing.T) {
		t.Parallel()

		f := newAPIFixture(t)
		f.loginAs(1)

		rec := f.do(http.MethodGet, "/api/reviews/?business_user_id=abc", "", true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "business_user_id must be an integer.", decodeError(t, rec).Detail)
	})
}
