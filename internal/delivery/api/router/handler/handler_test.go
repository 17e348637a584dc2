package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"coderr/config"
	deliverycontext "coderr/internal/delivery/context"
	domainerrors "coderr/internal/domain/errors"
	"coderr/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseUint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want *uint
	}{
		{"number", `5`, ptrUint(5)},
		{"numeric string", `"12"`, ptrUint(12)},
		{"absent", ``, nil},
		{"null", `null`, nil},
		{"zero", `0`, nil},
		{"negative", `-3`, nil},
		{"text", `"abc"`, nil},
		{"float", `1.5`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, looseUint(json.RawMessage(tt.raw)))
		})
	}
}

func TestPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		want    uint
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero", "0", 0, true},
		{"text", "abc", 0, true},
		{"negative", "-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
			c.SetParamNames("id")
			c.SetParamValues(tt.value)

			got, err := pathID(c, "id")
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrNotFound)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestActorID(t *testing.T) {
	t.Parallel()

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err := actorID(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	deliverycontext.SetUserID(c, 8)
	got, err := actorID(c)
	require.NoError(t, err)
	assert.Equal(t, uint(8), got)
}

func TestJSONKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "str", jsonKind(json.RawMessage(`"x"`)))
	assert.Equal(t, "list", jsonKind(json.RawMessage(`[1]`)))
	assert.Equal(t, "dict", jsonKind(json.RawMessage(`{}`)))
	assert.Equal(t, "bool", jsonKind(json.RawMessage(`true`)))
	assert.Equal(t, "int", jsonKind(json.RawMessage(`0`)))
}

func TestOfferHandler_ParseOfferQuery(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Pagination: config.PaginationConfig{DefaultPageSize: 6, MaxPageSize: 20}}
	h := NewOfferHandler(OfferHandlerParams{Config: cfg})

	tests := []struct {
		name         string
		query        string
		wantPage     int
		wantPageSize int
		wantOrdering repository.OfferOrdering
		wantSearch   string
	}{
		{"defaults", "", 1, 6, repository.OfferOrderingDefault, ""},
		{"explicit page and size", "?page=3&page_size=4", 3, 4, repository.OfferOrderingDefault, ""},
		{"invalid size falls back", "?page_size=abc", 1, 6, repository.OfferOrderingDefault, ""},
		{"zero size falls back", "?page_size=0", 1, 6, repository.OfferOrderingDefault, ""},
		{"size is capped", "?page_size=500", 1, 20, repository.OfferOrderingDefault, ""},
		{"ordering and search", "?ordering=-min_price&search=%20logo%20", 1, 6, repository.OfferOrderingMinPriceDesc, "logo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/offers/"+tt.query, nil), httptest.NewRecorder())

			query, err := h.parseOfferQuery(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, query.Page)
			assert.Equal(t, tt.wantPageSize, query.PageSize)
			assert.Equal(t, tt.wantOrdering, query.Ordering)
			assert.Equal(t, tt.wantSearch, query.Search)
		})
	}

	t.Run("page zero is invalid", func(t *testing.T) {
		t.Parallel()

		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/offers/?page=0", nil), httptest.NewRecorder())

		_, err := h.parseOfferQuery(c)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidPage)
	})
}

func ptrUint(v uint) *uint {
	return &v
}
