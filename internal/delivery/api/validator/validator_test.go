package validator

import (
	"testing"

	domainerrors "coderr/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleDetail struct {
	Price     *decimal.Decimal `json:"price" validate:"required,gte=0"`
	Revisions int              `json:"revisions" validate:"gte=-1"`
}

type sampleRequest struct {
	Username string         `json:"username" validate:"required,max=5"`
	Email    string         `json:"email" validate:"omitempty,email"`
	Type     string         `json:"type" validate:"required,oneof=customer business"`
	Details  []sampleDetail `json:"details" validate:"dive"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()

	price := decimal.RequireFromString("10.50")
	negative := decimal.RequireFromString("-0.01")
	zero := decimal.Zero

	tests := []struct {
		name   string
		input  sampleRequest
		fields map[string]string
	}{
		{
			name: "valid",
			input: sampleRequest{
				Username: "kevin",
				Type:     "business",
				Details:  []sampleDetail{{Price: &price, Revisions: -1}, {Price: &zero}},
			},
		},
		{
			name:  "missing required",
			input: sampleRequest{},
			fields: map[string]string{
				"username": "This field is required.",
				"type":     "This field is required.",
			},
		},
		{
			name:  "too long and bad choice",
			input: sampleRequest{Username: "kevin_the_business", Email: "nope", Type: "admin"},
			fields: map[string]string{
				"username": "Ensure this field has no more than 5 characters.",
				"email":    "Enter a valid email address.",
				"type":     `"admin" is not a valid choice.`,
			},
		},
		{
			name: "nested decimal",
			input: sampleRequest{
				Username: "kevin",
				Type:     "business",
				Details:  []sampleDetail{{Price: &negative}, {Revisions: -2}},
			},
			fields: map[string]string{
				"details[0].price":     "Ensure this value is greater than or equal to 0.",
				"details[1].price":     "This field is required.",
				"details[1].revisions": "Ensure this value is greater than or equal to -1.",
			},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.input)
			if tt.fields == nil {
				require.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Len(t, validationErr.Fields(), len(tt.fields))
			for field, msg := range tt.fields {
				assert.Equal(t, []string{msg}, validationErr.Fields()[field], field)
			}
		})
	}
}

type priceRequest struct {
	Price *decimal.Decimal `json:"price" validate:"required,gte=0,decimal=10 2"`
	Title *string          `json:"title" validate:"omitnil,min=1,max=255"`
}

func TestCustomValidator_DecimalPrecision(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		price   string
		message string
	}{
		{name: "two places", price: "1.23"},
		{name: "trailing zeros", price: "19.5000"},
		{name: "largest value", price: "99999999.99"},
		{name: "small fraction", price: "0.05"},
		{name: "three places", price: "1.239", message: "Ensure that there are no more than 2 decimal places."},
		{name: "too many digits", price: "123456789012", message: "Ensure that there are no more than 10 digits in total."},
		{name: "too many whole digits", price: "123456789.5", message: "Ensure that there are no more than 8 digits before the decimal point."},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			price := decimal.RequireFromString(tt.price)
			err := v.Validate(&priceRequest{Price: &price})
			if tt.message == "" {
				require.NoError(t, err)

				return
			}

			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, []string{tt.message}, validationErr.Fields()["price"])
		})
	}
}

func TestCustomValidator_PatchTitle(t *testing.T) {
	t.Parallel()

	v := New()
	price := decimal.NewFromInt(1)

	require.NoError(t, v.Validate(&priceRequest{Price: &price}))
	require.NoError(t, v.Validate(&priceRequest{Price: &price, Title: ptr("Logo")}))

	err := v.Validate(&priceRequest{Price: &price, Title: ptr("")})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"This field may not be blank."}, validationErr.Fields()["title"])
}

func ptr[T any](v T) *T {
	return &v
}
