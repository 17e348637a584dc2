package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// tagDecimal bounds a decimal like a numeric(p,s) column: "decimal=10 2".
const tagDecimal = "decimal"

func validateDecimal(fl validator.FieldLevel) bool {
	d, ok := exactDecimal(fl)
	if !ok {
		return false
	}

	maxDigits, places, err := parseDecimalParam(fl.Param())
	if err != nil {
		return false
	}

	return decimalViolation(d, maxDigits, places) == ""
}

// exactDecimal reads the field straight from its parent struct, since the
// registered type func hands validations a float64.
func exactDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() == reflect.Struct {
		if field := parent.FieldByName(fl.StructFieldName()); field.IsValid() && field.CanInterface() {
			switch v := field.Interface().(type) {
			case decimal.Decimal:
				return v, true
			case *decimal.Decimal:
				if v != nil {
					return *v, true
				}
			}
		}
	}

	return asDecimal(fl.Field().Interface())
}

func asDecimal(v any) (decimal.Decimal, bool) {
	switch v := v.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}

		return *v, true
	case float64:
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Decimal{}, false
	}
}

func parseDecimalParam(param string) (int, int, error) {
	parts := strings.Fields(param)
	if len(parts) != 2 {
		return 0, 0, errors.Errorf("decimal wants two params, got %q", param)
	}

	maxDigits, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "decimal max digits")
	}

	places, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "decimal places")
	}

	return maxDigits, places, nil
}

// decimalViolation returns the first precision rule d breaks, or "".
// Trailing fractional zeros do not count.
func decimalViolation(d decimal.Decimal, maxDigits, places int) string {
	text := strings.TrimPrefix(d.String(), "-")

	whole, frac, _ := strings.Cut(text, ".")
	whole = strings.TrimLeft(whole, "0")

	switch {
	case len(whole)+len(frac) > maxDigits:
		return fmt.Sprintf("Ensure that there are no more than %d digits in total.", maxDigits)
	case len(frac) > places:
		return fmt.Sprintf("Ensure that there are no more than %d decimal places.", places)
	case len(whole) > maxDigits-places:
		return fmt.Sprintf("Ensure that there are no more than %d digits before the decimal point.", maxDigits-places)
	default:
		return ""
	}
}

func decimalMessage(fe validator.FieldError) string {
	maxDigits, places, err := parseDecimalParam(fe.Param())
	if err != nil {
		return "Invalid value."
	}

	d, ok := asDecimal(fe.Value())
	if !ok {
		return "A valid number is required."
	}

	if msg := decimalViolation(d, maxDigits, places); msg != "" {
		return msg
	}

	return "Invalid value."
}
