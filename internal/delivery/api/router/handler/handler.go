// Package handler contains the echo handlers of the marketplace API.
package handler

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	deliverycontext "coderr/internal/delivery/context"
	domainerrors "coderr/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const msgInvalidInteger = "A valid integer is required."

// actorID returns the authenticated caller, or ErrUnauthorized.
func actorID(c echo.Context) (uint, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated user in context")
	}

	return userID, nil
}

// pathID parses a numeric path parameter. Anything else is a 404, like an unmatched route.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || id == 0 {
		return 0, errors.Wrapf(domainerrors.ErrNotFound, "path parameter %s=%q", name, c.Param(name))
	}

	return uint(id), nil
}

// bindAndValidate decodes the JSON body into req and runs the struct validator.
// Decoding failures become 400 validation errors.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return bindError(err)
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	return nil
}

func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return domainerrors.NewFieldError(typeErr.Field, typeMismatchMessage(typeErr))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return domainerrors.ErrValidationFailed.WithMessage(fmt.Sprintf("JSON parse error - %s", syntaxErr.Error()))
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if msg, ok := httpErr.Message.(string); ok {
			return domainerrors.ErrValidationFailed.WithMessage(msg)
		}
	}

	return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
}

func typeMismatchMessage(typeErr *json.UnmarshalTypeError) string {
	kind := typeErr.Type.Kind().String()
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"):
		return msgInvalidInteger
	case kind == "string":
		return "Not a valid string."
	case kind == "slice":
		return fmt.Sprintf("Expected a list of items but got type %q.", typeErr.Value)
	default:
		return "Invalid value."
	}
}

// looseUint reads a JSON id that may be sent as a number or a numeric string.
// It returns nil when the value is absent or not a positive integer.
func looseUint(raw json.RawMessage) *uint {
	text := strings.TrimSpace(string(raw))
	if text == "" || text == "null" {
		return nil
	}
	text = strings.Trim(text, `"`)

	id, err := strconv.ParseUint(strings.TrimSpace(text), 10, 0)
	if err != nil || id == 0 {
		return nil
	}
	v := uint(id)

	return &v
}

// queryUint parses an optional integer query parameter. Empty means absent.
func queryUint(c echo.Context, name string) (*uint, bool) {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return nil, true
	}

	id, err := strconv.ParseUint(value, 10, 0)
	if err != nil {
		return nil, false
	}
	v := uint(id)

	return &v, true
}

// nullableString maps the empty string to JSON null.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
