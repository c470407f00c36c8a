package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"cakeshop/internal/validation"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("account blocked")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidQuantity    = errors.New("quantity must be between 1 and 99")
	ErrEmptyCart          = errors.New("your cart is empty")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("invalid status")
)

// ValidationError carries field -> message pairs for a rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// validateStruct runs v over s and converts failures into a *ValidationError.
func validateStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return &ValidationError{Fields: validation.FieldErrors(err)}
	}
	return nil
}
