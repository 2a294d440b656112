// Package validator adapts the shared input validator to echo.
package validator

import (
	"backoffice/internal/validation"
)

// CustomValidator satisfies echo.Validator.
type CustomValidator struct {
	validator *validation.Validator
}

// New creates the echo validator.
func New(v *validation.Validator) *CustomValidator {
	return &CustomValidator{validator: v}
}

// Validate validates query and body structs bound by handlers.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}
