// Package validation checks typed request drafts before they reach storage.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Validator wraps go-playground/validator and renders failures as ErrValidationFailed.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator that reports fields by their JSON names.
func New() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return field.Name
	})

	// Registration only fails on an empty tag or nil func.
	_ = validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: validate}
}

// Struct validates s and joins every failure into the error details.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrap(err, "failed to validate input")
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		messages = append(messages, Describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

// Describe turns a single field failure into a readable sentence.
func Describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	param := fieldErr.Param()

	switch fieldErr.Tag() {
	case "required", "required_without":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "phone10":
		return field + " must be exactly 10 digits"
	case "uuid":
		return field + " must be a valid UUID"
	case "oneof":
		return field + " must be one of: " + strings.ReplaceAll(param, " ", ", ")
	case "len":
		if fieldErr.Kind() == reflect.Slice {
			return field + " must contain exactly " + param + " values"
		}

		return field + " must be exactly " + param + " characters"
	case "min":
		if fieldErr.Kind() == reflect.String {
			return field + " must be at least " + param + " characters"
		}

		return field + " must be at least " + param
	case "max":
		if fieldErr.Kind() == reflect.String {
			return field + " must be at most " + param + " characters"
		}

		return field + " must be at most " + param
	case "gt":
		return field + " must be greater than " + param
	case "gte":
		return field + " must be greater than or equal to " + param
	case "lte":
		return field + " must be less than or equal to " + param
	default:
		return field + " is invalid"
	}
}
