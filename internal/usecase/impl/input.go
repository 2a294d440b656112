package impl

import (
	"strconv"
	"strings"
	"unicode/utf8"

	domainerrors "backoffice/internal/domain/errors"
)

var errMissingBody = domainerrors.ErrValidationFailed.WithDetails("request body is required")

// trimmed returns a trimmed copy of an optional string field.
func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	v := strings.TrimSpace(*value)

	return &v
}

func trimAll(values []string) []string {
	if values == nil {
		return nil
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.TrimSpace(v))
	}

	return out
}

func checkPasswordLength(password string, minLength int) error {
	if utf8.RuneCountInString(password) < minLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least " + strconv.Itoa(minLength) + " characters")
	}

	return nil
}
