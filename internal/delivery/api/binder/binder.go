// Package binder decodes JSON request bodies strictly for echo handlers.
package binder

import (
	"encoding/json"
	"io"
	"mime"
	"strings"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StrictBinder rejects unknown JSON fields, trailing data and non-JSON bodies.
// Path and query parameters are left to the handlers.
type StrictBinder struct{}

// New creates the echo binder.
func New() *StrictBinder {
	return &StrictBinder{}
}

// Bind implements echo.Binder.
func (b *StrictBinder) Bind(i any, c echo.Context) error {
	req := c.Request()
	if req.Body == nil || req.ContentLength == 0 {
		return domainerrors.ErrValidationFailed.WithDetails("request body is required")
	}

	mediaType, _, err := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	if err != nil || mediaType != echo.MIMEApplicationJSON {
		return domainerrors.ErrValidationFailed.WithDetails("content type must be application/json")
	}

	decoder := json.NewDecoder(req.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(describe(err))
	}
	if decoder.More() {
		return domainerrors.ErrValidationFailed.WithDetails("request body must contain a single JSON object")
	}

	return nil
}

func describe(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	switch {
	case errors.Is(err, io.EOF):
		return "request body is required"
	case errors.Is(err, io.ErrUnexpectedEOF), errors.As(err, &syntaxErr):
		return "request body is not valid JSON"
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			return "request body must be a JSON object"
		}

		return typeErr.Field + " must be of type " + typeErr.Type.String()
	}

	// encoding/json reports unknown fields as `json: unknown field "name"`.
	if field, found := strings.CutPrefix(err.Error(), "json: unknown field "); found {
		return "unknown field " + field
	}

	return strings.TrimPrefix(err.Error(), "json: ")
}
