package validation

import (
	"testing"

	domainerrors "backoffice/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type draft struct {
	Name        string    `json:"name" validate:"required,max=10"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"required,phone10"`
	Status      string    `json:"status" validate:"omitempty,oneof=active inactive"`
	Coordinates []float64 `json:"coordinates" validate:"omitempty,len=2"`
	Price       *float64  `json:"basePrice" validate:"required,gte=0"`
	Limit       int       `query:"limit" validate:"omitempty,max=500"`
}

func validDraft() draft {
	price := 10.0

	return draft{
		Name:  "Downtown",
		Email: "ops@example.com",
		Phone: "5551234567",
		Price: &price,
	}
}

func TestValidator_Valid(t *testing.T) {
	assert.NoError(t, New().Struct(validDraft()))
}

func TestValidator_Messages(t *testing.T) {
	negative := -1.0

	tests := []struct {
		name   string
		mutate func(d *draft)
		want   string
	}{
		{name: "short phone", mutate: func(d *draft) { d.Phone = "12345" }, want: "phone must be exactly 10 digits"},
		{name: "letters in phone", mutate: func(d *draft) { d.Phone = "555123456a" }, want: "phone must be exactly 10 digits"},
		{name: "missing name", mutate: func(d *draft) { d.Name = "" }, want: "name is required"},
		{name: "long name", mutate: func(d *draft) { d.Name = "a very long name" }, want: "name must be at most 10 characters"},
		{name: "bad email", mutate: func(d *draft) { d.Email = "not-an-email" }, want: "email must be a valid email address"},
		{name: "bad enum", mutate: func(d *draft) { d.Status = "retired" }, want: "status must be one of: active, inactive"},
		{name: "one coordinate", mutate: func(d *draft) { d.Coordinates = []float64{1} }, want: "coordinates must contain exactly 2 values"},
		{name: "missing price", mutate: func(d *draft) { d.Price = nil }, want: "basePrice is required"},
		{name: "negative price", mutate: func(d *draft) { d.Price = &negative }, want: "basePrice must be greater than or equal to 0"},
		{name: "query name", mutate: func(d *draft) { d.Limit = 501 }, want: "limit must be at most 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := New().Struct(d)
			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.want, appErr.Details())
		})
	}
}

func TestValidator_JoinsFailures(t *testing.T) {
	d := validDraft()
	d.Name = ""
	d.Phone = "12345"

	err := New().Struct(d)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name is required; phone must be exactly 10 digits", appErr.Details())
}

func TestValidator_NonStruct(t *testing.T) {
	err := New().Struct("not a struct")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
