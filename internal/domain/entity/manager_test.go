package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatManagerCode(t *testing.T) {
	assert.Equal(t, "AWM1001", FormatManagerCode(ManagerCodeSeed))
	assert.Equal(t, "AWM11000", FormatManagerCode(11000))
}

func TestParseManagerCode(t *testing.T) {
	tests := []struct {
		code   string
		want   int64
		wantOK bool
	}{
		{code: "AWM1001", want: 1001, wantOK: true},
		{code: "AWM11000", want: 11000, wantOK: true},
		{code: "AWM", wantOK: false},
		{code: "AWM10a1", wantOK: false},
		{code: "XYZ1001", wantOK: false},
		{code: "awm1001", wantOK: false},
		{code: "AWM-12", wantOK: false},
		{code: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := ParseManagerCode(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseManagerCode_NumericOrdering(t *testing.T) {
	a, _ := ParseManagerCode("AWM1009")
	b, _ := ParseManagerCode("AWM11000")

	assert.Less(t, a, b)
}

func TestManagerStatus_IsValid(t *testing.T) {
	assert.True(t, ManagerStatusActive.IsValid())
	assert.True(t, ManagerStatusSuspended.IsValid())
	assert.False(t, ManagerStatus("retired").IsValid())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.com "))
}
