package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type holdForm struct {
	SeatIDs []string `validate:"required,min=1,max=2,dive,uuid"`
	Email   string   `validate:"omitempty,email"`
}

func TestValidateStruct(t *testing.T) {
	assert.Nil(t, ValidateStruct(holdForm{SeatIDs: []string{"5b0c3f5e-0f6f-4d1c-9a51-0d3c0e7f0a11"}}))

	errs := ValidateStruct(holdForm{SeatIDs: []string{"A1"}, Email: "nope"})
	assert.Equal(t, "Must be a valid UUID", errs["SeatIDs[0]"])
	assert.Equal(t, "Invalid email format", errs["Email"])

	errs = ValidateStruct(holdForm{})
	assert.Equal(t, "This field is required", errs["SeatIDs"])
}

func TestFormatValidationErrors_IsStable(t *testing.T) {
	errs := map[string]string{"b": "second", "a": "first"}
	assert.Equal(t, "a: first; b: second", FormatValidationErrors(errs))
}
