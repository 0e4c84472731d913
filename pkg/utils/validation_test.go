package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Email string `validate:"required,email"`
	Kind  string `validate:"required,oneof=regular vip"`
	Count int    `validate:"gte=0"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		errs := ValidateStruct(&sampleInput{Email: "box@example.com", Kind: "vip", Count: 3})
		assert.Empty(t, errs)
	})

	t.Run("collects every failing field", func(t *testing.T) {
		errs := ValidateStruct(&sampleInput{Email: "not-an-email", Kind: "reclining", Count: -1})
		require.Len(t, errs, 3)
		assert.Equal(t, "Invalid email format", errs["Email"])
		assert.Equal(t, "Must be one of: regular, vip", errs["Kind"])
		assert.Equal(t, "Must be at least 0", errs["Count"])
	})

	t.Run("missing required field", func(t *testing.T) {
		errs := ValidateStruct(&sampleInput{Kind: "regular"})
		assert.Equal(t, "This field is required", errs["Email"])
	})
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Email": "Invalid email format"})
	assert.Equal(t, "Email: Invalid email format", msg)

	assert.Empty(t, FormatValidationErrors(nil))
}
