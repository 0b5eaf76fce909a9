package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("user@"))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-06-09")
	assert.True(t, ok)
	_, ok = IsValidDate("2025/06/09")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "month", Message: "month must be between 1 and 12"},
	}
	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "month must be between 1 and 12", m["month"])
	assert.Contains(t, errs.Error(), "email is required")
}
