package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("john.doe@example.com"))
	assert.True(t, ValidateEmail("a+b@sub.domain.org"))
	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("not-an-email"))
	assert.False(t, ValidateEmail("missing@tld"))
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("John Doe"))
	assert.True(t, ValidateName("Mary-Jane O'Brien"))
	assert.False(t, ValidateName(""))
	assert.False(t, ValidateName("   "))
	assert.False(t, ValidateName("John123"))

	long := make([]byte, 81)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ValidateName(string(long)))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("  hello  ", 0))
	assert.Equal(t, "", SanitizeString("   ", 10))
	assert.Equal(t, "abc", SanitizeString("abcdef", 3))
}

func TestValidatePaymentTypeCode(t *testing.T) {
	assert.True(t, ValidatePaymentTypeCode("CREDIT"))
	assert.True(t, ValidatePaymentTypeCode("DEBIT"))
	assert.True(t, ValidatePaymentTypeCode("PREPAID"))
	assert.False(t, ValidatePaymentTypeCode("credit"))
	assert.False(t, ValidatePaymentTypeCode("Credit"))
	assert.False(t, ValidatePaymentTypeCode("CASH"))
}
