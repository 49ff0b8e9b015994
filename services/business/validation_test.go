package business

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccountNumber(t *testing.T) {
	assert.NoError(t, ValidateAccountNumber("123456"))
	assert.NoError(t, ValidateAccountNumber("12345678901234567"))

	assert.Error(t, ValidateAccountNumber("12345"), "too short")
	assert.Error(t, ValidateAccountNumber("123456789012345678"), "too long")
	assert.Error(t, ValidateAccountNumber("12345a"), "non digit")
	assert.Error(t, ValidateAccountNumber(""))
}

func TestValidateRoutingNumber(t *testing.T) {
	// Real routing numbers with valid ABA checksums.
	valid := []string{"021000021", "111000025", "091000019"}
	for _, n := range valid {
		assert.NoError(t, ValidateRoutingNumber(n), n)
	}

	t.Run("checksum failure", func(t *testing.T) {
		// 3*(1+4+7) + 7*(2+5+8) + (3+6+9) = 159, not divisible by 10.
		assert.Error(t, ValidateRoutingNumber("123456789"))
	})

	t.Run("wrong length", func(t *testing.T) {
		assert.Error(t, ValidateRoutingNumber("02100002"))
		assert.Error(t, ValidateRoutingNumber("0210000211"))
	})

	t.Run("non digits", func(t *testing.T) {
		assert.Error(t, ValidateRoutingNumber("02100002a"))
	})
}
