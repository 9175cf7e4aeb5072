package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentcheck/fluentcheck/pkg/checksum"
)

func TestLuhn(t *testing.T) {
	t.Run("passes for valid card number", func(t *testing.T) {
		assert.True(t, checksum.Luhn("4532015112830366"))
	})

	t.Run("fails when one digit is off", func(t *testing.T) {
		assert.False(t, checksum.Luhn("4532015112830367"))
	})

	t.Run("passes with spaces in the number", func(t *testing.T) {
		assert.True(t, checksum.Luhn("4532 0151 1283 0366"))
	})

	t.Run("fails for non-digit characters", func(t *testing.T) {
		assert.False(t, checksum.Luhn("4532-0151-1283-0366"))
		assert.False(t, checksum.Luhn("4532O15112830366"))
	})

	t.Run("fails below minimum length", func(t *testing.T) {
		assert.False(t, checksum.Luhn("1234567"))
	})

	t.Run("fails above maximum length", func(t *testing.T) {
		assert.False(t, checksum.Luhn("45320151128303661234"))
	})

	t.Run("accepts eight digit numbers", func(t *testing.T) {
		// 8 zeros sum to 0 which is divisible by 10.
		assert.True(t, checksum.Luhn("00000000"))
	})

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, checksum.Luhn(""))
	})
}
