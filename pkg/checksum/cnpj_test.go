package checksum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentcheck/fluentcheck/pkg/checksum"
)

func TestValidCNPJ(t *testing.T) {
	t.Run("passes for valid formatted CNPJ", func(t *testing.T) {
		assert.True(t, checksum.ValidCNPJ("11.222.333/0001-81"))
	})

	t.Run("passes for valid bare digits", func(t *testing.T) {
		assert.True(t, checksum.ValidCNPJ("11222333000181"))
	})

	t.Run("fails when the last digit is off by one", func(t *testing.T) {
		assert.False(t, checksum.ValidCNPJ("11222333000182"))
	})

	t.Run("fails when the first check digit is wrong", func(t *testing.T) {
		assert.False(t, checksum.ValidCNPJ("11222333000171"))
	})

	t.Run("fails for all identical digits regardless of checksum", func(t *testing.T) {
		assert.False(t, checksum.ValidCNPJ("11111111111111"))
		assert.False(t, checksum.ValidCNPJ("00000000000000"))
	})

	t.Run("fails when longer than fourteen digits", func(t *testing.T) {
		assert.False(t, checksum.ValidCNPJ("112223330001810"))
	})
}

func TestFormatCNPJ(t *testing.T) {
	t.Run("formats bare digits", func(t *testing.T) {
		assert.Equal(t, "11.222.333/0001-81", checksum.FormatCNPJ("11222333000181"))
	})

	t.Run("is stable on already formatted input", func(t *testing.T) {
		assert.Equal(t, "11.222.333/0001-81", checksum.FormatCNPJ("11.222.333/0001-81"))
	})
}
