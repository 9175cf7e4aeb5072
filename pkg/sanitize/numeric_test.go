package sanitize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentcheck/fluentcheck/pkg/sanitize"
)

func TestRoundTo(t *testing.T) {
	t.Run("rounds to given places", func(t *testing.T) {
		assert.InDelta(t, 3.14, sanitize.RoundTo(3.14159, 2), 1e-9)
	})

	t.Run("rounds halves away from zero", func(t *testing.T) {
		assert.InDelta(t, 2.0, sanitize.RoundTo(1.5, 0), 1e-9)
	})

	t.Run("treats negative places as zero", func(t *testing.T) {
		assert.InDelta(t, 3.0, sanitize.RoundTo(3.14159, -1), 1e-9)
	})
}

func TestCeilFloor(t *testing.T) {
	assert.InDelta(t, 2.0, sanitize.Ceil(1.1), 1e-9)
	assert.InDelta(t, 1.0, sanitize.Floor(1.9), 1e-9)
	assert.InDelta(t, -1.0, sanitize.Ceil(-1.1), 1e-9)
	assert.InDelta(t, -2.0, sanitize.Floor(-1.9), 1e-9)
}

func TestDecimal(t *testing.T) {
	t.Run("pads to fixed point", func(t *testing.T) {
		assert.Equal(t, "1.50", sanitize.Decimal(1.5, 2))
	})

	t.Run("truncating rounds", func(t *testing.T) {
		assert.Equal(t, "3.14", sanitize.Decimal(3.14159, 2))
	})

	t.Run("zero places yields integer text", func(t *testing.T) {
		assert.Equal(t, "2", sanitize.Decimal(1.5, 0))
	})
}
