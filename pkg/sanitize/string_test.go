package sanitize_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentcheck/fluentcheck/pkg/sanitize"
)

func TestTrim(t *testing.T) {
	t.Run("removes surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "hello", sanitize.Trim("  hello  "))
	})

	t.Run("keeps inner whitespace", func(t *testing.T) {
		assert.Equal(t, "hello world", sanitize.Trim("\thello world\n"))
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := sanitize.Trim("  hello  ")
		assert.Equal(t, once, sanitize.Trim(once))
	})
}

func TestCaseConversion(t *testing.T) {
	t.Run("lower", func(t *testing.T) {
		assert.Equal(t, "hello", sanitize.Lower("HeLLo"))
	})

	t.Run("upper", func(t *testing.T) {
		assert.Equal(t, "HELLO", sanitize.Upper("HeLLo"))
	})

	t.Run("title", func(t *testing.T) {
		assert.Equal(t, "Hello World", sanitize.Title("hello world"))
	})
}

func TestTruncate(t *testing.T) {
	t.Run("shortens long strings", func(t *testing.T) {
		assert.Equal(t, "hel", sanitize.Truncate("hello", 3))
	})

	t.Run("keeps short strings intact", func(t *testing.T) {
		assert.Equal(t, "hi", sanitize.Truncate("hi", 10))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.Equal(t, "hél", sanitize.Truncate("héllo", 3))
	})

	t.Run("returns empty string for non-positive max", func(t *testing.T) {
		assert.Equal(t, "", sanitize.Truncate("hello", 0))
		assert.Equal(t, "", sanitize.Truncate("hello", -1))
	})
}

func TestExtractMatch(t *testing.T) {
	digits := regexp.MustCompile(`\d+`)

	t.Run("returns first match", func(t *testing.T) {
		assert.Equal(t, "42", sanitize.ExtractMatch("order 42 of 100", digits))
	})

	t.Run("returns empty string without match", func(t *testing.T) {
		assert.Equal(t, "", sanitize.ExtractMatch("no numbers here", digits))
	})
}

func TestComposeTrimLower(t *testing.T) {
	normalize := sanitize.Compose(sanitize.Trim, sanitize.Lower)
	assert.Equal(t, "john doe", normalize("  John DOE  "))
}
