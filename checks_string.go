package fluentcheck

import (
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	alphaRegex        = regexp.MustCompile(`^[a-zA-Z]+$`)
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	digitsRegex       = regexp.MustCompile(`^[0-9]+$`)
)

// length measures the working value: rune count for strings, element count
// for slices, arrays, and maps. The boolean is false for unmeasurable values.
func (c *Chain) length() (int, bool) {
	if s, ok := c.value.(string); ok {
		return len([]rune(s)), true
	}
	if c.value == nil {
		return 0, false
	}
	switch v := reflect.ValueOf(c.value); v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), true
	}
	return 0, false
}

// Len asserts the value has exactly n characters or elements.
func (c *Chain) Len(n int) *Chain {
	l, ok := c.length()
	return c.Assert(ok && l == n, "must be exactly %{length} characters long", "len",
		map[string]any{"length": n})
}

// MinLen asserts the value has at least min characters or elements.
func (c *Chain) MinLen(min int) *Chain {
	l, ok := c.length()
	return c.Assert(ok && l >= min, "must be at least %{min} characters long", "minLen",
		map[string]any{"min": min})
}

// MaxLen asserts the value has at most max characters or elements.
func (c *Chain) MaxLen(max int) *Chain {
	l, ok := c.length()
	return c.Assert(ok && l <= max, "must be at most %{max} characters long", "maxLen",
		map[string]any{"max": max})
}

// Regex asserts the value is a string matching the pattern.
func (c *Chain) Regex(re *regexp.Regexp) *Chain {
	s, isStr := c.value.(string)
	return c.Assert(isStr && re.MatchString(s), "has an invalid format", "regex",
		map[string]any{"pattern": re.String()})
}

// Email asserts the value is a valid email address for typical web use.
func (c *Chain) Email() *Chain {
	return c.Assert(isEmail(c.value), "must be a valid email address", "email", nil)
}

func isEmail(value any) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	parts := strings.Split(addr.Address, "@")
	if len(parts) != 2 || parts[0] == "" {
		return false
	}

	// Domain must contain at least one dot and no empty labels.
	domain := parts[1]
	if !strings.Contains(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL asserts the value is an absolute URL with a scheme and host.
func (c *Chain) URL() *Chain {
	ok := false
	if s, isStr := c.value.(string); isStr && strings.TrimSpace(s) != "" {
		if u, err := url.ParseRequestURI(s); err == nil {
			ok = u.Scheme != "" && u.Host != ""
		}
	}
	return c.Assert(ok, "must be a valid URL", "url", nil)
}

// UUID asserts the value is a canonical UUID string.
func (c *Chain) UUID() *Chain {
	return c.Assert(isUUID(c.value), "must be a valid UUID", "uuid", nil)
}

func isUUID(value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}

	// Fast rejection before parsing.
	if len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}

	_, err := uuid.Parse(s)
	return err == nil
}

// Alpha asserts the value is a non-empty string of letters.
func (c *Chain) Alpha() *Chain {
	s, isStr := c.value.(string)
	return c.Assert(isStr && alphaRegex.MatchString(s), "must contain only letters", "alpha", nil)
}

// Alphanumeric asserts the value is a non-empty string of letters and digits.
func (c *Chain) Alphanumeric() *Chain {
	s, isStr := c.value.(string)
	return c.Assert(isStr && alphanumericRegex.MatchString(s),
		"must contain only letters and numbers", "alphanumeric", nil)
}

// Digits asserts the value is a non-empty string of digits.
func (c *Chain) Digits() *Chain {
	s, isStr := c.value.(string)
	return c.Assert(isStr && digitsRegex.MatchString(s), "must contain only digits", "digits", nil)
}
