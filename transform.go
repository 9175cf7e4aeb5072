package fluentcheck

import (
	"regexp"

	"github.com/fluentcheck/fluentcheck/pkg/checksum"
	"github.com/fluentcheck/fluentcheck/pkg/sanitize"
)

// String transformers apply only to string values; other types pass through
// unchanged so mixed chains degrade gracefully. Numeric transformers coerce
// through the same rules as the comparison checks.

// AsTrim removes leading and trailing whitespace.
func (c *Chain) AsTrim() *Chain {
	if s, ok := c.value.(string); ok {
		return c.transform(sanitize.Trim(s))
	}
	return c.transform(c.value)
}

// AsLower converts the value to lowercase.
func (c *Chain) AsLower() *Chain {
	if s, ok := c.value.(string); ok {
		return c.transform(sanitize.Lower(s))
	}
	return c.transform(c.value)
}

// AsUpper converts the value to uppercase.
func (c *Chain) AsUpper() *Chain {
	if s, ok := c.value.(string); ok {
		return c.transform(sanitize.Upper(s))
	}
	return c.transform(c.value)
}

// AsTitle converts the value to title case.
func (c *Chain) AsTitle() *Chain {
	if s, ok := c.value.(string); ok {
		return c.transform(sanitize.Title(s))
	}
	return c.transform(c.value)
}

// AsTruncate shortens the value to at most max runes.
func (c *Chain) AsTruncate(max int) *Chain {
	if s, ok := c.value.(string); ok {
		return c.transform(sanitize.Truncate(s, max))
	}
	return c.transform(c.value)
}

// AsMatch replaces the value with the first substring matching the pattern,
// or the empty string when nothing matches.
func (c *Chain) AsMatch(re *regexp.Regexp) *Chain {
	if s, ok := c.value.(string); ok {
		return c.transform(sanitize.ExtractMatch(s, re))
	}
	return c.transform(c.value)
}

// AsRound rounds the value to the given number of decimal places.
func (c *Chain) AsRound(places int) *Chain {
	if v, ok := c.number(); ok {
		return c.transform(sanitize.RoundTo(v, places))
	}
	return c.transform(c.value)
}

// AsCeil rounds the value up to the nearest integer.
func (c *Chain) AsCeil() *Chain {
	if v, ok := c.number(); ok {
		return c.transform(sanitize.Ceil(v))
	}
	return c.transform(c.value)
}

// AsFloor rounds the value down to the nearest integer.
func (c *Chain) AsFloor() *Chain {
	if v, ok := c.number(); ok {
		return c.transform(sanitize.Floor(v))
	}
	return c.transform(c.value)
}

// AsDecimal normalizes the value to a fixed-point string with the given
// number of decimal places.
func (c *Chain) AsDecimal(places int) *Chain {
	if v, ok := c.number(); ok {
		return c.transform(sanitize.Decimal(v, places))
	}
	return c.transform(c.value)
}

// AsJSON replaces the value with its JSON encoding.
func (c *Chain) AsJSON() *Chain {
	return c.transform(sanitize.EncodeJSON(c.value))
}

// AsJSONDecoded parses the value as a JSON document.
func (c *Chain) AsJSONDecoded() *Chain {
	return c.transform(sanitize.DecodeJSON(c.value))
}

// AsCPF reformats a valid CPF number as XXX.XXX.XXX-XX; invalid values pass
// through unchanged.
func (c *Chain) AsCPF() *Chain {
	if s, ok := c.value.(string); ok && checksum.ValidCPF(s) {
		return c.transform(checksum.FormatCPF(s))
	}
	return c.transform(c.value)
}

// AsCNPJ reformats a valid CNPJ number as XX.XXX.XXX/XXXX-XX; invalid values
// pass through unchanged.
func (c *Chain) AsCNPJ() *Chain {
	if s, ok := c.value.(string); ok && checksum.ValidCNPJ(s) {
		return c.transform(checksum.FormatCNPJ(s))
	}
	return c.transform(c.value)
}
