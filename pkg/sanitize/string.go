package sanitize

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Lower converts a string to lowercase.
func Lower(s string) string {
	return strings.ToLower(s)
}

// Upper converts a string to uppercase.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// Title converts a string to title case using Unicode casing rules.
// A fresh caser per call: cases.Caser carries internal state and is not
// safe for concurrent use.
func Title(s string) string {
	return cases.Title(language.Und).String(s)
}

// Truncate shortens a string to at most max runes.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}

// ExtractMatch returns the first substring matching the pattern, or the empty
// string when nothing matches.
func ExtractMatch(s string, re *regexp.Regexp) string {
	return re.FindString(s)
}
