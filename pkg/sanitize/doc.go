// Package sanitize provides pure transformation functions used by the
// rule-chain transformers: whitespace trimming, case conversion, truncation,
// pattern extraction, numeric rounding, JSON round-tripping, and decimal
// normalization.
//
// Every function maps a value to a new value deterministically and never
// returns an error; inputs that cannot be transformed are returned unchanged
// so that chains degrade gracefully instead of losing data.
//
// Functions can be composed into reusable pipelines:
//
//	normalize := sanitize.Compose(sanitize.Trim, sanitize.Lower)
//	clean := normalize("  John Doe  ")
package sanitize
