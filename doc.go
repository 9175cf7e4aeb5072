// Package fluentcheck is a fluent value-validation and sanitization engine.
//
// A validation starts by seeding a Chain from a raw value. Validator methods
// assert predicates over the current working value; transformer methods
// derive a new working value and return a new Chain continuing the same
// logical chain. Or starts an independent alternative from the original
// value, so rule A OR rule B means B never sees A's transformations. The
// chain tree converges to a single verdict: a branch's failures are forgiven
// when any earlier alternative was clean.
//
// Basic Usage:
//
//	c := fluentcheck.Value("  bob@Example.COM  ").
//		AsTrim().
//		AsLower().
//		Required().
//		Email()
//	if err := c.Validate(); err != nil {
//		// err is a Report keyed by attribute
//	}
//	email, _ := c.Get() // "bob@example.com"
//
// Rule Expressions:
//
// The same chains can be driven by a compact rule mini-language: "|" joins
// OR-alternatives, ";" joins sequential AND-steps, and "," passes positional
// arguments to a rule.
//
//	node, err := fluentcheck.ApplyRules(fluentcheck.Value(15), "req;gte,18|eq,0")
//
// Structured Validation:
//
// ValidateMap applies per-attribute rule expressions to a keyed container,
// aggregates failures into one report, and writes transformed values back:
//
//	data := map[string]any{"name": "  Bob  ", "age": 15}
//	err := fluentcheck.ValidateMap(data, fluentcheck.Schema{
//		"name": "req;asTrim",
//		"age":  "req;gte,18",
//	})
//
// Attributes prefixed with "*" are sensitive: their raw values never appear
// in failure contexts, so secrets cannot leak into messages or logs.
//
// Failure policy is caller-selectable per chain: accumulate every failing
// check and report them together at Validate time (the default), or fail
// fast on the first one (WithFailFast, or FLUENTCHECK_FAIL_FAST=true).
// Messages resolve through a pluggable translator (see pkg/translate);
// without one, the built-in English templates are interpolated directly.
package fluentcheck
