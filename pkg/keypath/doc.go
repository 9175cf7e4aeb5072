// Package keypath reads and writes values in nested keyed containers using
// dotted path expressions with optional bracketed indexes, e.g. "user.name"
// or "items[0].price".
//
// Supported containers are map[string]any, map[any]any (as produced by YAML
// decoding), and []any. Lookups on absent paths report absence rather than
// failing; writes create missing intermediate maps but never grow slices.
package keypath
