package fluentcheck

import "errors"

// Programmer/contract errors. These indicate misuse of the API rather than
// bad input data and are never folded into a validation Report.
var (
	// ErrNotKeyed is returned when structured validation is invoked against
	// a value that is not an associative container.
	ErrNotKeyed = errors.New("fluentcheck: structured validation requires a keyed container")

	// ErrUnknownRule is returned when a rule expression references a name
	// absent from the registry.
	ErrUnknownRule = errors.New("fluentcheck: unknown rule")

	// ErrBadRuleArgs is returned when a rule expression supplies arguments
	// the named rule cannot use.
	ErrBadRuleArgs = errors.New("fluentcheck: invalid rule arguments")
)
