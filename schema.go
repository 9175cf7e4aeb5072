package fluentcheck

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/fluentcheck/fluentcheck/pkg/keypath"
)

// SensitivePrefix marks a schema attribute as sensitive. The prefix is
// stripped before path lookup; the attribute's value is then redacted from
// every failure context.
const SensitivePrefix = "*"

// Schema maps attribute paths to their rule expressions. A value is either
// one rule-expression string or a []string whose elements are tried as
// OR-alternatives of the whole expression.
type Schema map[string]any

// ValidateMap applies a schema to a keyed container. Every attribute
// validates independently; failures aggregate into one Report keyed by
// attribute, and attributes that pass with a transformed value are written
// back into the container in place.
//
// Passing a non-keyed container, referencing an unknown rule, or supplying a
// malformed rule specification is a programmer error returned as-is.
func ValidateMap(container any, schema Schema, opts ...Option) error {
	if !keypath.IsKeyed(container) {
		return fmt.Errorf("%w, got %T", ErrNotKeyed, container)
	}

	// Sorted for deterministic evaluation and reporting order.
	names := make([]string, 0, len(schema))
	for name := range schema {
		names = append(names, name)
	}
	sort.Strings(names)

	report := NewReport()

	for _, raw := range names {
		attribute := strings.TrimPrefix(raw, SensitivePrefix)
		sensitive := attribute != raw

		// Absent paths resolve to nil; absence itself is what a req rule
		// rejects.
		value, _ := keypath.Get(attribute, container)

		chainOpts := append(append([]Option(nil), opts...), WithAttribute(attribute))
		if sensitive {
			chainOpts = append(chainOpts, Sensitive())
		}
		node := Value(value, chainOpts...)

		node, err := applySpec(node, schema[raw])
		if err != nil {
			return fmt.Errorf("attribute %q: %w", attribute, err)
		}

		if verr := node.Validate(); verr != nil {
			if partial, ok := verr.(Report); ok {
				report.merge(partial)
			} else {
				report.Add(attribute, verr.Error())
			}
			continue
		}

		if out, ok := node.Get(); ok && !reflect.DeepEqual(out, value) {
			if err := keypath.Set(attribute, container, out); err != nil {
				return err
			}
		}
	}

	if report.IsEmpty() {
		return nil
	}
	return report
}

// applySpec runs one schema entry: a single rule expression, or a list of
// expressions tried as OR-alternatives.
func applySpec(node *Chain, spec any) (*Chain, error) {
	switch rules := spec.(type) {
	case string:
		return ApplyRules(node, rules)
	case []string:
		var err error
		for i, expr := range rules {
			if i > 0 {
				node = node.Or()
			}
			node, err = ApplyRules(node, expr)
			if err != nil {
				return node, err
			}
		}
		return node, nil
	}
	return node, fmt.Errorf("%w: rule specification must be string or []string, got %T", ErrBadRuleArgs, spec)
}
