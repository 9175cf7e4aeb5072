package fluentcheck

import (
	"fmt"
	"strings"
)

// Rule-expression grammar: "|" separates OR-alternatives (lowest precedence,
// left to right), ";" separates sequential AND-steps within an alternative,
// and "," separates a rule name from its positional arguments. None of the
// three characters can be escaped inside argument values.

// ApplyRules interprets a rule expression against a chain and returns the
// chain of the last OR-alternative run. Alternatives after the first start
// from Or(), so each one sees the original untransformed value; callers must
// judge the outcome through Valid or Validate on the tree, not assume the
// returned branch passed.
//
// Unknown rule names and malformed arguments are programmer errors, reported
// immediately rather than recorded as validation failures.
func ApplyRules(c *Chain, expr string) (*Chain, error) {
	node := c

	for i, group := range strings.Split(expr, "|") {
		if i > 0 {
			node = node.Or()
		}

		var err error
		node, err = applyGroup(node, group)
		if err != nil {
			return node, err
		}
	}

	return node, nil
}

// applyGroup runs one OR-alternative: its AND-steps in order, each step's
// output chain feeding the next.
func applyGroup(c *Chain, group string) (*Chain, error) {
	node := c

	for _, step := range strings.Split(group, ";") {
		tokens := strings.Split(step, ",")

		name := strings.TrimSpace(tokens[0])
		if name == "" {
			// Stray delimiters degrade to a no-op.
			continue
		}

		fn, ok := registry[name]
		if !ok {
			return node, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}

		args := make([]string, 0, len(tokens)-1)
		for _, arg := range tokens[1:] {
			if arg != "" {
				args = append(args, arg)
			}
		}

		var err error
		node, err = fn(node, args)
		if err != nil {
			return node, err
		}
	}

	return node, nil
}
