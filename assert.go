package fluentcheck

import (
	"github.com/fluentcheck/fluentcheck/pkg/translate"
)

// Assert evaluates one assertion against the chain. On success it appends a
// passing check and returns the chain. On failure it resolves a message
// through the translator from the failure context and either halts the chain
// (fail-fast mode) or records the failure and stays fluent.
//
// The failure context always carries rule, result, attribute, and sensitive;
// the working value is included only for non-sensitive chains. Extra fields
// (e.g. bounds for range checks) are merged in.
func (c *Chain) Assert(cond bool, message, rule string, extra map[string]any) *Chain {
	if c.halted != nil {
		return c
	}

	if cond {
		m := message
		if m == "" {
			m = rule
		}
		c.checks = append(c.checks, Check{Passed: true, Message: m})
		return c
	}

	ctx := map[string]any{
		"rule":      rule,
		"result":    false,
		"attribute": c.attribute,
		"sensitive": c.sensitive,
	}
	if !c.sensitive {
		ctx["value"] = c.value
	}
	for k, v := range extra {
		ctx[k] = v
	}

	msg := c.resolveMessage(message, rule, ctx)
	failed := Check{Passed: false, Message: msg}

	if c.failFast {
		attr := c.attribute
		if attr == "" {
			attr = GeneralAttribute
		}
		report := NewReport()
		report.Add(attr, msg)
		c.halted = report
		return c
	}

	c.checks = append(c.checks, failed)
	c.errs = append(c.errs, failed)
	return c
}

// resolveMessage turns a message template (or the rule name when no template
// was supplied) into human-readable text, preferring the translator and
// falling back to interpolating the template itself.
func (c *Chain) resolveMessage(message, rule string, ctx map[string]any) string {
	key := message
	if key == "" {
		key = rule
	}

	if c.translator != nil {
		if resolved, ok := c.translator.Translate(c.lang, key, ctx); ok {
			return resolved
		}
	}

	return translate.Interpolate(key, ctx)
}
