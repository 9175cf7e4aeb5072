package fluentcheck

import (
	"github.com/fluentcheck/fluentcheck/pkg/translate"
)

// Check is one evaluated assertion: whether it passed and the resolved
// message. Chains keep every check in evaluation order as an audit trail,
// not only the failures.
type Check struct {
	Passed  bool
	Message string
}

// Chain is one link in the validation tree. It ties the current working
// value to the checks evaluated against it and, through parent, to the
// OR-alternative tried before it. Validators append checks in place;
// transformers return a new Chain carrying the transformed value.
//
// A Chain is not safe for concurrent use; distinct validations are fully
// independent.
type Chain struct {
	value     any
	original  any
	attribute string
	sensitive bool
	parent    *Chain

	checks []Check
	errs   []Check

	failFast   bool
	halted     error
	translator translate.Translator
	lang       string
}

// clone copies the chain, detaching the check slices so the source is never
// mutated through the copy.
func (c *Chain) clone() *Chain {
	n := *c
	n.checks = append([]Check(nil), c.checks...)
	n.errs = append([]Check(nil), c.errs...)
	return &n
}

// transform returns a new chain continuing the same logical chain with a new
// working value. Checks, errors, parent, and attribute settings carry over.
func (c *Chain) transform(v any) *Chain {
	if c.halted != nil {
		return c
	}
	n := c.clone()
	n.value = v
	return n
}

// Or starts a fresh OR-alternative. The new chain resets to the original
// (untransformed) value, records the receiver as the alternative tried
// before it, and starts with empty checks and errors.
func (c *Chain) Or() *Chain {
	return &Chain{
		value:      c.GetOriginal(),
		original:   c.GetOriginal(),
		attribute:  c.attribute,
		sensitive:  c.sensitive,
		parent:     c,
		failFast:   c.failFast,
		halted:     c.halted,
		translator: c.translator,
		lang:       c.lang,
	}
}

// Valid reports whether the chain as a whole passed: either this branch is
// clean, or some earlier OR-alternative was.
func (c *Chain) Valid() bool {
	if c.halted != nil {
		return false
	}
	if len(c.errs) == 0 {
		return true
	}
	if c.parent != nil {
		return c.parent.Valid()
	}
	return false
}

// HasErrors reports whether this branch recorded any failing check.
func (c *Chain) HasErrors() bool {
	return len(c.errs) > 0 || c.halted != nil
}

// AllErrors returns the full reported error list: empty when the chain is
// valid, otherwise this branch's failure messages followed by every
// ancestor branch's own failures, walking up.
func (c *Chain) AllErrors() []string {
	if c.Valid() {
		return nil
	}

	var msgs []string
	for n := c; n != nil; n = n.parent {
		for _, e := range n.errs {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// Checks returns a copy of the audit trail for this branch.
func (c *Chain) Checks() []Check {
	return append([]Check(nil), c.checks...)
}

// Get returns the working value of the first clean branch, starting with
// this one and falling back through the OR-alternatives. The boolean is
// false when every branch failed.
func (c *Chain) Get() (any, bool) {
	if len(c.errs) == 0 && c.halted == nil {
		return c.value, true
	}
	if c.parent != nil {
		return c.parent.Get()
	}
	return nil, false
}

// GetOriginal returns the pristine value the chain was seeded with,
// ignoring every transformation since.
func (c *Chain) GetOriginal() any {
	return c.original
}

// Attribute returns the attribute name used in error messages, or the
// empty string for anonymous validation.
func (c *Chain) Attribute() string {
	return c.attribute
}

// Validate returns nil when the chain is valid; otherwise a Report keyed
// by the chain's attribute (or the general label) carrying the full error
// list in discovery order.
func (c *Chain) Validate() error {
	if c.halted != nil {
		return c.halted
	}
	if c.Valid() {
		return nil
	}

	attr := c.attribute
	if attr == "" {
		attr = GeneralAttribute
	}

	report := NewReport()
	for _, msg := range c.AllErrors() {
		report.Add(attr, msg)
	}
	return report
}
