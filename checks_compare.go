package fluentcheck

import (
	"fmt"

	"github.com/spf13/cast"
)

// number coerces the working value to a float64 for comparisons. Strings
// holding numbers coerce too; the boolean is false when no coercion exists.
func (c *Chain) number() (float64, bool) {
	if c.value == nil {
		return 0, false
	}
	if _, isBool := c.value.(bool); isBool {
		return 0, false
	}
	v, err := cast.ToFloat64E(c.value)
	return v, err == nil
}

// Eq asserts the value equals x, comparing numerically when both sides
// coerce to numbers and textually otherwise.
func (c *Chain) Eq(x any) *Chain {
	ok := false
	if v, isNum := c.number(); isNum {
		if want, err := cast.ToFloat64E(x); err == nil {
			ok = v == want
		}
	} else {
		ok = fmt.Sprint(c.value) == fmt.Sprint(x)
	}
	return c.Assert(ok, "must be equal to %{x}", "eq", map[string]any{"x": x})
}

// Gt asserts the value is strictly greater than x.
func (c *Chain) Gt(x float64) *Chain {
	v, isNum := c.number()
	return c.Assert(isNum && v > x, "must be greater than %{x}", "gt", map[string]any{"x": x})
}

// Gte asserts the value is greater than or equal to x.
func (c *Chain) Gte(x float64) *Chain {
	v, isNum := c.number()
	return c.Assert(isNum && v >= x, "must be greater than or equal to %{x}", "gte", map[string]any{"x": x})
}

// Lt asserts the value is strictly less than x.
func (c *Chain) Lt(x float64) *Chain {
	v, isNum := c.number()
	return c.Assert(isNum && v < x, "must be less than %{x}", "lt", map[string]any{"x": x})
}

// Lte asserts the value is less than or equal to x.
func (c *Chain) Lte(x float64) *Chain {
	v, isNum := c.number()
	return c.Assert(isNum && v <= x, "must be less than or equal to %{x}", "lte", map[string]any{"x": x})
}

// Between asserts the value lies in the inclusive range [x, y].
func (c *Chain) Between(x, y float64) *Chain {
	v, isNum := c.number()
	return c.Assert(isNum && v >= x && v <= y, "must be between %{x} and %{y}", "between",
		map[string]any{"x": x, "y": y})
}

// In asserts the value equals one of the allowed values, using the same
// loose comparison as Eq.
func (c *Chain) In(values ...any) *Chain {
	ok := c.memberOf(values)
	return c.Assert(ok, "must be one of the allowed values", "in", map[string]any{"values": values})
}

// NotIn asserts the value equals none of the given values.
func (c *Chain) NotIn(values ...any) *Chain {
	ok := !c.memberOf(values)
	return c.Assert(ok, "must not be one of the forbidden values", "notIn", map[string]any{"values": values})
}

func (c *Chain) memberOf(values []any) bool {
	v, isNum := c.number()
	for _, candidate := range values {
		if isNum {
			if want, err := cast.ToFloat64E(candidate); err == nil && v == want {
				return true
			}
			continue
		}
		if fmt.Sprint(c.value) == fmt.Sprint(candidate) {
			return true
		}
	}
	return false
}
