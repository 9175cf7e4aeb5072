package fluentcheck

import (
	"reflect"
	"strings"

	"github.com/spf13/cast"
)

// Required asserts the value is present: not nil and, for strings, not empty
// after trimming whitespace.
func (c *Chain) Required() *Chain {
	ok := c.value != nil
	if s, isStr := c.value.(string); isStr {
		ok = strings.TrimSpace(s) != ""
	}
	return c.Assert(ok, "is required", "req", nil)
}

// IsNil asserts the value is absent.
func (c *Chain) IsNil() *Chain {
	return c.Assert(c.value == nil, "must be empty", "nil", nil)
}

// NotNil asserts the value is present, whatever its type.
func (c *Chain) NotNil() *Chain {
	return c.Assert(c.value != nil, "must not be empty", "notNil", nil)
}

// IsString asserts the value is a string.
func (c *Chain) IsString() *Chain {
	_, ok := c.value.(string)
	return c.Assert(ok, "must be a string", "string", nil)
}

// IsBool asserts the value is a boolean.
func (c *Chain) IsBool() *Chain {
	_, ok := c.value.(bool)
	return c.Assert(ok, "must be a boolean", "bool", nil)
}

// IsInt asserts the value has an integer type.
func (c *Chain) IsInt() *Chain {
	ok := false
	if c.value != nil {
		switch reflect.TypeOf(c.value).Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			ok = true
		}
	}
	return c.Assert(ok, "must be an integer", "int", nil)
}

// IsFloat asserts the value has a floating-point type.
func (c *Chain) IsFloat() *Chain {
	ok := false
	if c.value != nil {
		switch reflect.TypeOf(c.value).Kind() {
		case reflect.Float32, reflect.Float64:
			ok = true
		}
	}
	return c.Assert(ok, "must be a float", "float", nil)
}

// IsNumeric asserts the value is a number or a string holding one.
func (c *Chain) IsNumeric() *Chain {
	ok := false
	if c.value != nil {
		if _, isBool := c.value.(bool); !isBool {
			_, err := cast.ToFloat64E(c.value)
			ok = err == nil
		}
	}
	return c.Assert(ok, "must be numeric", "numeric", nil)
}

// IsSlice asserts the value is a slice or array.
func (c *Chain) IsSlice() *Chain {
	ok := false
	if c.value != nil {
		switch reflect.TypeOf(c.value).Kind() {
		case reflect.Slice, reflect.Array:
			ok = true
		}
	}
	return c.Assert(ok, "must be a list", "slice", nil)
}

// IsMap asserts the value is an associative container.
func (c *Chain) IsMap() *Chain {
	ok := c.value != nil && reflect.TypeOf(c.value).Kind() == reflect.Map
	return c.Assert(ok, "must be a map", "map", nil)
}
