package fluentcheck

import (
	"fmt"
	"regexp"

	"github.com/spf13/cast"
)

// ruleFunc applies one named rule or transformer to a chain. Errors signal
// contract violations (missing or unparseable arguments), never validation
// failures.
type ruleFunc func(c *Chain, args []string) (*Chain, error)

// registry is the static dispatch table mapping rule-expression names to
// handlers over the chain's method surface. Built once; read-only afterward.
//
// Handlers ignore surplus arguments so that stray delimiters in an
// expression degrade gracefully instead of aborting the run.
var registry = map[string]ruleFunc{
	// Validators.
	"req":          noArgs((*Chain).Required),
	"nil":          noArgs((*Chain).IsNil),
	"notNil":       noArgs((*Chain).NotNil),
	"string":       noArgs((*Chain).IsString),
	"bool":         noArgs((*Chain).IsBool),
	"int":          noArgs((*Chain).IsInt),
	"float":        noArgs((*Chain).IsFloat),
	"numeric":      noArgs((*Chain).IsNumeric),
	"slice":        noArgs((*Chain).IsSlice),
	"map":          noArgs((*Chain).IsMap),
	"email":        noArgs((*Chain).Email),
	"url":          noArgs((*Chain).URL),
	"uuid":         noArgs((*Chain).UUID),
	"alpha":        noArgs((*Chain).Alpha),
	"alphanumeric": noArgs((*Chain).Alphanumeric),
	"digits":       noArgs((*Chain).Digits),
	"cardNumber":   noArgs((*Chain).CardNumber),
	"cpf":          noArgs((*Chain).CPF),
	"cnpj":         noArgs((*Chain).CNPJ),

	"eq": func(c *Chain, args []string) (*Chain, error) {
		if err := need("eq", args, 1); err != nil {
			return c, err
		}
		return c.Eq(args[0]), nil
	},
	"gt":      oneFloat("gt", (*Chain).Gt),
	"gte":     oneFloat("gte", (*Chain).Gte),
	"lt":      oneFloat("lt", (*Chain).Lt),
	"lte":     oneFloat("lte", (*Chain).Lte),
	"between": twoFloats("between", (*Chain).Between),
	"len":     oneInt("len", (*Chain).Len),
	"minLen":  oneInt("minLen", (*Chain).MinLen),
	"maxLen":  oneInt("maxLen", (*Chain).MaxLen),
	"regex":   onePattern("regex", (*Chain).Regex),
	"in": func(c *Chain, args []string) (*Chain, error) {
		return c.In(anyArgs(args)...), nil
	},
	"notIn": func(c *Chain, args []string) (*Chain, error) {
		return c.NotIn(anyArgs(args)...), nil
	},

	// Transformers.
	"asTrim":       noArgs((*Chain).AsTrim),
	"asLowercase":  noArgs((*Chain).AsLower),
	"asUppercase":  noArgs((*Chain).AsUpper),
	"asTitle":      noArgs((*Chain).AsTitle),
	"asCeil":       noArgs((*Chain).AsCeil),
	"asFloor":      noArgs((*Chain).AsFloor),
	"asJson":       noArgs((*Chain).AsJSON),
	"asJsonDecode": noArgs((*Chain).AsJSONDecoded),
	"asCpf":        noArgs((*Chain).AsCPF),
	"asCnpj":       noArgs((*Chain).AsCNPJ),
	"asTruncate":   oneInt("asTruncate", (*Chain).AsTruncate),
	"asRound":      oneInt("asRound", (*Chain).AsRound),
	"asDecimal":    oneInt("asDecimal", (*Chain).AsDecimal),
	"asMatch":      onePattern("asMatch", (*Chain).AsMatch),
}

// need checks that at least want arguments were supplied.
func need(name string, args []string, want int) error {
	if len(args) < want {
		return fmt.Errorf("%w: %s expects %d argument(s), got %d", ErrBadRuleArgs, name, want, len(args))
	}
	return nil
}

func noArgs(fn func(*Chain) *Chain) ruleFunc {
	return func(c *Chain, _ []string) (*Chain, error) {
		return fn(c), nil
	}
}

func oneFloat(name string, fn func(*Chain, float64) *Chain) ruleFunc {
	return func(c *Chain, args []string) (*Chain, error) {
		if err := need(name, args, 1); err != nil {
			return c, err
		}
		x, err := cast.ToFloat64E(args[0])
		if err != nil {
			return c, fmt.Errorf("%w: %s expects a number, got %q", ErrBadRuleArgs, name, args[0])
		}
		return fn(c, x), nil
	}
}

func twoFloats(name string, fn func(*Chain, float64, float64) *Chain) ruleFunc {
	return func(c *Chain, args []string) (*Chain, error) {
		if err := need(name, args, 2); err != nil {
			return c, err
		}
		x, errX := cast.ToFloat64E(args[0])
		y, errY := cast.ToFloat64E(args[1])
		if errX != nil || errY != nil {
			return c, fmt.Errorf("%w: %s expects two numbers, got %q and %q", ErrBadRuleArgs, name, args[0], args[1])
		}
		return fn(c, x, y), nil
	}
}

func oneInt(name string, fn func(*Chain, int) *Chain) ruleFunc {
	return func(c *Chain, args []string) (*Chain, error) {
		if err := need(name, args, 1); err != nil {
			return c, err
		}
		n, err := cast.ToIntE(args[0])
		if err != nil {
			return c, fmt.Errorf("%w: %s expects an integer, got %q", ErrBadRuleArgs, name, args[0])
		}
		return fn(c, n), nil
	}
}

func onePattern(name string, fn func(*Chain, *regexp.Regexp) *Chain) ruleFunc {
	return func(c *Chain, args []string) (*Chain, error) {
		if err := need(name, args, 1); err != nil {
			return c, err
		}
		re, err := regexp.Compile(args[0])
		if err != nil {
			return c, fmt.Errorf("%w: %s pattern %q: %v", ErrBadRuleArgs, name, args[0], err)
		}
		return fn(c, re), nil
	}
}

func anyArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
