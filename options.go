package fluentcheck

import "github.com/fluentcheck/fluentcheck/pkg/translate"

// Option configures a chain at seed time.
type Option func(*Chain)

// WithAttribute names the value being validated; the name is used in error
// messages and as the report key.
func WithAttribute(name string) Option {
	return func(c *Chain) {
		c.attribute = name
	}
}

// Sensitive marks the chain's value as secret: it is omitted from the
// failure context handed to the translator so it cannot leak into messages
// or logs.
func Sensitive() Option {
	return func(c *Chain) {
		c.sensitive = true
	}
}

// WithFailFast controls the failure policy: when enabled the first failing
// check halts the chain and surfaces alone instead of accumulating.
func WithFailFast(enabled bool) Option {
	return func(c *Chain) {
		c.failFast = enabled
	}
}

// WithTranslator sets the translator used to resolve failure messages.
func WithTranslator(t translate.Translator) Option {
	return func(c *Chain) {
		c.translator = t
	}
}

// WithLang sets the language passed to the translator.
func WithLang(lang string) Option {
	return func(c *Chain) {
		c.lang = lang
	}
}

// WithParent attaches an existing chain as the OR-alternative behind the new
// one, so top-level alternatives still apply per attribute in structured
// validation.
func WithParent(parent *Chain) Option {
	return func(c *Chain) {
		c.parent = parent
	}
}
