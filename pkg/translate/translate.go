package translate

import (
	"fmt"
	"regexp"
)

// Translator resolves a message key against the failure context of one
// assertion. The boolean reports whether a template existed for the key;
// callers fall back to the raw key on a miss.
type Translator interface {
	Translate(lang, key string, ctx map[string]any) (string, bool)
}

// paramRegex finds named parameters in the form %{name}.
var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate substitutes %{name} placeholders in a template with values from
// the context. Placeholders without a matching context entry are left intact.
func Interpolate(tmpl string, ctx map[string]any) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if val, ok := ctx[name]; ok {
			return fmt.Sprint(val)
		}
		return match
	})
}
