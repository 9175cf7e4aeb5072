package translate

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Catalog is a Translator backed by nested per-language template maps.
// Keys may use dot notation to traverse nested maps, e.g. "rules.gte".
// A Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	logger       *slog.Logger
	logMissing   bool
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithLogger sets the logger used for missing-template warnings.
func WithLogger(logger *slog.Logger) CatalogOption {
	return func(c *Catalog) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMissingLog enables warning logs for keys without a template.
func WithMissingLog() CatalogOption {
	return func(c *Catalog) {
		c.logMissing = true
	}
}

// NewCatalog creates a Catalog from per-language template maps.
func NewCatalog(translations map[string]map[string]any, opts ...CatalogOption) (*Catalog, error) {
	for lang, templates := range translations {
		if lang == "" {
			return nil, fmt.Errorf("translate: empty language code")
		}
		if templates == nil {
			return nil, fmt.Errorf("translate: nil template map for language %q", lang)
		}
	}

	c := &Catalog{
		translations: translations,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Languages returns the language codes with templates available.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langs := make([]string, 0, len(c.translations))
	for lang := range c.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// lookup traverses a nested map using dot-separated keys. A key containing no
// dots is looked up verbatim first, so default messages that happen to
// contain dots still resolve.
func lookup(m map[string]any, key string) (any, bool) {
	if val, ok := m[key]; ok {
		return val, ok
	}

	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		if i == len(parts)-1 {
			val, ok := current[part]
			return val, ok
		}

		next, ok := current[part]
		if !ok {
			return nil, false
		}

		currentMap, ok := next.(map[string]any)
		if !ok {
			anyMap, isAnyMap := next.(map[any]any)
			if !isAnyMap {
				return nil, false
			}

			currentMap = make(map[string]any, len(anyMap))
			for k, v := range anyMap {
				if ks, ok := k.(string); ok {
					currentMap[ks] = v
				}
			}
		}

		current = currentMap
	}

	return nil, false
}

// Translate resolves a key for the given language and interpolates the
// failure context into the template. It reports a miss when the language or
// key has no string template.
func (c *Catalog) Translate(lang, key string, ctx map[string]any) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	langMap, ok := c.translations[lang]
	if !ok {
		if c.logMissing {
			c.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := lookup(langMap, key)
	if !ok {
		if c.logMissing {
			c.logger.Warn("template not found", "lang", lang, "key", key)
		}
		return "", false
	}

	tmpl, ok := val.(string)
	if !ok {
		if c.logMissing {
			c.logger.Warn("template is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
		}
		return "", false
	}

	return Interpolate(tmpl, ctx), true
}
