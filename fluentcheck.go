package fluentcheck

// Value seeds a new validation chain wrapping a raw value. Process defaults
// from the environment apply first; explicit options override them.
func Value(v any, opts ...Option) *Chain {
	c := &Chain{value: v, original: v}

	if cfg, err := LoadConfig(); err == nil {
		c.failFast = cfg.FailFast
		c.lang = cfg.Lang
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}
