package fluentcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluentcheck/fluentcheck"
)

func TestApplyRules(t *testing.T) {
	t.Run("applies AND-steps sequentially", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value("  bob@example.com  "), "asTrim;req;email")
		require.NoError(t, err)

		assert.True(t, node.Valid())
		v, ok := node.Get()
		require.True(t, ok)
		assert.Equal(t, "bob@example.com", v)
	})

	t.Run("passes positional arguments to rules", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value(21), "gte,18")
		require.NoError(t, err)
		assert.True(t, node.Valid())

		node, err = fluentcheck.ApplyRules(fluentcheck.Value(15), "between,18,65")
		require.NoError(t, err)
		assert.False(t, node.Valid())
	})

	t.Run("a later OR-group forgives an earlier failure", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value(0), "gte,18|eq,0")
		require.NoError(t, err)

		assert.True(t, node.Valid())
		assert.Empty(t, node.AllErrors())
	})

	t.Run("all OR-groups failing reports every branch", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value(5), "gte,18|eq,0")
		require.NoError(t, err)

		assert.False(t, node.Valid())
		assert.Equal(t, []string{
			"must be equal to 0",
			"must be greater than or equal to 18",
		}, node.AllErrors())
	})

	t.Run("OR-groups start from the original value", func(t *testing.T) {
		// The first branch trims and then demands five characters; the
		// second sees the raw value again, spaces included.
		node, err := fluentcheck.ApplyRules(fluentcheck.Value(" abc "), "asTrim;minLen,5|minLen,4")
		require.NoError(t, err)

		assert.True(t, node.Valid())
		v, ok := node.Get()
		require.True(t, ok)
		assert.Equal(t, " abc ", v)
	})

	t.Run("returns the last-run branch even when an earlier one passed", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value("abc"), "minLen,2|len,10")
		require.NoError(t, err)

		// The returned node is the failing second branch; validity is a
		// tree-wide verdict.
		assert.True(t, node.HasErrors())
		assert.True(t, node.Valid())
	})

	t.Run("empty rule names are no-ops", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value("abc"), ";;req;")
		require.NoError(t, err)
		assert.True(t, node.Valid())
		assert.Len(t, node.Checks(), 1)
	})

	t.Run("stray argument delimiters degrade gracefully", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value("abc"), "req,,email")
		require.NoError(t, err)
		assert.True(t, node.Valid())
	})

	t.Run("unknown rule names are programmer errors", func(t *testing.T) {
		_, err := fluentcheck.ApplyRules(fluentcheck.Value("abc"), "req;definitelyNotARule")
		assert.ErrorIs(t, err, fluentcheck.ErrUnknownRule)
	})

	t.Run("missing required arguments are programmer errors", func(t *testing.T) {
		_, err := fluentcheck.ApplyRules(fluentcheck.Value(5), "gte")
		assert.ErrorIs(t, err, fluentcheck.ErrBadRuleArgs)
	})

	t.Run("unparseable arguments are programmer errors", func(t *testing.T) {
		_, err := fluentcheck.ApplyRules(fluentcheck.Value(5), "gte,eighteen")
		assert.ErrorIs(t, err, fluentcheck.ErrBadRuleArgs)

		_, err = fluentcheck.ApplyRules(fluentcheck.Value("x"), "regex,[")
		assert.ErrorIs(t, err, fluentcheck.ErrBadRuleArgs)
	})

	t.Run("drives transformers through the registry", func(t *testing.T) {
		node, err := fluentcheck.ApplyRules(fluentcheck.Value("  img_0042.jpg  "), "asTrim;asUppercase;asTruncate,8")
		require.NoError(t, err)

		v, ok := node.Get()
		require.True(t, ok)
		assert.Equal(t, "IMG_0042", v)
	})
}
