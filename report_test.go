package fluentcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluentcheck/fluentcheck"
)

func TestReport(t *testing.T) {
	t.Run("accumulates messages per field", func(t *testing.T) {
		report := fluentcheck.NewReport()
		report.Add("email", "is required")
		report.Add("email", "must be a valid email address")
		report.Add("age", "must be numeric")

		assert.Equal(t, []string{"age", "email"}, report.Fields())
		assert.Equal(t, "is required", report.Get("email"))
		assert.Len(t, report.Messages("email"), 2)
		assert.True(t, report.Has("age"))
		assert.False(t, report.Has("name"))
		assert.False(t, report.IsEmpty())
	})

	t.Run("renders fields sorted in the error string", func(t *testing.T) {
		report := fluentcheck.NewReport()
		report.Add("b", "second")
		report.Add("a", "first")

		assert.Equal(t, "validation failed: a: first; b: second", report.Error())
	})

	t.Run("an empty report has no fields", func(t *testing.T) {
		report := fluentcheck.NewReport()
		assert.True(t, report.IsEmpty())
		assert.Empty(t, report.Fields())
		assert.Empty(t, report.Get("anything"))
	})
}
