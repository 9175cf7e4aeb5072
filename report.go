package fluentcheck

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// GeneralAttribute labels failures of chains validated without an attribute
// name.
const GeneralAttribute = "general"

// Report maps attribute names to their validation error messages.
// It's based on url.Values to leverage built-in string slice handling.
type Report url.Values

// NewReport creates an empty validation report.
func NewReport() Report {
	return make(Report)
}

// Error implements the error interface, summarizing failures per attribute.
func (r Report) Error() string {
	if len(r) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, field := range r.Fields() {
		messages := r[field]
		if len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

// Add appends an error message for an attribute.
func (r Report) Add(field, message string) {
	url.Values(r).Add(field, message)
}

// Get returns the first error message for an attribute.
func (r Report) Get(field string) string {
	return url.Values(r).Get(field)
}

// Messages returns every error message for an attribute in discovery order.
func (r Report) Messages(field string) []string {
	return r[field]
}

// Has checks if an attribute has any errors.
func (r Report) Has(field string) bool {
	return len(r[field]) > 0
}

// Fields returns the attribute names with errors, sorted.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r))
	for field := range r {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// IsEmpty returns true if there are no validation errors.
func (r Report) IsEmpty() bool {
	return len(r) == 0
}

// merge copies every message of other into r.
func (r Report) merge(other Report) {
	for field, messages := range other {
		for _, msg := range messages {
			r.Add(field, msg)
		}
	}
}
