// Package validation provides structured field-level validation errors.
// Commands collect violations per field so callers can surface every
// problem in one response instead of failing on the first.
package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Errors collects field validation failures. A nil or empty Errors means
// the validated value is acceptable.
type Errors []FieldError

// Error joins all field failures into a single message.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a failure for the given field.
func (e *Errors) Add(field, format string, args ...any) {
	*e = append(*e, FieldError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	})
}

// Err returns the collected errors as an error, or nil when empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// MaxLength adds a failure when value exceeds max characters. Length is
// counted in characters, matching VARCHAR(n) column limits, not bytes.
func (e *Errors) MaxLength(field, value string, max int) {
	if count := utf8.RuneCountInString(value); count > max {
		e.Add(field, "must be at most %d characters, got %d", max, count)
	}
}

// Required adds a failure when value is empty.
func (e *Errors) Required(field, value string) {
	if value == "" {
		e.Add(field, "is required")
	}
}
