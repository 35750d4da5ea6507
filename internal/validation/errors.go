package validation

import (
	"fmt"
	"strings"
)

// FieldError is a single violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError reports every schema invariant the payload violated.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s validation failed:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaError reports a payload or schema that could not be processed at all,
// e.g. malformed JSON from the model.
type SchemaError struct {
	Schema string
	Cause  error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("failed to validate against %s schema: %v", e.Schema, e.Cause)
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
