// Package validation enforces schema invariants on raw extraction payloads
// before they become trusted records. Validation is all-or-nothing: a payload
// that violates any invariant yields an error naming the failing field, and no
// record is returned.
package validation

import (
	"encoding/json"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Vijaykrishna2334/Portfoli-ai/internal/schema"
	"github.com/Vijaykrishna2334/Portfoli-ai/internal/types"
)

// Validate checks a raw JSON payload against a record schema. It returns nil
// when the payload conforms, a *ValidationError describing every violated
// field when it does not, and a *SchemaError when the payload or compiled
// schema cannot be processed at all.
func Validate(s schema.RecordSchema, rawJSON string) error {
	schemaLoader := gojsonschema.NewStringLoader(s.JSONSchema())
	documentLoader := gojsonschema.NewStringLoader(rawJSON)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaError{Schema: s.Name, Cause: err}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Schema: s.Name,
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// DecodeProfile validates a raw payload against the resume profile schema and
// decodes it into a typed record. On any failure the record is nil.
func DecodeProfile(rawJSON string) (*types.ResumeProfile, error) {
	if err := Validate(schema.ResumeProfileSchema(), rawJSON); err != nil {
		return nil, err
	}

	var profile types.ResumeProfile
	if err := json.Unmarshal([]byte(rawJSON), &profile); err != nil {
		return nil, &SchemaError{Schema: "ResumeProfile", Cause: err}
	}
	return &profile, nil
}

// DecodeReport validates a raw payload against the optimization report schema
// and decodes it into a typed record. Out-of-range match scores are rejected,
// never clamped.
func DecodeReport(rawJSON string) (*types.OptimizationReport, error) {
	if err := Validate(schema.OptimizationReportSchema(), rawJSON); err != nil {
		return nil, err
	}

	var report types.OptimizationReport
	if err := json.Unmarshal([]byte(rawJSON), &report); err != nil {
		return nil, &SchemaError{Schema: "OptimizationReport", Cause: err}
	}
	return &report, nil
}
