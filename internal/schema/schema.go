// Package schema defines the declarative extraction schemas used to constrain
// LLM output. A RecordSchema is a static, ordered set of field specifications
// that can be rendered into an extraction prompt and compiled into a JSON
// Schema document for payload validation.
package schema

import (
	"fmt"
	"strings"
)

// FieldType describes the semantic type of a schema field.
type FieldType string

// Supported field types.
const (
	// TypeText is a free-text string field.
	TypeText FieldType = "text"
	// TypeInteger is an integer field with optional inclusive bounds.
	TypeInteger FieldType = "integer"
	// TypeTextList is a list of strings.
	TypeTextList FieldType = "text_list"
	// TypeRecordList is a list of nested records described by Fields.
	TypeRecordList FieldType = "record_list"
)

// FieldSpec specifies a single extractable field: its name, type, the
// natural-language instruction handed to the model, and its constraints.
type FieldSpec struct {
	Name        string
	Type        FieldType
	Instruction string
	Required    bool

	// Min/Max are inclusive bounds for integer fields.
	Min int
	Max int

	// MinItems/MaxItems guide the extractor on list length. They are
	// advisory: validation never rejects a list for falling outside this
	// range, only for being empty when the field is required.
	MinItems int
	MaxItems int

	// Fields describes the element schema for record lists.
	Fields []FieldSpec
}

// RecordSchema is one extractable unit: a named, ordered set of field
// specifications plus a task description used as the prompt preamble.
// Schemas are defined once at startup and never mutated.
type RecordSchema struct {
	Name        string
	Description string
	Fields      []FieldSpec
}

// Instruction renders the schema into the extraction instruction given to the
// model. It embeds every field's instruction text and states the required
// machine-parseable output format. The result is deterministic for a given
// schema.
func (s RecordSchema) Instruction() string {
	var sb strings.Builder

	sb.WriteString(s.Description)
	sb.WriteString("\n\n")
	sb.WriteString("Return ONLY a valid JSON object matching this exact structure:\n")
	writeFields(&sb, s.Fields, 0)
	sb.WriteString("\nIMPORTANT:\n")
	sb.WriteString("- Extract information directly from the text, do not invent details.\n")
	sb.WriteString("- Return ONLY the JSON object, no markdown, no explanation, no code blocks.\n")

	return sb.String()
}

func writeFields(sb *strings.Builder, fields []FieldSpec, depth int) {
	indent := strings.Repeat("  ", depth)
	sb.WriteString(indent + "{\n")
	for i, f := range fields {
		sb.WriteString(fmt.Sprintf("%s  %q: %s", indent, f.Name, typeHint(f)))
		if i < len(fields)-1 {
			sb.WriteString(",")
		}
		if note := f.note(); note != "" {
			sb.WriteString("  // " + note)
		}
		sb.WriteString("\n")
		if f.Type == TypeRecordList {
			sb.WriteString(indent + "  // each element:\n")
			writeFields(sb, f.Fields, depth+1)
		}
	}
	sb.WriteString(indent + "}\n")
}

// typeHint returns the JSON shape shown to the model for a field.
func typeHint(f FieldSpec) string {
	switch f.Type {
	case TypeInteger:
		return "integer"
	case TypeTextList:
		return `["string"]`
	case TypeRecordList:
		return "[object]"
	default:
		return `"string"`
	}
}

// note builds the per-field annotation: instruction text plus constraint hints.
func (f FieldSpec) note() string {
	parts := make([]string, 0, 3)
	if f.Instruction != "" {
		parts = append(parts, f.Instruction)
	}
	switch f.Type {
	case TypeInteger:
		if f.Min != 0 || f.Max != 0 {
			parts = append(parts, fmt.Sprintf("between %d and %d", f.Min, f.Max))
		}
	case TypeTextList, TypeRecordList:
		switch {
		case f.MinItems > 0 && f.MaxItems > 0 && f.MinItems == f.MaxItems:
			parts = append(parts, fmt.Sprintf("exactly %d items", f.MinItems))
		case f.MinItems > 0 && f.MaxItems > 0:
			parts = append(parts, fmt.Sprintf("%d to %d items", f.MinItems, f.MaxItems))
		}
	}
	if f.Required {
		parts = append(parts, "required")
	}
	return strings.Join(parts, "; ")
}

// FieldNames returns the top-level field names in declaration order.
func (s RecordSchema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}
