package schema

import "encoding/json"

// JSONSchema compiles the record schema into a draft-07 JSON Schema document
// suitable for payload validation. Required fields, field types and integer
// bounds are enforced. Advisory list cardinality is intentionally not compiled
// into minItems/maxItems; the only list-length constraint emitted is
// minItems=1 for required lists, since a required list must not be empty.
func (s RecordSchema) JSONSchema() string {
	doc := compileObject(s.Fields)
	doc["$schema"] = "http://json-schema.org/draft-07/schema#"
	doc["title"] = s.Name

	data, err := json.Marshal(doc)
	if err != nil {
		// Schemas are static data; a marshal failure is a programming error.
		panic("schema: failed to marshal JSON Schema: " + err.Error())
	}
	return string(data)
}

func compileObject(fields []FieldSpec) map[string]any {
	properties := make(map[string]any, len(fields))
	required := make([]string, 0, len(fields))

	for _, f := range fields {
		properties[f.Name] = compileField(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}

	doc := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

func compileField(f FieldSpec) map[string]any {
	switch f.Type {
	case TypeInteger:
		prop := map[string]any{"type": "integer"}
		if f.Min != 0 || f.Max != 0 {
			prop["minimum"] = f.Min
			prop["maximum"] = f.Max
		}
		return prop

	case TypeTextList:
		prop := map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		}
		if f.Required {
			prop["minItems"] = 1
		}
		return prop

	case TypeRecordList:
		prop := map[string]any{
			"type":  "array",
			"items": compileObject(f.Fields),
		}
		if f.Required {
			prop["minItems"] = 1
		}
		return prop

	default:
		return map[string]any{"type": "string"}
	}
}
