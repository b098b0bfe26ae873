package emit

import (
	"goa.design/facet/codegen/typemap"
	"goa.design/facet/decl"
	"goa.design/facet/model"
)

// Schema translates a declared type reference into a JSON Schema fragment.
// Unknown named types become titled objects so generated schemas stay
// self-describing.
func Schema(t decl.TypeRef) map[string]any {
	if t.IsZero() || t.Name == "Unit" {
		return map[string]any{"type": "null"}
	}
	switch t.Name {
	case "Optional":
		if len(t.Args) == 1 {
			return map[string]any{"oneOf": []any{Schema(t.Args[0]), map[string]any{"type": "null"}}}
		}
	case "Sequence":
		elem := decl.TypeRef{}
		if len(t.Args) > 0 {
			elem = t.Args[0]
		}
		return map[string]any{"type": "array", "items": Schema(elem)}
	case "Stream":
		elem := decl.TypeRef{}
		if len(t.Args) > 0 {
			elem = t.Args[0]
		}
		return map[string]any{"type": "array", "items": Schema(elem)}
	case "Map":
		val := decl.TypeRef{}
		if len(t.Args) > 1 {
			val = t.Args[1]
		}
		return map[string]any{"type": "object", "additionalProperties": Schema(val)}
	}
	if typemap.IsScalar(t) {
		return map[string]any{"type": typemap.Lookup(typemap.JSONSchema, t)}
	}
	return map[string]any{"type": "object", "title": t.String()}
}

// ParamsSchema builds the object schema describing a method's wire-visible
// arguments: one property per parameter keyed by wire name, required entries
// in declaration order.
func ParamsSchema(m *model.Method) map[string]any {
	props := make(map[string]any)
	required := []string{}
	for _, p := range m.WireParams() {
		s := Schema(p.Type)
		if p.Default != nil {
			s["default"] = p.Default
		}
		props[p.WireName] = s
		if p.Required() {
			required = append(required, p.WireName)
		}
	}
	schema := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// ResultSchema builds the schema of a method's success value per its return
// shape. Outcome failures travel on a separate error channel and are not part
// of the success schema.
func ResultSchema(m *model.Method) map[string]any {
	switch m.Return.Kind {
	case model.ShapeUnit:
		return map[string]any{"type": "null"}
	case model.ShapeOptional:
		return map[string]any{"oneOf": []any{Schema(m.Return.Elem), map[string]any{"type": "null"}}}
	case model.ShapeSequence, model.ShapeStream:
		return map[string]any{"type": "array", "items": Schema(m.Return.Elem)}
	default:
		return Schema(m.Return.Elem)
	}
}
