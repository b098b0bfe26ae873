// Package typemap holds the static lookup tables translating declared scalar
// and composite types into each target schema system's nearest native
// equivalent. The tables are fixed at compile time; unknown named types
// degrade to the target's generic structured type.
package typemap

import "goa.design/facet/decl"

// Target identifies a schema system with its own type vocabulary.
type Target string

const (
	JSONSchema Target = "jsonschema"
	Proto      Target = "proto"
	CapnProto  Target = "capnp"
	Thrift     Target = "thrift"
	GraphQL    Target = "graphql"
	Smithy     Target = "smithy"
)

// scalars maps each declared scalar name to its spelling per target, in the
// order jsonschema, proto, capnp, thrift, graphql, smithy.
var scalars = map[string][6]string{
	"Text":    {"string", "string", "Text", "string", "String", "String"},
	"Int8":    {"integer", "int32", "Int8", "byte", "Int", "Byte"},
	"Int16":   {"integer", "int32", "Int16", "i16", "Int", "Short"},
	"Int32":   {"integer", "int32", "Int32", "i32", "Int", "Integer"},
	"Int64":   {"integer", "int64", "Int64", "i64", "Int", "Long"},
	"UInt8":   {"integer", "uint32", "UInt8", "byte", "Int", "Byte"},
	"UInt16":  {"integer", "uint32", "UInt16", "i16", "Int", "Short"},
	"UInt32":  {"integer", "uint32", "UInt32", "i32", "Int", "Integer"},
	"UInt64":  {"integer", "uint64", "UInt64", "i64", "Int", "Long"},
	"Float32": {"number", "float", "Float32", "double", "Float", "Float"},
	"Float64": {"number", "double", "Float64", "double", "Float", "Double"},
	"Bool":    {"boolean", "bool", "Bool", "bool", "Boolean", "Boolean"},
	"Bytes":   {"string", "bytes", "Data", "binary", "String", "Blob"},
}

// objects is each target's generic structured type, used for unknown named
// types.
var objects = map[Target]string{
	JSONSchema: "object",
	Proto:      "bytes",
	CapnProto:  "Data",
	Thrift:     "binary",
	GraphQL:    "String",
	Smithy:     "Document",
}

// units is each target's "no content" construct.
var units = map[Target]string{
	JSONSchema: "null",
	Proto:      "google.protobuf.Empty",
	CapnProto:  "Void",
	Thrift:     "void",
	GraphQL:    "Boolean",
	Smithy:     "Unit",
}

var targetIndex = map[Target]int{
	JSONSchema: 0, Proto: 1, CapnProto: 2, Thrift: 3, GraphQL: 4, Smithy: 5,
}

// IsScalar reports whether the reference names a declared scalar.
func IsScalar(t decl.TypeRef) bool {
	if t.Qualifier != "" || len(t.Args) > 0 {
		return false
	}
	_, ok := scalars[t.Name]
	return ok
}

// Unit returns the target's no-content construct.
func Unit(target Target) string { return units[target] }

// Lookup translates a declared type reference into the target's type
// spelling. Sequences map to the target's list construct, maps to its
// key-value construct; any other composite or unknown named type degrades to
// the target's generic structured type.
func Lookup(target Target, t decl.TypeRef) string {
	i := targetIndex[target]
	if t.IsZero() || t.Name == "Unit" {
		return units[target]
	}
	if row, ok := scalars[t.Name]; ok && t.Qualifier == "" && len(t.Args) == 0 {
		return row[i]
	}
	switch t.Name {
	case "Sequence":
		elem := decl.TypeRef{}
		if len(t.Args) > 0 {
			elem = t.Args[0]
		}
		return sequenceOf(target, elem)
	case "Map":
		return mapOf(target, t)
	case "Optional":
		if len(t.Args) > 0 {
			return Lookup(target, t.Args[0])
		}
	}
	return objects[target]
}

func sequenceOf(target Target, elem decl.TypeRef) string {
	switch target {
	case JSONSchema:
		return "array"
	case Proto:
		return "repeated " + Lookup(Proto, elem)
	case CapnProto:
		return "List(" + Lookup(CapnProto, elem) + ")"
	case Thrift:
		return "list<" + Lookup(Thrift, elem) + ">"
	case GraphQL:
		return "[" + Lookup(GraphQL, elem) + "]"
	case Smithy:
		return "List"
	}
	return objects[target]
}

func mapOf(target Target, t decl.TypeRef) string {
	key, val := decl.TypeRef{Name: "Text"}, decl.TypeRef{}
	if len(t.Args) > 0 {
		key = t.Args[0]
	}
	if len(t.Args) > 1 {
		val = t.Args[1]
	}
	switch target {
	case JSONSchema:
		return "object"
	case Proto:
		return "map<" + Lookup(Proto, key) + ", " + Lookup(Proto, val) + ">"
	case Thrift:
		return "map<" + Lookup(Thrift, key) + ", " + Lookup(Thrift, val) + ">"
	case CapnProto:
		// Cap'n Proto has no native map; emitters use a list of entry structs.
		return "List(Entry)"
	case Smithy:
		return "Map"
	case GraphQL:
		return "String"
	}
	return objects[target]
}
