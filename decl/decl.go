// Package decl defines the input contract between the external front ends
// (manifest loader, Go DSL, or any future source parser) and the model
// builder. A front end hands the builder an ordered list of method
// declarations; everything downstream is derived from these records and
// never reaches back into the source.
package decl

type (
	// Service is one annotated block of method declarations.
	Service struct {
		// Name is the service identifier, e.g. "UserService".
		Name string
		// Prefix is an optional path prefix applied to every inferred or
		// overridden route, e.g. "/api/v1".
		Prefix string
		// Methods lists the declarations in source order.
		Methods []Method
	}

	// Method is a single method declaration as captured by a front end.
	Method struct {
		// Name is the declared method name, conventionally snake_case.
		Name string
		// Doc is the documentation string, empty when absent.
		Doc string
		// Receiver reports whether the declaration is an instance operation.
		// Constructor-style free functions carry false and are skipped.
		Receiver bool
		// Async reports whether the method is asynchronous.
		Async bool
		// Params lists parameters in declaration order, excluding the receiver.
		Params []Param
		// Return is the declared return type. The zero TypeRef means the
		// declaration has no return type (unit).
		Return TypeRef
		// Overrides holds method-level overrides. Recognized keys are listed
		// in MethodOverrideKeys.
		Overrides map[string]any
	}

	// Param is a single name-and-type parameter binding.
	Param struct {
		// Name is the declared parameter name.
		Name string
		// Type is the declared parameter type.
		Type TypeRef
		// Overrides holds parameter-level overrides. Recognized keys are
		// listed in ParamOverrideKeys.
		Overrides map[string]any
	}

	// TypeRef is a structural reference to a declared type: a name, an
	// optional dotted qualifier, and type arguments for the generic shapes
	// (Optional, Sequence, Map, Outcome, Stream).
	TypeRef struct {
		// Qualifier is the dotted package path preceding the name, empty for
		// bare references. "facet.Context" has Qualifier "facet".
		Qualifier string
		// Name is the unqualified type name.
		Name string
		// Args holds type arguments in order.
		Args []TypeRef
	}
)

// Method-level override keys recognized by the builder.
const (
	OverrideVerb        = "verb"
	OverridePath        = "path"
	OverrideVisibility  = "visibility"
	OverrideDoc         = "doc"
	OverrideStatusCode  = "status_code"
	OverrideContentType = "content_type"
	OverrideHeaders     = "extra_headers"
)

// Parameter-level override keys recognized by the builder.
const (
	OverrideRole     = "role"
	OverrideWireName = "wire_name"
	OverrideDefault  = "default_value"
)

// MethodOverrideKeys lists every recognized method-level override key, in the
// order used for diagnostics hints.
var MethodOverrideKeys = []string{
	OverrideVerb, OverridePath, OverrideVisibility, OverrideDoc,
	OverrideStatusCode, OverrideContentType, OverrideHeaders,
}

// ParamOverrideKeys lists every recognized parameter-level override key.
var ParamOverrideKeys = []string{OverrideRole, OverrideWireName, OverrideDefault}

// IsZero reports whether the reference is the zero value (no declared type).
func (t TypeRef) IsZero() bool {
	return t.Name == "" && t.Qualifier == "" && len(t.Args) == 0
}

// String renders the reference in source form, e.g. "Optional<Int32>" or
// "facet.Context".
func (t TypeRef) String() string {
	s := t.Name
	if t.Qualifier != "" {
		s = t.Qualifier + "." + s
	}
	if len(t.Args) > 0 {
		s += "<"
		for i, a := range t.Args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += ">"
	}
	return s
}
