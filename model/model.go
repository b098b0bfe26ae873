// Package model holds the immutable intermediate representation every backend
// consumes. A Service is built once per declaration block by the codegen
// pipeline, validated, and never mutated afterwards; emitters receive it
// read-only so each one sees identical answers for roles, shapes and
// operation metadata.
package model

import "goa.design/facet/decl"

type (
	// Service is the generation-time model of one annotated method block.
	Service struct {
		// Name is the service identifier.
		Name string
		// Prefix is the path prefix applied to every route, possibly empty.
		Prefix string
		// Methods lists the captured instance operations in declaration order.
		Methods []*Method
	}

	// Method is one captured instance operation with fully resolved metadata.
	Method struct {
		// Name is the declared method name.
		Name string
		// Doc is the documentation string, possibly overridden.
		Doc string
		// Async reports whether the method is asynchronous.
		Async bool
		// Params lists parameters in declaration order.
		Params []*Param
		// Return is the classified return shape.
		Return ReturnShape
		// Op is the resolved per-backend operation metadata.
		Op Operation
		// Visibility controls backend exposure.
		Visibility Visibility
		// Response carries response-level overrides for HTTP-shaped backends.
		Response ResponseMeta
	}

	// Param is one classified parameter.
	Param struct {
		// Name is the declared parameter name.
		Name string
		// Type is the declared type with any Optional wrapper removed.
		Type decl.TypeRef
		// Role is the resolved transport placement.
		Role Role
		// Optional reports whether the declared type carried an Optional
		// wrapper.
		Optional bool
		// WireName is the externally visible name, defaulting to Name.
		WireName string
		// Default is the declared default literal, nil when absent.
		Default any
	}

	// Role classifies a parameter's transport placement.
	Role string

	// ShapeKind discriminates the six return shapes.
	ShapeKind string

	// ReturnShape is the structural classification of a declared return type.
	ReturnShape struct {
		// Kind is the shape discriminator.
		Kind ShapeKind
		// Elem is the success/element type for every kind except Unit.
		Elem decl.TypeRef
		// Err is the failure type, set only for ShapeOutcome.
		Err decl.TypeRef
	}

	// OpKind is the inferred operation category.
	OpKind string

	// Operation is the resolved per-backend operation metadata derived from
	// the naming convention engine plus overrides.
	Operation struct {
		// Kind is the operation category.
		Kind OpKind
		// Verb is the HTTP verb.
		Verb string
		// Path is the resolved path template including the service prefix.
		Path string
		// Subcommand is the CLI subcommand name (kebab-case).
		Subcommand string
		// RPCName is the remote-procedure method name.
		RPCName string
		// GraphQLKind is "query", "mutation" or "subscription".
		GraphQLKind string
		// Overridden reports whether verb/path came from an explicit override
		// rather than convention inference.
		Overridden bool
	}

	// Visibility controls how backends expose a method.
	Visibility string

	// ResponseMeta carries response-level overrides.
	ResponseMeta struct {
		// StatusCode is the overridden success status, 0 when unset.
		StatusCode int
		// ContentType is the overridden content type, empty when unset.
		ContentType string
		// Headers holds extra response headers in declaration order.
		Headers []Header
	}

	// Header is one extra response header.
	Header struct {
		Name  string
		Value string
	}
)

const (
	RolePathIdentifier Role = "path"
	RoleQueryValue     Role = "query"
	RoleHeaderValue    Role = "header"
	RoleStructuredBody Role = "body"
	RoleAmbientContext Role = "context"
	RoleUnclassified   Role = "unclassified"
)

const (
	ShapePlain    ShapeKind = "plain"
	ShapeOptional ShapeKind = "optional"
	ShapeOutcome  ShapeKind = "outcome"
	ShapeSequence ShapeKind = "sequence"
	ShapeUnit     ShapeKind = "unit"
	ShapeStream   ShapeKind = "stream"
)

const (
	KindCreation   OpKind = "creation"
	KindLookup     OpKind = "lookup"
	KindCollection OpKind = "collection_query"
	KindMutation   OpKind = "mutation"
	KindDeletion   OpKind = "deletion"
	KindCall       OpKind = "generic_call"
)

const (
	VisibilityNormal     Visibility = "normal"
	VisibilitySuppressed Visibility = "suppressed"
	VisibilityHidden     Visibility = "hidden"
)

// PathParams returns the parameters with role PathIdentifier in declaration
// order.
func (m *Method) PathParams() []*Param { return m.paramsByRole(RolePathIdentifier) }

// QueryParams returns the parameters with role QueryValue in declaration
// order.
func (m *Method) QueryParams() []*Param { return m.paramsByRole(RoleQueryValue) }

// BodyParams returns the parameters with role StructuredBody in declaration
// order.
func (m *Method) BodyParams() []*Param { return m.paramsByRole(RoleStructuredBody) }

// HeaderParams returns the parameters with role HeaderValue in declaration
// order.
func (m *Method) HeaderParams() []*Param { return m.paramsByRole(RoleHeaderValue) }

// ContextParam returns the ambient-context parameter, or nil. At most one
// exists per method.
func (m *Method) ContextParam() *Param {
	for _, p := range m.Params {
		if p.Role == RoleAmbientContext {
			return p
		}
	}
	return nil
}

// WireParams returns every parameter that appears on the wire, i.e. all
// parameters except the ambient context.
func (m *Method) WireParams() []*Param {
	params := make([]*Param, 0, len(m.Params))
	for _, p := range m.Params {
		if p.Role != RoleAmbientContext {
			params = append(params, p)
		}
	}
	return params
}

// Streaming reports whether the method returns a lazy sequence.
func (m *Method) Streaming() bool { return m.Return.Kind == ShapeStream }

// Required reports whether the parameter must be supplied by the caller: it
// is neither optional nor defaulted.
func (p *Param) Required() bool { return !p.Optional && p.Default == nil }

func (m *Method) paramsByRole(role Role) []*Param {
	params := make([]*Param, 0, len(m.Params))
	for _, p := range m.Params {
		if p.Role == role {
			params = append(params, p)
		}
	}
	return params
}
