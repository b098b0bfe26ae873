// Package graphql emits a GraphQL SDL schema. GET-shaped operations become
// query fields, other operations mutations, and streaming methods
// subscription fields.
package graphql

import (
	"fmt"
	"strings"

	"goa.design/goa/v3/codegen"

	"goa.design/facet/codegen/typemap"
	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates schema.graphql.
type Emitter struct{}

// New returns the graphql emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "graphql" }

// SupportsStreaming implements emit.Emitter: streaming methods become
// subscriptions.
func (*Emitter) SupportsStreaming() bool { return true }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	fields := map[string][]string{}
	for _, m := range emit.Exposed(svc) {
		kind := m.Op.GraphQLKind
		fields[kind] = append(fields[kind], field(m))
	}

	var b strings.Builder
	for _, kind := range []string{"query", "mutation", "subscription"} {
		fs := fields[kind]
		if len(fs) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "type %s {\n", codegen.CamelCase(kind, true, true))
		for _, f := range fs {
			b.WriteString("  " + f + "\n")
		}
		b.WriteString("}\n")
	}
	return []emit.File{{Path: "schema.graphql", Content: []byte(b.String())}}, nil
}

func field(m *model.Method) string {
	args := make([]string, 0, len(m.Params))
	for _, p := range m.WireParams() {
		t := typemap.Lookup(typemap.GraphQL, p.Type)
		if p.Required() {
			t += "!"
		}
		args = append(args, fmt.Sprintf("%s: %s", codegen.CamelCase(p.WireName, false, true), t))
	}
	name := codegen.CamelCase(m.Name, false, true)
	sig := name
	if len(args) > 0 {
		sig += "(" + strings.Join(args, ", ") + ")"
	}
	return sig + ": " + resultType(m)
}

func resultType(m *model.Method) string {
	switch m.Return.Kind {
	case model.ShapeUnit:
		return typemap.Unit(typemap.GraphQL)
	case model.ShapeOptional:
		return typemap.Lookup(typemap.GraphQL, m.Return.Elem)
	case model.ShapeSequence:
		return "[" + typemap.Lookup(typemap.GraphQL, m.Return.Elem) + "!]!"
	case model.ShapeStream:
		return typemap.Lookup(typemap.GraphQL, m.Return.Elem) + "!"
	default:
		return typemap.Lookup(typemap.GraphQL, m.Return.Elem) + "!"
	}
}
