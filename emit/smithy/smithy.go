// Package smithy emits a Smithy 2.0 model of the service with HTTP bindings.
// An optional baseline artifact enables drift detection: when the regenerated
// model no longer matches the baseline, emission fails with a line-level diff.
package smithy

import (
	"fmt"
	"strings"

	"goa.design/goa/v3/codegen"

	"goa.design/facet/codegen/typemap"
	"goa.design/facet/codegen/validate"
	"goa.design/facet/diag"
	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates model.smithy.
type Emitter struct {
	baseline string
}

// New returns the smithy emitter.
func New() *Emitter { return &Emitter{} }

// NewWithBaseline returns a smithy emitter that fails with a schema-mismatch
// diagnostic when the regenerated model drifts from the previously emitted
// artifact.
func NewWithBaseline(prev string) *Emitter { return &Emitter{baseline: prev} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "smithy" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "$version: \"2.0\"\n\nnamespace %s\n\n", codegen.SnakeCase(svc.Name))

	methods := emit.Exposed(svc)
	opNames := make([]string, 0, len(methods))
	for _, m := range methods {
		opNames = append(opNames, codegen.CamelCase(m.Name, true, true))
	}
	fmt.Fprintf(&b, "service %s {\n    version: \"1.0.0\"\n    operations: [%s]\n}\n",
		codegen.CamelCase(svc.Name, true, true), strings.Join(opNames, ", "))

	for _, m := range methods {
		writeOperation(&b, m)
	}
	content := b.String()

	if e.baseline != "" {
		if err := validate.SchemaDiff("smithy", e.baseline, content, diag.Location{Service: svc.Name}); err != nil {
			return nil, err
		}
	}
	return []emit.File{{Path: "model.smithy", Content: []byte(content)}}, nil
}

func writeOperation(b *strings.Builder, m *model.Method) {
	fmt.Fprintf(b, "\n@http(method: \"%s\", uri: \"%s\", code: %d)\n",
		m.Op.Verb, m.Op.Path, emit.SuccessStatus(m))
	fmt.Fprintf(b, "operation %s {\n", codegen.CamelCase(m.Name, true, true))

	b.WriteString("    input := {\n")
	for _, p := range m.WireParams() {
		switch p.Role {
		case model.RolePathIdentifier:
			b.WriteString("        @httpLabel\n        @required\n")
		case model.RoleQueryValue:
			fmt.Fprintf(b, "        @httpQuery(\"%s\")\n", p.WireName)
			if p.Required() {
				b.WriteString("        @required\n")
			}
		case model.RoleHeaderValue:
			fmt.Fprintf(b, "        @httpHeader(\"%s\")\n", p.WireName)
			if p.Required() {
				b.WriteString("        @required\n")
			}
		default:
			if p.Required() {
				b.WriteString("        @required\n")
			}
		}
		fmt.Fprintf(b, "        %s: %s\n",
			codegen.CamelCase(p.WireName, false, true),
			typemap.Lookup(typemap.Smithy, p.Type))
	}
	b.WriteString("    }\n")

	if m.Return.Kind == model.ShapeUnit {
		b.WriteString("    output := {}\n")
	} else {
		fmt.Fprintf(b, "    output := {\n        result: %s\n    }\n",
			typemap.Lookup(typemap.Smithy, m.Return.Elem))
	}
	b.WriteString("}\n")
}
