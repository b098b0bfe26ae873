// Package thrift emits an Apache Thrift service definition. Arguments map
// directly onto thrift method parameters numbered in declaration order.
package thrift

import (
	"fmt"
	"strings"

	"goa.design/goa/v3/codegen"

	"goa.design/facet/codegen/typemap"
	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates service.thrift.
type Emitter struct{}

// New returns the thrift emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "thrift" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "namespace go %s\n\n", codegen.SnakeCase(svc.Name))
	fmt.Fprintf(&b, "service %s {\n", codegen.CamelCase(svc.Name, true, true))
	for _, m := range emit.Exposed(svc) {
		if m.Doc != "" {
			fmt.Fprintf(&b, "  // %s\n", m.Doc)
		}
		ret := typemap.Unit(typemap.Thrift)
		if m.Return.Kind != model.ShapeUnit {
			ret = typemap.Lookup(typemap.Thrift, m.Return.Elem)
		}
		args := make([]string, 0, len(m.Params))
		for i, p := range m.WireParams() {
			field := fmt.Sprintf("%d: ", i+1)
			if !p.Required() {
				field += "optional "
			}
			field += typemap.Lookup(typemap.Thrift, p.Type) + " " + codegen.SnakeCase(p.WireName)
			args = append(args, field)
		}
		fmt.Fprintf(&b, "  %s %s(%s)\n", ret, m.Name, strings.Join(args, ", "))
	}
	b.WriteString("}\n")
	return []emit.File{{Path: "service.thrift", Content: []byte(b.String())}}, nil
}
