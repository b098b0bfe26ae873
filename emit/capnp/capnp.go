// Package capnp emits a Cap'n Proto interface definition. The file ID is
// derived from the service name so regeneration is stable, and methods are
// numbered in declaration order.
package capnp

import (
	"fmt"
	"hash/fnv"
	"strings"

	"goa.design/goa/v3/codegen"

	"goa.design/facet/codegen/typemap"
	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates service.capnp.
type Emitter struct{}

// New returns the capnp emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "capnp" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "@0x%016x;\n\n", fileID(svc.Name))
	fmt.Fprintf(&b, "interface %s {\n", codegen.CamelCase(svc.Name, true, true))
	for i, m := range emit.Exposed(svc) {
		params := make([]string, 0, len(m.Params))
		for _, p := range m.WireParams() {
			params = append(params, fmt.Sprintf("%s :%s",
				codegen.CamelCase(p.WireName, false, true),
				typemap.Lookup(typemap.CapnProto, p.Type)))
		}
		result := ""
		if m.Return.Kind != model.ShapeUnit {
			result = fmt.Sprintf("result :%s", typemap.Lookup(typemap.CapnProto, m.Return.Elem))
		}
		fmt.Fprintf(&b, "  %s @%d (%s) -> (%s);\n",
			codegen.CamelCase(m.Name, false, true), i, strings.Join(params, ", "), result)
	}
	b.WriteString("}\n")
	return []emit.File{{Path: "service.capnp", Content: []byte(b.String())}}, nil
}

// fileID hashes the service name into a valid Cap'n Proto file ID. The
// format requires the most significant bit set.
func fileID(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64() | 1<<63
}
