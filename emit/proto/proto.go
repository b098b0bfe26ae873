// Package proto emits a Protocol Buffers service definition. Each method
// becomes one rpc with a dedicated request and response message; field numbers
// follow declaration order.
package proto

import (
	"bytes"
	_ "embed"
	"strings"
	"text/template"

	"goa.design/goa/v3/codegen"

	"goa.design/facet/codegen/typemap"
	"goa.design/facet/emit"
	"goa.design/facet/model"
)

//go:embed service.proto.tmpl
var serviceT string

var tmpl = template.Must(template.New("proto").Parse(serviceT))

type (
	rpcData struct {
		Name, Request, Response string
	}
	messageData struct {
		Name   string
		Fields []fieldData
	}
	fieldData struct {
		Type, Name string
		Number     int
	}
	protoData struct {
		Package    string
		Service    string
		NeedsEmpty bool
		Methods    []rpcData
		Messages   []messageData
	}
)

// Emitter generates service.proto.
type Emitter struct{}

// New returns the proto emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "proto" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	data := protoData{
		Package: codegen.SnakeCase(svc.Name),
		Service: codegen.CamelCase(svc.Name, true, true),
	}
	for _, m := range emit.Exposed(svc) {
		goName := codegen.CamelCase(m.Name, true, true)
		req := messageData{Name: goName + "Request"}
		for i, p := range m.WireParams() {
			req.Fields = append(req.Fields, fieldData{
				Type:   typemap.Lookup(typemap.Proto, p.Type),
				Name:   codegen.SnakeCase(p.WireName),
				Number: i + 1,
			})
		}
		resp := messageData{Name: goName + "Response"}
		if m.Return.Kind != model.ShapeUnit {
			resp.Fields = append(resp.Fields, fieldData{
				Type:   typemap.Lookup(typemap.Proto, m.Return.Elem),
				Name:   "result",
				Number: 1,
			})
		}
		data.Methods = append(data.Methods, rpcData{Name: goName, Request: req.Name, Response: resp.Name})
		data.Messages = append(data.Messages, req, resp)
	}
	for _, msg := range data.Messages {
		for _, f := range msg.Fields {
			if strings.Contains(f.Type, "google.protobuf.Empty") {
				data.NeedsEmpty = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return []emit.File{{Path: "service.proto", Content: buf.Bytes()}}, nil
}
