// Package jsonrpc emits the JSON-RPC 2.0 surface: the method table backing a
// server adapter and an OpenRPC description document. Method names are the
// declared names; params travel by-name as a single object.
package jsonrpc

import (
	"encoding/json"

	"goa.design/facet/dispatch"
	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates jsonrpc.json and openrpc.json.
type Emitter struct{}

// New returns the jsonrpc emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "jsonrpc" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	plans, err := dispatch.Plans(svc)
	if err != nil {
		return nil, err
	}

	table := map[string]any{"service": svc.Name, "methods": plans}
	tableData, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return nil, err
	}

	openrpcData, err := json.MarshalIndent(openrpc(svc), "", "  ")
	if err != nil {
		return nil, err
	}
	return []emit.File{
		{Path: "jsonrpc.json", Content: append(tableData, '\n')},
		{Path: "openrpc.json", Content: append(openrpcData, '\n')},
	}, nil
}

func openrpc(svc *model.Service) map[string]any {
	methods := []any{}
	for _, m := range emit.Documented(svc) {
		params := []any{}
		for _, p := range m.WireParams() {
			params = append(params, map[string]any{
				"name":     p.WireName,
				"required": p.Required(),
				"schema":   emit.Schema(p.Type),
			})
		}
		entry := map[string]any{
			"name":           m.Op.RPCName,
			"paramStructure": "by-name",
			"params":         params,
			"result": map[string]any{
				"name":   "result",
				"schema": emit.ResultSchema(m),
			},
		}
		if m.Doc != "" {
			entry["summary"] = m.Doc
		}
		methods = append(methods, entry)
	}
	return map[string]any{
		"openrpc": "1.2.6",
		"info": map[string]any{
			"title":   svc.Name,
			"version": "1.0.0",
		},
		"methods": methods,
	}
}
