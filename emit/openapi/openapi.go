// Package openapi emits an OpenAPI 3.0 description of the service, as both
// JSON and YAML. Hidden methods are omitted; response-level overrides flow
// into the success response object.
package openapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates openapi.json and openapi.yaml.
type Emitter struct{}

// New returns the openapi emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "openapi" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}

	paths := make(map[string]map[string]any)
	for _, m := range emit.Documented(svc) {
		ops, ok := paths[m.Op.Path]
		if !ok {
			ops = make(map[string]any)
			paths[m.Op.Path] = ops
		}
		ops[strings.ToLower(m.Op.Verb)] = operation(svc, m)
	}

	doc := map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   svc.Name,
			"version": "1.0.0",
		},
		"paths": paths,
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	yamlData, err := yaml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return []emit.File{
		{Path: "openapi.json", Content: append(jsonData, '\n')},
		{Path: "openapi.yaml", Content: yamlData},
	}, nil
}

func operation(svc *model.Service, m *model.Method) map[string]any {
	op := map[string]any{
		"operationId": m.Name,
		"tags":        []any{svc.Name},
		"responses":   responses(m),
	}
	if m.Doc != "" {
		op["summary"] = m.Doc
	}

	var params []any
	for _, p := range m.Params {
		loc := ""
		switch p.Role {
		case model.RolePathIdentifier:
			loc = "path"
		case model.RoleQueryValue:
			loc = "query"
		case model.RoleHeaderValue:
			loc = "header"
		default:
			continue
		}
		entry := map[string]any{
			"name":     p.WireName,
			"in":       loc,
			"required": loc == "path" || p.Required(),
			"schema":   emit.Schema(p.Type),
		}
		params = append(params, entry)
	}
	if len(params) > 0 {
		op["parameters"] = params
	}

	if body := m.BodyParams(); len(body) > 0 {
		props := make(map[string]any, len(body))
		required := []string{}
		for _, p := range body {
			props[p.WireName] = emit.Schema(p.Type)
			if p.Required() {
				required = append(required, p.WireName)
			}
		}
		schema := map[string]any{"type": "object", "properties": props}
		if len(required) > 0 {
			schema["required"] = required
		}
		op["requestBody"] = map[string]any{
			"required": len(required) > 0,
			"content": map[string]any{
				"application/json": map[string]any{"schema": schema},
			},
		}
	}
	return op
}

func responses(m *model.Method) map[string]any {
	status := emit.SuccessStatus(m)
	success := map[string]any{"description": "Success"}
	if m.Return.Kind != model.ShapeUnit {
		success["content"] = map[string]any{
			emit.ContentType(m): map[string]any{"schema": emit.ResultSchema(m)},
		}
	}
	if len(m.Response.Headers) > 0 {
		hs := make(map[string]any, len(m.Response.Headers))
		for _, h := range m.Response.Headers {
			hs[h.Name] = map[string]any{"schema": map[string]any{"type": "string"}}
		}
		success["headers"] = hs
	}

	out := map[string]any{fmt.Sprintf("%d", status): success}
	if m.Return.Kind == model.ShapeOutcome {
		out["default"] = map[string]any{
			"description": "Error",
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"code":    map[string]any{"type": "string"},
							"message": map[string]any{"type": "string"},
						},
						"required": []string{"code", "message"},
					},
				},
			},
		}
	}
	return out
}
