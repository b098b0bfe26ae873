// Package httproute emits the HTTP routing table: one entry per exposed
// method with its verb, path template, parameter bindings and response
// metadata. The table is the contract an HTTP server adapter mounts.
package httproute

import (
	"encoding/json"

	"goa.design/facet/emit"
	"goa.design/facet/model"
)

type (
	// Route is one mounted HTTP operation.
	Route struct {
		Method     string    `json:"method"`
		Verb       string    `json:"verb"`
		Path       string    `json:"path"`
		Kind       string    `json:"kind"`
		Streaming  bool      `json:"streaming,omitempty"`
		Params     []Binding `json:"params,omitempty"`
		Status     int       `json:"status"`
		Content    string    `json:"content_type"`
		Headers    []Header  `json:"headers,omitempty"`
		Overridden bool      `json:"overridden,omitempty"`
	}

	// Binding places one parameter in the request.
	Binding struct {
		Name     string `json:"name"`
		Wire     string `json:"wire"`
		In       string `json:"in"`
		Type     string `json:"type"`
		Required bool   `json:"required"`
		Default  any    `json:"default,omitempty"`
	}

	// Header is one extra response header.
	Header struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	// Emitter generates routes.json.
	Emitter struct{}
)

// New returns the httproute emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "httproute" }

// SupportsStreaming implements emit.Emitter: streaming methods route as
// event-stream endpoints.
func (*Emitter) SupportsStreaming() bool { return true }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	routes := make([]Route, 0, len(svc.Methods))
	for _, m := range emit.Exposed(svc) {
		r := Route{
			Method:     m.Name,
			Verb:       m.Op.Verb,
			Path:       m.Op.Path,
			Kind:       string(m.Op.Kind),
			Streaming:  m.Streaming(),
			Status:     emit.SuccessStatus(m),
			Content:    emit.ContentType(m),
			Overridden: m.Op.Overridden,
		}
		for _, p := range m.WireParams() {
			r.Params = append(r.Params, Binding{
				Name:     p.Name,
				Wire:     p.WireName,
				In:       string(p.Role),
				Type:     p.Type.String(),
				Required: p.Required(),
				Default:  p.Default,
			})
		}
		for _, h := range m.Response.Headers {
			r.Headers = append(r.Headers, Header{Name: h.Name, Value: h.Value})
		}
		routes = append(routes, r)
	}

	doc := map[string]any{"service": svc.Name, "routes": routes}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return []emit.File{{Path: "routes.json", Content: append(data, '\n')}}, nil
}
