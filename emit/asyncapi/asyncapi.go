// Package asyncapi emits an AsyncAPI 2.6 description. Streaming methods map
// to subscribe channels delivering one message per element; other methods map
// to publish channels carrying the argument object with the reply schema
// attached.
package asyncapi

import (
	"gopkg.in/yaml.v3"

	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates asyncapi.yaml.
type Emitter struct{}

// New returns the asyncapi emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "asyncapi" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return true }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	channels := make(map[string]any)
	for _, m := range emit.Documented(svc) {
		channels[channelName(svc, m)] = channel(m)
	}
	doc := map[string]any{
		"asyncapi": "2.6.0",
		"info": map[string]any{
			"title":   svc.Name,
			"version": "1.0.0",
		},
		"channels": channels,
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return []emit.File{{Path: "asyncapi.yaml", Content: data}}, nil
}

func channelName(svc *model.Service, m *model.Method) string {
	return svc.Name + "/" + m.Name
}

func channel(m *model.Method) map[string]any {
	if m.Streaming() {
		message := map[string]any{
			"name":    m.Name + "_event",
			"payload": emit.Schema(m.Return.Elem),
		}
		sub := map[string]any{
			"operationId": m.Name,
			"message":     message,
		}
		if m.Doc != "" {
			sub["summary"] = m.Doc
		}
		return map[string]any{"subscribe": sub}
	}

	message := map[string]any{
		"name":    m.Name + "_request",
		"payload": emit.ParamsSchema(m),
		"bindings": map[string]any{
			"x-reply": emit.ResultSchema(m),
		},
	}
	pub := map[string]any{
		"operationId": m.Name,
		"message":     message,
	}
	if m.Doc != "" {
		pub["summary"] = m.Doc
	}
	return map[string]any{"publish": pub}
}
