// Package jsonschemas emits one JSON Schema document per documented method,
// describing the argument object and the success result. Every document is
// compiled before it is written.
package jsonschemas

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Emitter generates schemas/<method>.json files.
type Emitter struct{}

// New returns the jsonschemas emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "jsonschema" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	var files []emit.File
	for _, m := range emit.Documented(svc) {
		doc := map[string]any{
			"$schema": "https://json-schema.org/draft/2020-12/schema",
			"$id":     fmt.Sprintf("%s/%s.schema.json", svc.Name, m.Name),
			"title":   m.Name,
			"type":    "object",
			"properties": map[string]any{
				"arguments": emit.ParamsSchema(m),
				"result":    emit.ResultSchema(m),
			},
		}
		if m.Doc != "" {
			doc["description"] = m.Doc
		}
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		if err := compile(m.Name, data); err != nil {
			return nil, fmt.Errorf("method %s: invalid schema: %w", m.Name, err)
		}
		files = append(files, emit.File{
			Path:    fmt.Sprintf("schemas/%s.json", m.Name),
			Content: append(data, '\n'),
		})
	}
	return files, nil
}

func compile(name string, data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	c := jsonschema.NewCompiler()
	url := name + ".schema.json"
	if err := c.AddResource(url, doc); err != nil {
		return err
	}
	_, err = c.Compile(url)
	return err
}
