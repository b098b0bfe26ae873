// Package tools emits the LLM tool-use surface: one tool definition per
// documented method with a JSON Schema for its arguments. Every schema is
// compiled before it is written, so a malformed projection fails generation
// instead of the first model call.
package tools

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"goa.design/facet/emit"
	"goa.design/facet/model"
)

// Tool is one callable tool definition.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"input_schema"`
}

// Emitter generates tools.json.
type Emitter struct{}

// New returns the tools emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "tools" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	tools := make([]Tool, 0, len(svc.Methods))
	for _, m := range emit.Documented(svc) {
		desc := m.Doc
		if desc == "" {
			desc = fmt.Sprintf("Invoke the %s operation of %s.", m.Name, svc.Name)
		}
		t := Tool{
			Name:        m.Name,
			Description: desc,
			InputSchema: emit.ParamsSchema(m),
		}
		if err := compileSchema(t.Name, t.InputSchema); err != nil {
			return nil, fmt.Errorf("tool %s: invalid input schema: %w", t.Name, err)
		}
		tools = append(tools, t)
	}

	doc := map[string]any{"service": svc.Name, "tools": tools}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return []emit.File{{Path: "tools.json", Content: append(data, '\n')}}, nil
}

func compileSchema(name string, schema map[string]any) error {
	data, err := json.Marshal(schema)
	if err != nil {
		return err
	}
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
