// Package markdown emits human-readable API reference documentation, one
// section per documented method.
package markdown

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"goa.design/facet/emit"
	"goa.design/facet/model"
)

//go:embed api.md.tmpl
var apiT string

var tmpl = template.Must(template.New("api").Parse(apiT))

type (
	docData struct {
		Service string
		Methods []methodData
	}
	methodData struct {
		Name, Doc, Verb, Path, Subcommand, Returns string
		Streaming                                  bool
		Params                                     []paramData
	}
	paramData struct {
		Wire, In, Type string
		Required       bool
		Default        any
	}
)

// Emitter generates API.md.
type Emitter struct{}

// New returns the markdown emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "markdown" }

// SupportsStreaming implements emit.Emitter: streaming methods document as
// event streams.
func (*Emitter) SupportsStreaming() bool { return true }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	data := docData{Service: svc.Name}
	for _, m := range emit.Documented(svc) {
		md := methodData{
			Name:       m.Name,
			Doc:        m.Doc,
			Verb:       m.Op.Verb,
			Path:       m.Op.Path,
			Subcommand: m.Op.Subcommand,
			Returns:    describeReturn(m),
			Streaming:  m.Streaming(),
		}
		for _, p := range m.WireParams() {
			md.Params = append(md.Params, paramData{
				Wire:     p.WireName,
				In:       string(p.Role),
				Type:     p.Type.String(),
				Required: p.Required(),
				Default:  p.Default,
			})
		}
		data.Methods = append(data.Methods, md)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return []emit.File{{Path: "API.md", Content: buf.Bytes()}}, nil
}

func describeReturn(m *model.Method) string {
	switch m.Return.Kind {
	case model.ShapeUnit:
		return "nothing"
	case model.ShapeOptional:
		return fmt.Sprintf("`%s` or nothing", m.Return.Elem)
	case model.ShapeSequence:
		return fmt.Sprintf("a list of `%s`", m.Return.Elem)
	case model.ShapeStream:
		return fmt.Sprintf("a stream of `%s`", m.Return.Elem)
	case model.ShapeOutcome:
		if m.Return.Err.IsZero() {
			return fmt.Sprintf("`%s` on success", m.Return.Elem)
		}
		return fmt.Sprintf("`%s` on success, `%s` on failure", m.Return.Elem, m.Return.Err)
	default:
		return fmt.Sprintf("`%s`", m.Return.Elem)
	}
}
