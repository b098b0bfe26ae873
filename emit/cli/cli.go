// Package cli projects the service into a command-line surface: a grammar
// artifact describing every subcommand, and a runnable cobra command tree
// wired to the generic dispatcher. Required arguments are positional in
// declaration order; optional and defaulted arguments become flags.
package cli

import (
	"encoding/json"

	"goa.design/goa/v3/codegen"

	"goa.design/facet/emit"
	"goa.design/facet/model"
)

type (
	// Command is one subcommand in the grammar artifact.
	Command struct {
		Name        string     `json:"name"`
		Method      string     `json:"method"`
		Doc         string     `json:"doc,omitempty"`
		Hidden      bool       `json:"hidden,omitempty"`
		Positionals []Argument `json:"positionals,omitempty"`
		Flags       []Argument `json:"flags,omitempty"`
	}

	// Argument is one positional argument or flag.
	Argument struct {
		Name    string `json:"name"`
		Wire    string `json:"wire"`
		Type    string `json:"type"`
		Default any    `json:"default,omitempty"`
	}

	// Emitter generates cli.json.
	Emitter struct{}
)

// New returns the cli emitter.
func New() *Emitter { return &Emitter{} }

// Name implements emit.Emitter.
func (*Emitter) Name() string { return "cli" }

// SupportsStreaming implements emit.Emitter.
func (*Emitter) SupportsStreaming() bool { return false }

// Emit implements emit.Emitter.
func (e *Emitter) Emit(svc *model.Service) ([]emit.File, error) {
	if err := emit.CheckStreaming(e, svc); err != nil {
		return nil, err
	}
	cmds := Grammar(svc)
	doc := map[string]any{
		"program":  codegen.KebabCase(svc.Name),
		"commands": cmds,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return []emit.File{{Path: "cli.json", Content: append(data, '\n')}}, nil
}

// Grammar builds the subcommand grammar for every exposed method in
// declaration order. Hidden methods stay callable but are marked so help
// output skips them.
func Grammar(svc *model.Service) []Command {
	cmds := make([]Command, 0, len(svc.Methods))
	for _, m := range emit.Exposed(svc) {
		c := Command{
			Name:   m.Op.Subcommand,
			Method: m.Name,
			Doc:    m.Doc,
			Hidden: m.Visibility == model.VisibilityHidden,
		}
		for _, p := range m.WireParams() {
			arg := Argument{
				Name:    codegen.KebabCase(p.WireName),
				Wire:    p.WireName,
				Type:    p.Type.String(),
				Default: p.Default,
			}
			if p.Required() {
				c.Positionals = append(c.Positionals, arg)
			} else {
				c.Flags = append(c.Flags, arg)
			}
		}
		cmds = append(cmds, c)
	}
	return cmds
}
