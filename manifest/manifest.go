// Package manifest loads service declarations from YAML files. The manifest
// is the front end used by the command line: each document describes one
// service block with its methods, parameters and overrides, and type
// references use the same angle-bracket syntax as declarations.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"goa.design/facet/decl"
)

type (
	serviceDoc struct {
		Service string         `yaml:"service"`
		Prefix  string         `yaml:"prefix"`
		Methods []methodDoc    `yaml:"methods"`
		Extra   map[string]any `yaml:",inline"`
	}

	methodDoc struct {
		Name      string         `yaml:"name"`
		Doc       string         `yaml:"doc"`
		Async     bool           `yaml:"async"`
		Static    bool           `yaml:"static"`
		Return    string         `yaml:"return"`
		Overrides map[string]any `yaml:"overrides"`
		Params    []paramDoc     `yaml:"params"`
	}

	paramDoc struct {
		Name      string         `yaml:"name"`
		Type      string         `yaml:"type"`
		Overrides map[string]any `yaml:"overrides"`
	}
)

// Load reads a service declaration from a YAML manifest file.
func Load(path string) (decl.Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return decl.Service{}, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes one service declaration from YAML bytes.
func Parse(data []byte) (decl.Service, error) {
	var doc serviceDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return decl.Service{}, fmt.Errorf("parse manifest: %w", err)
	}
	if doc.Service == "" {
		return decl.Service{}, fmt.Errorf("manifest is missing the service name")
	}
	for key := range doc.Extra {
		return decl.Service{}, fmt.Errorf("manifest has unknown top-level key %q", key)
	}

	svc := decl.Service{Name: doc.Service, Prefix: doc.Prefix}
	for _, md := range doc.Methods {
		if md.Name == "" {
			return decl.Service{}, fmt.Errorf("manifest method is missing a name")
		}
		ret, err := decl.ParseTypeRef(md.Return)
		if err != nil {
			return decl.Service{}, fmt.Errorf("method %s: return type: %w", md.Name, err)
		}
		m := decl.Method{
			Name:      md.Name,
			Doc:       md.Doc,
			Async:     md.Async,
			Receiver:  !md.Static,
			Return:    ret,
			Overrides: md.Overrides,
		}
		for _, pd := range md.Params {
			t, err := decl.ParseTypeRef(pd.Type)
			if err != nil {
				return decl.Service{}, fmt.Errorf("method %s: param %s: %w", md.Name, pd.Name, err)
			}
			m.Params = append(m.Params, decl.Param{Name: pd.Name, Type: t, Overrides: pd.Overrides})
		}
		svc.Methods = append(svc.Methods, m)
	}
	return svc, nil
}
