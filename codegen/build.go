package codegen

import (
	"fmt"
	"strings"

	"goa.design/facet/codegen/naming"
	"goa.design/facet/codegen/validate"
	"goa.design/facet/decl"
	"goa.design/facet/diag"
	"goa.design/facet/model"
)

var httpVerbs = []string{"GET", "POST", "PUT", "PATCH", "DELETE"}

var visibilityValues = map[string]model.Visibility{
	"normal":     model.VisibilityNormal,
	"suppressed": model.VisibilitySuppressed,
	"hidden":     model.VisibilityHidden,
}

// Build constructs the immutable service model from one declaration block.
// It runs every pipeline pass, accumulating independent diagnostics, and
// returns either a fully validated model or the complete diagnostic list —
// never a partially accepted block.
func Build(src decl.Service) (*model.Service, error) {
	if src.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	var errs diag.List

	// Pass 1 of context resolution scans the whole block before any method
	// is classified.
	hasQualified := hasQualifiedContext(src.Methods)

	svc := &model.Service{Name: src.Name, Prefix: src.Prefix}
	seen := make(map[string]struct{}, len(src.Methods))
	for _, d := range src.Methods {
		m := capture(src.Name, d, &errs)
		if m == nil {
			continue
		}
		if _, dup := seen[m.Name]; dup {
			errs.Add(diag.Errorf(diag.InvalidSignature,
				diag.Location{Service: src.Name, Method: m.Name},
				"duplicate method name %q", m.Name))
			continue
		}
		seen[m.Name] = struct{}{}

		resolveOperation(src, d, m, hasQualified, &errs)
		svc.Methods = append(svc.Methods, m)
	}

	validate.Routes(svc, &errs)

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return svc, nil
}

// resolveOperation fills in the method's return shape, parameter roles and
// per-backend operation metadata, honoring overrides. Overrides replace the
// inferred (verb, path, visibility) tuple for all backends at once.
func resolveOperation(src decl.Service, d decl.Method, m *model.Method, hasQualified bool, errs *diag.List) {
	loc := diag.Location{Service: src.Name, Method: m.Name}

	m.Return = analyzeShape(d.Return)

	kind, verb := naming.Infer(m.Name)
	overridden := false

	if raw, ok := d.Overrides[decl.OverrideVerb]; ok {
		v, isStr := raw.(string)
		v = strings.ToUpper(v)
		if !isStr || !validVerb(v) {
			errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "unknown verb override %v", raw).
				WithHints(httpVerbs...))
		} else {
			verb = v
			overridden = true
		}
	}

	classifyParams(src.Name, d, m, verb, hasQualified, errs)

	path := naming.Path(m.Name, kind, m.PathParams())
	if raw, ok := d.Overrides[decl.OverridePath]; ok {
		p, isStr := raw.(string)
		if !isStr {
			errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "path override must be a string, got %T", raw))
		} else if err := validate.PathTemplate(p, loc); err != nil {
			errs.Add(err)
		} else {
			path = p
			overridden = true
		}
	}

	if raw, ok := d.Overrides[decl.OverrideVisibility]; ok {
		name, isStr := raw.(string)
		vis, known := visibilityValues[name]
		if !isStr || !known {
			errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "unknown visibility override %v", raw).
				WithHints("normal", "suppressed", "hidden"))
		} else {
			m.Visibility = vis
		}
	}

	m.Op = model.Operation{
		Kind:        kind,
		Verb:        verb,
		Path:        src.Prefix + path,
		Subcommand:  naming.Subcommand(m.Name),
		RPCName:     m.Name,
		GraphQLKind: naming.GraphQLKind(verb, m.Streaming()),
		Overridden:  overridden,
	}
}

func validVerb(v string) bool {
	for _, known := range httpVerbs {
		if v == known {
			return true
		}
	}
	return false
}
