package codegen

import (
	"slices"
	"strings"
	"unicode"

	"goa.design/facet/decl"
	"goa.design/facet/diag"
	"goa.design/facet/model"
)

// capture reads one declaration into a method skeleton: name, doc, async
// flag and parameters with wire names, optionality and defaults resolved.
// Roles, shapes and operation metadata are filled by later passes.
//
// Returns nil when the declaration is skipped (no receiver, or private).
func capture(svc string, d decl.Method, errs *diag.List) *model.Method {
	if !d.Receiver || strings.HasPrefix(d.Name, "_") {
		return nil
	}
	loc := diag.Location{Service: svc, Method: d.Name}

	if !isIdentifier(d.Name) {
		errs.Add(diag.Errorf(diag.InvalidSignature, loc, "method name %q is not a plain identifier", d.Name))
		return nil
	}
	checkOverrideKeys(d.Overrides, decl.MethodOverrideKeys, loc, errs)

	m := &model.Method{
		Name:       d.Name,
		Doc:        d.Doc,
		Async:      d.Async,
		Visibility: model.VisibilityNormal,
	}
	if doc, ok := d.Overrides[decl.OverrideDoc].(string); ok {
		m.Doc = doc
	}

	seen := make(map[string]struct{}, len(d.Params))
	for _, pd := range d.Params {
		ploc := diag.Location{Service: svc, Method: d.Name, Param: pd.Name}
		if !isIdentifier(pd.Name) {
			errs.Add(diag.Errorf(diag.InvalidSignature, ploc,
				"unsupported parameter pattern %q: parameters must be plain name-and-type bindings", pd.Name))
			continue
		}
		if _, dup := seen[pd.Name]; dup {
			errs.Add(diag.Errorf(diag.InvalidSignature, ploc, "duplicate parameter name %q", pd.Name))
			continue
		}
		seen[pd.Name] = struct{}{}
		checkOverrideKeys(pd.Overrides, decl.ParamOverrideKeys, ploc, errs)

		p := &model.Param{
			Name:     pd.Name,
			Type:     pd.Type,
			Role:     model.RoleUnclassified,
			WireName: pd.Name,
		}
		// Unwrap a single Optional layer; the wrapped value, not the wrapper,
		// is what later re-serialization must produce for absent values.
		if pd.Type.Name == "Optional" && pd.Type.Qualifier == "" && len(pd.Type.Args) == 1 {
			p.Optional = true
			p.Type = pd.Type.Args[0]
		}
		if wire, ok := pd.Overrides[decl.OverrideWireName].(string); ok && wire != "" {
			p.WireName = wire
		}
		if def, ok := pd.Overrides[decl.OverrideDefault]; ok {
			p.Default = def
		}
		m.Params = append(m.Params, p)
	}

	captureResponse(m, d, loc, errs)
	return m
}

func captureResponse(m *model.Method, d decl.Method, loc diag.Location, errs *diag.List) {
	if code, ok := d.Overrides[decl.OverrideStatusCode]; ok {
		switch v := code.(type) {
		case int:
			m.Response.StatusCode = v
		case float64:
			m.Response.StatusCode = int(v)
		default:
			errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "status_code override must be an integer, got %T", code))
		}
	}
	if ct, ok := d.Overrides[decl.OverrideContentType].(string); ok {
		m.Response.ContentType = ct
	}
	if hs, ok := d.Overrides[decl.OverrideHeaders]; ok {
		switch headers := hs.(type) {
		case map[string]string:
			for _, name := range sortedKeys(headers) {
				m.Response.Headers = append(m.Response.Headers, model.Header{Name: name, Value: headers[name]})
			}
		case map[string]any:
			for _, name := range sortedKeys(headers) {
				if v, ok := headers[name].(string); ok {
					m.Response.Headers = append(m.Response.Headers, model.Header{Name: name, Value: v})
				} else {
					errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "extra_headers values must be strings, got %T for %q", headers[name], name))
				}
			}
		default:
			errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "extra_headers override must be a string map, got %T", hs))
		}
	}
}

// checkOverrideKeys reports every override key not present in the recognized
// set. Unrecognized keys are capture-time errors, never silent no-ops.
func checkOverrideKeys(overrides map[string]any, valid []string, loc diag.Location, errs *diag.List) {
	for _, key := range sortedKeys(overrides) {
		known := false
		for _, v := range valid {
			if key == v {
				known = true
				break
			}
		}
		if !known {
			errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "unknown override key %q", key).WithHints(valid...))
		}
	}
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
