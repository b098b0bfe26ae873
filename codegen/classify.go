package codegen

import (
	"strings"

	"goa.design/facet/decl"
	"goa.design/facet/diag"
	"goa.design/facet/model"
)

var roleOverrideValues = map[string]model.Role{
	"path":    model.RolePathIdentifier,
	"query":   model.RoleQueryValue,
	"header":  model.RoleHeaderValue,
	"body":    model.RoleStructuredBody,
	"context": model.RoleAmbientContext,
}

// classifyParams assigns each parameter its transport role. The rules apply
// in order: explicit override, ambient-context injection, identifier
// heuristic, structured body for body-bearing verbs, query value otherwise.
// The assignment is a pure function of the declaration, the resolved verb and
// the block-wide context scan, so re-running it on identical input yields
// identical roles.
func classifyParams(svc string, d decl.Method, m *model.Method, verb string, hasQualified bool, errs *diag.List) {
	declByName := make(map[string]decl.Param, len(d.Params))
	for _, pd := range d.Params {
		declByName[pd.Name] = pd
	}
	bodyBearing := verb == "POST" || verb == "PUT" || verb == "PATCH"

	for _, p := range m.Params {
		pd := declByName[p.Name]
		loc := diag.Location{Service: svc, Method: m.Name, Param: p.Name}

		if raw, ok := pd.Overrides[decl.OverrideRole]; ok {
			name, isStr := raw.(string)
			role, known := roleOverrideValues[name]
			if !isStr || !known {
				errs.Add(diag.Errorf(diag.UnknownOverrideKey, loc, "unknown role override %v", raw).
					WithHints("path", "query", "header", "body", "context"))
				continue
			}
			p.Role = role
			continue
		}
		if injectContext(pd.Type, hasQualified) {
			p.Role = model.RoleAmbientContext
			continue
		}
		if isIdentifierName(p.Name) {
			p.Role = model.RolePathIdentifier
			continue
		}
		if bodyBearing {
			p.Role = model.RoleStructuredBody
			continue
		}
		p.Role = model.RoleQueryValue
	}

	checkSingleContext(svc, m, errs)
}

// isIdentifierName implements the identifier heuristic: a parameter named
// exactly "id" or ending in "_id" names a path identifier.
func isIdentifierName(name string) bool {
	return name == "id" || strings.HasSuffix(name, "_id")
}
