package codegen

import (
	"strings"

	"goa.design/facet/decl"
	"goa.design/facet/diag"
	"goa.design/facet/model"
)

// contextTypeName is the unqualified name of the ambient context type. The
// qualified spelling is any dotted path ending in "facet.Context".
const contextTypeName = "Context"

// isQualifiedContext reports whether the reference spells the ambient context
// type with its package qualifier, e.g. "facet.Context" or
// "goa.design.facet.Context".
func isQualifiedContext(t decl.TypeRef) bool {
	if t.Name != contextTypeName || t.Qualifier == "" {
		return false
	}
	segs := strings.Split(t.Qualifier, ".")
	return segs[len(segs)-1] == "facet"
}

// isBareContext reports whether the reference is the unqualified "Context".
func isBareContext(t decl.TypeRef) bool {
	return t.Name == contextTypeName && t.Qualifier == "" && len(t.Args) == 0
}

// hasQualifiedContext is the first pass of the two-pass collision resolution:
// it scans every parameter type in the block for the qualified spelling.
// When one exists anywhere, bare "Context" is assumed to be a user type
// everywhere in the block.
func hasQualifiedContext(methods []decl.Method) bool {
	for _, m := range methods {
		for _, p := range m.Params {
			if isQualifiedContext(p.Type) {
				return true
			}
		}
	}
	return false
}

// injectContext reports whether a parameter of the given type should be
// auto-populated with the ambient context, given the block-wide scan result.
func injectContext(t decl.TypeRef, hasQualified bool) bool {
	if isQualifiedContext(t) {
		return true
	}
	return isBareContext(t) && !hasQualified
}

// checkSingleContext enforces the at-most-one ambient-context invariant after
// classification.
func checkSingleContext(svc string, m *model.Method, errs *diag.List) {
	var first *model.Param
	for _, p := range m.Params {
		if p.Role != model.RoleAmbientContext {
			continue
		}
		if first != nil {
			errs.Add(diag.Errorf(diag.InvalidSignature,
				diag.Location{Service: svc, Method: m.Name, Param: p.Name},
				"only one ambient context parameter allowed per method; %q already holds it", first.Name))
			return
		}
		first = p
	}
}
