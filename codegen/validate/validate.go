// Package validate cross-checks the assembled model: duplicate route
// detection, path template well-formedness and opt-in schema-consistency
// diffing. Each check is an explicit pass over the full method list and never
// mutates the model.
package validate

import (
	"sort"
	"strings"

	"goa.design/facet/codegen/naming"
	"goa.design/facet/diag"
	"goa.design/facet/model"
)

// Routes groups every HTTP-shaped operation by (verb, normalized path) and
// reports one DuplicateRouteConflict per colliding group, naming every
// conflicting method. Suppressed methods do not route and are exempt.
func Routes(svc *model.Service, errs *diag.List) {
	groups := make(map[string][]*model.Method)
	order := make([]string, 0, len(svc.Methods))
	for _, m := range svc.Methods {
		if m.Visibility == model.VisibilitySuppressed {
			continue
		}
		sig := m.Op.Verb + " " + naming.NormalizeRoute(m.Op.Path)
		if _, ok := groups[sig]; !ok {
			order = append(order, sig)
		}
		groups[sig] = append(groups[sig], m)
	}
	for _, sig := range order {
		ms := groups[sig]
		if len(ms) < 2 {
			continue
		}
		names := make([]string, len(ms))
		for i, m := range ms {
			names[i] = m.Name
		}
		errs.Add(diag.Errorf(diag.DuplicateRouteConflict,
			diag.Location{Service: svc.Name, Method: ms[0].Name},
			"route %s resolved by %d methods without a disambiguating override", sig, len(ms)).
			WithHints(names...))
	}
}

// PathTemplate validates a path override: it must start with the root
// separator, contain no empty or trailing segments, and every identifier slot
// must be a complete segment with balanced braces, a non-empty unique name
// and an identifier-safe charset.
func PathTemplate(path string, loc diag.Location) *diag.Error {
	if !strings.HasPrefix(path, "/") {
		return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q must start with '/'", path)
	}
	if strings.Contains(path, "//") {
		return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q contains consecutive slashes", path)
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q has a trailing slash", path)
	}
	if strings.Count(path, "{") != strings.Count(path, "}") {
		return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q has mismatched braces", path)
	}
	seen := make(map[string]struct{})
	for _, seg := range strings.Split(path, "/") {
		switch {
		case strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}"):
			name := seg[1 : len(seg)-1]
			if name == "" {
				return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q has an empty slot name", path)
			}
			if !slotName(name) {
				return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q slot %q contains invalid characters", path, name)
			}
			if _, dup := seen[name]; dup {
				return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q has duplicate slot %q", path, name)
			}
			seen[name] = struct{}{}
		case strings.ContainsAny(seg, "{}"):
			return diag.Errorf(diag.MalformedPathTemplate, loc, "path %q slot must span a whole segment, got %q", path, seg)
		}
	}
	return nil
}

// SchemaDiff compares a previously emitted schema artifact against the text
// the current model generates. Comparison is line-set based after trimming,
// matching how schema drift is reported to users: missing lines were expected
// but not regenerated, extra lines are new.
func SchemaDiff(target, expected, generated string, loc diag.Location) *diag.Error {
	expSet := lineSet(expected)
	genSet := lineSet(generated)

	var missing, extra []string
	for line := range expSet {
		if _, ok := genSet[line]; !ok {
			missing = append(missing, line)
		}
	}
	for line := range genSet {
		if _, ok := expSet[line]; !ok {
			extra = append(extra, line)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)

	hints := make([]string, 0, len(missing)+len(extra))
	for _, l := range missing {
		hints = append(hints, "missing: "+l)
	}
	for _, l := range extra {
		hints = append(hints, "extra: "+l)
	}
	return diag.Errorf(diag.SchemaMismatch, loc,
		"%s schema drifted from the previously emitted artifact: %d missing, %d extra line(s)",
		target, len(missing), len(extra)).WithHints(hints...)
}

func lineSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			set[line] = struct{}{}
		}
	}
	return set
}

func slotName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}
