package naming

import (
	"strings"

	"goa.design/goa/v3/codegen"

	"goa.design/facet/model"
)

// conventions is the static ordered prefix table. Longest prefix wins; the
// order below only breaks ties between equal-length prefixes, so keep it
// stable for deterministic output.
var conventions = []struct {
	prefix string
	kind   model.OpKind
	verb   string
}{
	{"create_", model.KindCreation, "POST"},
	{"add_", model.KindCreation, "POST"},
	{"new_", model.KindCreation, "POST"},
	{"get_", model.KindLookup, "GET"},
	{"fetch_", model.KindLookup, "GET"},
	{"read_", model.KindLookup, "GET"},
	{"list_", model.KindCollection, "GET"},
	{"find_", model.KindCollection, "GET"},
	{"search_", model.KindCollection, "GET"},
	{"update_", model.KindMutation, "PUT"},
	{"set_", model.KindMutation, "PUT"},
	{"patch_", model.KindMutation, "PATCH"},
	{"modify_", model.KindMutation, "PATCH"},
	{"delete_", model.KindDeletion, "DELETE"},
	{"remove_", model.KindDeletion, "DELETE"},
}

// Infer derives the operation kind and HTTP verb from a method name by
// longest-prefix match against the convention table. Names matching no prefix
// are generic calls dispatched as POST.
func Infer(name string) (model.OpKind, string) {
	kind, verb, matched := model.KindCall, "POST", ""
	for _, c := range conventions {
		if strings.HasPrefix(name, c.prefix) && len(c.prefix) > len(matched) {
			kind, verb, matched = c.kind, c.verb, c.prefix
		}
	}
	return kind, verb
}

// Resource returns the resource fragment of a method name: the name with its
// convention prefix stripped, kebab-cased and pluralized with a trailing "s"
// unless one is already present. Generic calls have no resource.
func Resource(name string) string {
	matched := ""
	for _, c := range conventions {
		if strings.HasPrefix(name, c.prefix) && len(c.prefix) > len(matched) {
			matched = c.prefix
		}
	}
	if matched == "" {
		return ""
	}
	kebab := codegen.KebabCase(strings.TrimPrefix(name, matched))
	if strings.HasSuffix(kebab, "s") {
		return kebab
	}
	return kebab + "s"
}

// Path builds the inferred path template for a method: the collection root
// for the resource (or /rpc/<name> for generic calls) followed by one slot
// per path-identifier parameter, in declaration order, named by wire name.
// Creation and collection operations bind to the collection root and carry no
// slots. The service prefix is not included.
func Path(name string, kind model.OpKind, pathParams []*model.Param) string {
	var b strings.Builder
	if kind == model.KindCall {
		b.WriteString("/rpc/")
		b.WriteString(name)
		return b.String()
	}
	b.WriteString("/")
	b.WriteString(Resource(name))
	if kind == model.KindCreation || kind == model.KindCollection {
		return b.String()
	}
	for _, p := range pathParams {
		b.WriteString("/{")
		b.WriteString(p.WireName)
		b.WriteString("}")
	}
	return b.String()
}

// Subcommand derives the CLI subcommand name: the kebab-cased method name.
func Subcommand(name string) string { return codegen.KebabCase(name) }

// GraphQLKind classifies an operation for GraphQL: streaming methods are
// subscriptions, GET-shaped operations queries, everything else mutations.
func GraphQLKind(verb string, streaming bool) string {
	switch {
	case streaming:
		return "subscription"
	case verb == "GET":
		return "query"
	default:
		return "mutation"
	}
}

// GoName converts a snake_case method name into the exported Go identifier
// the dispatch invoker looks up on the service value.
func GoName(name string) string {
	return codegen.Goify(name, true)
}

// NormalizeRoute rewrites every path slot to {*} so routes that differ only
// in slot names compare equal during duplicate detection.
func NormalizeRoute(path string) string {
	segs := strings.Split(path, "/")
	for i, s := range segs {
		if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
			segs[i] = "{*}"
		}
	}
	return strings.Join(segs, "/")
}
