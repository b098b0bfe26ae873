// Package all assembles the full emitter set so callers can generate every
// backend, or look one up by name, without importing each backend package.
package all

import (
	"fmt"
	"strings"

	"goa.design/facet/emit"
	"goa.design/facet/emit/asyncapi"
	"goa.design/facet/emit/capnp"
	"goa.design/facet/emit/cli"
	"goa.design/facet/emit/graphql"
	"goa.design/facet/emit/httproute"
	"goa.design/facet/emit/jsonrpc"
	"goa.design/facet/emit/jsonschemas"
	"goa.design/facet/emit/markdown"
	"goa.design/facet/emit/openapi"
	"goa.design/facet/emit/proto"
	"goa.design/facet/emit/smithy"
	"goa.design/facet/emit/thrift"
	"goa.design/facet/emit/tools"
)

// Emitters returns every backend in stable order.
func Emitters() []emit.Emitter {
	return []emit.Emitter{
		httproute.New(),
		openapi.New(),
		cli.New(),
		tools.New(),
		jsonrpc.New(),
		proto.New(),
		thrift.New(),
		capnp.New(),
		smithy.New(),
		graphql.New(),
		asyncapi.New(),
		jsonschemas.New(),
		markdown.New(),
	}
}

// Names returns the backend names in stable order.
func Names() []string {
	es := Emitters()
	names := make([]string, len(es))
	for i, e := range es {
		names[i] = e.Name()
	}
	return names
}

// Select resolves a comma-separated backend list, or every backend when the
// list is empty or "all".
func Select(list string) ([]emit.Emitter, error) {
	es := Emitters()
	if list == "" || list == "all" {
		return es, nil
	}
	byName := make(map[string]emit.Emitter, len(es))
	for _, e := range es {
		byName[e.Name()] = e
	}
	var out []emit.Emitter
	for _, name := range strings.Split(list, ",") {
		name = strings.TrimSpace(name)
		e, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown backend %q (known: %s)", name, strings.Join(Names(), ", "))
		}
		out = append(out, e)
	}
	return out, nil
}
