package dispatch

import (
	"goa.design/facet/codegen/naming"
	"goa.design/facet/codegen/typemap"
	"goa.design/facet/diag"
	"goa.design/facet/model"
)

type (
	// Plan is the per-method dispatch table: how to pull each argument out of
	// a JSON-like value, which Go method to call and how to serialize the
	// result. Backends embed plans in their generated artifacts so every
	// JSON-style caller extracts arguments identically.
	Plan struct {
		// Method is the declared method name.
		Method string
		// GoName is the exported Go method name dispatch binds to.
		GoName string
		// Async reports whether the method requires an awaiting caller.
		Async bool
		// HasContext reports whether an ambient context is injected.
		HasContext bool
		// Args lists wire-visible arguments in declaration order.
		Args []Arg
		// Shape is the return shape driving result serialization.
		Shape model.ReturnShape
	}

	// Arg is one wire-visible argument extraction step.
	Arg struct {
		// Name is the declared parameter name.
		Name string
		// Wire is the key looked up in the argument object.
		Wire string
		// JSONType is the expected JSON type of the value.
		JSONType string
		// Role is the parameter's transport role.
		Role model.Role
		// Optional reports whether the argument may be absent.
		Optional bool
		// Default is substituted when the argument is absent, nil when none.
		Default any
	}
)

// PlanFor builds the dispatch plan for one method. Streaming methods have no
// JSON dispatch form and are rejected.
func PlanFor(svc *model.Service, m *model.Method) (*Plan, *diag.Error) {
	if m.Streaming() {
		return nil, diag.Errorf(diag.StreamingUnsupportedByBackend,
			diag.Location{Service: svc.Name, Method: m.Name},
			"method %q returns a lazy sequence, which JSON dispatch cannot represent", m.Name)
	}
	p := &Plan{
		Method:     m.Name,
		GoName:     naming.GoName(m.Name),
		Async:      m.Async,
		HasContext: m.ContextParam() != nil,
		Shape:      m.Return,
	}
	for _, param := range m.WireParams() {
		p.Args = append(p.Args, Arg{
			Name:     param.Name,
			Wire:     param.WireName,
			JSONType: typemap.Lookup(typemap.JSONSchema, param.Type),
			Role:     param.Role,
			Optional: param.Optional,
			Default:  param.Default,
		})
	}
	return p, nil
}

// Plans builds the dispatch plans for every non-suppressed method of the
// service, in declaration order.
func Plans(svc *model.Service) ([]*Plan, error) {
	var errs diag.List
	plans := make([]*Plan, 0, len(svc.Methods))
	for _, m := range svc.Methods {
		if m.Visibility == model.VisibilitySuppressed {
			continue
		}
		p, err := PlanFor(svc, m)
		if err != nil {
			errs.Add(err)
			continue
		}
		plans = append(plans, p)
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return plans, nil
}
