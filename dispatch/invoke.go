package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/uuid"
	"goa.design/facet/diag"
	"goa.design/facet/model"
)

// Invoker executes dispatch plans against a live service value using
// reflection. The bound Go type must expose one exported method per plan.
// Async methods take a context.Context first, the ambient context (when the
// operation declares one) comes next as *Context, then the wire arguments in
// declaration order.
type Invoker struct {
	service reflect.Value
	svcName string
	plans   map[string]*Plan
}

// NewInvoker binds the service model to a live implementation. Every
// non-suppressed method must resolve to an exported Go method with the arity
// the plan implies.
func NewInvoker(service any, svc *model.Service) (*Invoker, error) {
	plans, err := Plans(svc)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(service)
	inv := &Invoker{
		service: rv,
		svcName: svc.Name,
		plans:   make(map[string]*Plan, len(plans)),
	}
	for _, p := range plans {
		mv := rv.MethodByName(p.GoName)
		if !mv.IsValid() {
			return nil, fmt.Errorf("service %s: no method %s for operation %q", svc.Name, p.GoName, p.Method)
		}
		want := len(p.Args)
		if p.HasContext {
			want++
		}
		if p.Async {
			want++
		}
		if mv.Type().NumIn() != want {
			return nil, fmt.Errorf("service %s: method %s takes %d argument(s), operation %q declares %d",
				svc.Name, p.GoName, mv.Type().NumIn(), p.Method, want)
		}
		inv.plans[p.Method] = p
	}
	return inv, nil
}

// Invoke executes a method from a synchronous caller. Asynchronous methods
// cannot be driven without an awaiting caller and fail with a runtime
// diagnostic instead of blocking.
func (inv *Invoker) Invoke(method string, args map[string]any, ambient *Context) (any, error) {
	p, ok := inv.plans[method]
	if !ok {
		return nil, &ErrorResponse{Code: CodeNotFound, Message: fmt.Sprintf("unknown method %q", method)}
	}
	if p.Async {
		return nil, diag.Errorf(diag.AsyncMethodOnSynchronousCaller,
			diag.Location{Service: inv.svcName, Method: method},
			"method %q is asynchronous and requires an awaiting caller", method)
	}
	return inv.call(nil, p, args, ambient)
}

// InvokeContext executes a method from an awaiting caller. It drives both
// synchronous and asynchronous methods.
func (inv *Invoker) InvokeContext(ctx context.Context, method string, args map[string]any, ambient *Context) (any, error) {
	p, ok := inv.plans[method]
	if !ok {
		return nil, &ErrorResponse{Code: CodeNotFound, Message: fmt.Sprintf("unknown method %q", method)}
	}
	return inv.call(ctx, p, args, ambient)
}

func (inv *Invoker) call(ctx context.Context, p *Plan, args map[string]any, ambient *Context) (any, error) {
	id := uuid.NewString()
	mv := inv.service.MethodByName(p.GoName)
	mt := mv.Type()

	in := make([]reflect.Value, 0, mt.NumIn())
	next := 0
	if p.Async {
		if ctx == nil {
			ctx = context.Background()
		}
		in = append(in, reflect.ValueOf(ctx))
		next++
	}
	if p.HasContext {
		if ambient == nil {
			ambient = NewContext()
		}
		in = append(in, reflect.ValueOf(ambient))
		next++
	}
	for _, arg := range p.Args {
		at := mt.In(next)
		next++
		raw, present := args[arg.Wire]
		if !present || raw == nil {
			if arg.Default != nil {
				raw = arg.Default
			} else if arg.Optional {
				in = append(in, reflect.Zero(at))
				continue
			} else {
				return nil, &ErrorResponse{
					Code:         CodeInvalidInput,
					Message:      fmt.Sprintf("missing required argument %q", arg.Wire),
					InvocationID: id,
				}
			}
		}
		v, err := coerce(raw, at)
		if err != nil {
			return nil, &ErrorResponse{
				Code:         CodeInvalidInput,
				Message:      fmt.Sprintf("argument %q: %s", arg.Wire, err),
				InvocationID: id,
			}
		}
		in = append(in, v)
	}

	out := mv.Call(in)
	return serializeResult(p, out, id)
}

// coerce converts a JSON-like value into the exact Go parameter type via a
// JSON round trip, so numeric widths and struct fields follow encoding/json
// semantics.
func coerce(raw any, t reflect.Type) (reflect.Value, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return reflect.Value{}, err
	}
	pv := reflect.New(t)
	if err := json.Unmarshal(data, pv.Interface()); err != nil {
		return reflect.Value{}, err
	}
	return pv.Elem(), nil
}

// serializeResult maps the reflected return values onto the method's return
// shape. Outcome failures become ErrorResponse values carrying the invocation
// ID; absent optionals and units serialize to nil.
func serializeResult(p *Plan, out []reflect.Value, id string) (any, error) {
	var (
		val    reflect.Value
		hasVal bool
	)
	for _, o := range out {
		if o.Type().Implements(errType) {
			if !o.IsNil() {
				return nil, asErrorResponse(o.Interface().(error), id)
			}
			continue
		}
		val, hasVal = o, true
	}

	switch p.Shape.Kind {
	case model.ShapeUnit:
		return nil, nil
	case model.ShapeOptional:
		if !hasVal || isAbsent(val) {
			return nil, nil
		}
		return toJSONValue(val.Interface())
	case model.ShapeSequence:
		if !hasVal || val.IsNil() {
			return []any{}, nil
		}
		return toJSONValue(val.Interface())
	default:
		if !hasVal {
			return nil, nil
		}
		return toJSONValue(val.Interface())
	}
}

var errType = reflect.TypeOf((*error)(nil)).Elem()

func isAbsent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func asErrorResponse(err error, id string) *ErrorResponse {
	if resp, ok := err.(*ErrorResponse); ok {
		if resp.InvocationID == "" {
			resp.InvocationID = id
		}
		return resp
	}
	name := fmt.Sprintf("%T", err)
	code := InferCode(name)
	if code == CodeInternal {
		code = InferCode(err.Error())
	}
	return &ErrorResponse{Code: code, Message: err.Error(), InvocationID: id}
}

func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}
