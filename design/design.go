// Package design is the Go front end for declaring services: a small
// closure-based DSL that assembles the same declaration records the YAML
// manifest produces. It is meant for generators written as Go programs;
// misuse (a Param outside a Method, an unparsable type) panics with the
// offending expression, matching how design-time errors surface in
// generators.
package design

import (
	"fmt"

	"goa.design/facet/decl"
)

var (
	curService *decl.Service
	curMethod  *decl.Method
	curParam   *decl.Param
)

// Service declares one service block and returns the assembled declaration.
func Service(name string, fn func()) decl.Service {
	if curService != nil {
		panic("design: nested Service declarations")
	}
	curService = &decl.Service{Name: name}
	defer func() { curService = nil }()
	fn()
	return *curService
}

// Prefix sets the route prefix for every method of the service.
func Prefix(p string) {
	inService("Prefix")
	curService.Prefix = p
}

// Method declares one method. The body declares parameters, the return type
// and overrides.
func Method(name string, fn func()) {
	inService("Method")
	if curMethod != nil {
		panic("design: nested Method declarations")
	}
	curMethod = &decl.Method{Name: name, Receiver: true}
	defer func() {
		curService.Methods = append(curService.Methods, *curMethod)
		curMethod = nil
	}()
	fn()
}

// Static marks the method as receiver-less, excluding it from the model.
func Static() {
	inMethod("Static")
	curMethod.Receiver = false
}

// Async marks the method as asynchronous.
func Async() {
	inMethod("Async")
	curMethod.Async = true
}

// Doc attaches documentation to the enclosing method.
func Doc(s string) {
	inMethod("Doc")
	curMethod.Doc = s
}

// Returns sets the method return type from its textual form.
func Returns(typ string) {
	inMethod("Returns")
	curMethod.Return = mustType(typ)
}

// Param declares one parameter. The optional body sets parameter overrides.
func Param(name, typ string, fn ...func()) {
	inMethod("Param")
	if curParam != nil {
		panic("design: nested Param declarations")
	}
	curParam = &decl.Param{Name: name, Type: mustType(typ)}
	defer func() {
		curMethod.Params = append(curMethod.Params, *curParam)
		curParam = nil
	}()
	for _, f := range fn {
		f()
	}
}

// Override sets a raw override key on the innermost declaration: the
// parameter inside a Param body, the method otherwise.
func Override(key string, value any) {
	if curParam != nil {
		if curParam.Overrides == nil {
			curParam.Overrides = make(map[string]any)
		}
		curParam.Overrides[key] = value
		return
	}
	inMethod("Override")
	if curMethod.Overrides == nil {
		curMethod.Overrides = make(map[string]any)
	}
	curMethod.Overrides[key] = value
}

// Verb overrides the HTTP verb.
func Verb(v string) { Override(decl.OverrideVerb, v) }

// Path overrides the path template.
func Path(p string) { Override(decl.OverridePath, p) }

// Visibility overrides backend exposure: "normal", "suppressed" or "hidden".
func Visibility(v string) { Override(decl.OverrideVisibility, v) }

// StatusCode overrides the HTTP success status.
func StatusCode(code int) { Override(decl.OverrideStatusCode, code) }

// ContentType overrides the response content type.
func ContentType(ct string) { Override(decl.OverrideContentType, ct) }

// Headers adds extra response headers.
func Headers(h map[string]string) { Override(decl.OverrideHeaders, h) }

// Role overrides the parameter's transport role: "path", "query", "header",
// "body" or "context".
func Role(r string) { Override(decl.OverrideRole, r) }

// WireName overrides the parameter's externally visible name.
func WireName(n string) { Override(decl.OverrideWireName, n) }

// Default sets the parameter's default value.
func Default(v any) { Override(decl.OverrideDefault, v) }

func inService(op string) {
	if curService == nil {
		panic(fmt.Sprintf("design: %s used outside a Service declaration", op))
	}
}

func inMethod(op string) {
	if curMethod == nil {
		panic(fmt.Sprintf("design: %s used outside a Method declaration", op))
	}
}

func mustType(typ string) decl.TypeRef {
	if typ == "" {
		return decl.TypeRef{}
	}
	t, err := decl.ParseTypeRef(typ)
	if err != nil {
		panic(fmt.Sprintf("design: invalid type %q: %s", typ, err))
	}
	return t
}
