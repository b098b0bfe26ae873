package diag

import (
	"fmt"
	"strings"
)

type (
	// Kind identifies a class of generation diagnostic. Every error produced
	// while building or validating a service model carries exactly one Kind so
	// callers can react programmatically and tests can assert on failure modes.
	Kind string

	// Location names the construct a diagnostic refers to. Fields are filled
	// outermost-in; an empty Param means the diagnostic applies to the whole
	// method, an empty Method to the whole service block.
	Location struct {
		Service string
		Method  string
		Param   string
	}

	// Error is a single generation diagnostic. Hints, when present, list the
	// valid alternatives for the offending input (recognized override keys,
	// conflicting method names, missing schema lines).
	Error struct {
		Kind     Kind
		Location Location
		Message  string
		Hints    []string
	}

	// List accumulates independent diagnostics for one service block so a
	// failing build reports everything it can detect in a single pass.
	List struct {
		errs []*Error
	}
)

const (
	// InvalidSignature reports a method or parameter declaration the capture
	// step cannot represent (non-identifier parameter name, malformed type).
	InvalidSignature Kind = "invalid_signature"
	// UnknownOverrideKey reports an override map entry whose key is not
	// recognized at that level.
	UnknownOverrideKey Kind = "unknown_override_key"
	// DuplicateRouteConflict reports two methods resolving to the same
	// (verb, path) route without a disambiguating override.
	DuplicateRouteConflict Kind = "duplicate_route_conflict"
	// ContextCollision is reserved for future context-resolution diagnostics;
	// the resolver currently settles collisions silently.
	ContextCollision Kind = "context_collision"
	// MalformedPathTemplate reports a path override that fails structural
	// validation.
	MalformedPathTemplate Kind = "malformed_path_template"
	// SchemaMismatch reports drift between a previously emitted schema
	// artifact and the one the current model generates.
	SchemaMismatch Kind = "schema_mismatch"
	// StreamingUnsupportedByBackend reports a streaming method handed to a
	// backend that did not declare streaming support.
	StreamingUnsupportedByBackend Kind = "streaming_unsupported_by_backend"
	// AsyncMethodOnSynchronousCaller reports an asynchronous method invoked
	// through the synchronous dispatch path. Unlike the other kinds this is a
	// runtime condition, not a generation-time one.
	AsyncMethodOnSynchronousCaller Kind = "async_method_on_synchronous_caller"
)

// Errorf builds a diagnostic with a formatted message and no hints.
func Errorf(kind Kind, loc Location, format string, args ...any) *Error {
	return &Error{Kind: kind, Location: loc, Message: fmt.Sprintf(format, args...)}
}

// WithHints returns a copy of e carrying the given hint values.
func (e *Error) WithHints(hints ...string) *Error {
	dup := *e
	dup.Hints = append([]string(nil), hints...)
	return &dup
}

// Error renders the diagnostic as "location: kind: message (valid: a, b)".
func (e *Error) Error() string {
	var b strings.Builder
	if loc := e.Location.String(); loc != "" {
		b.WriteString(loc)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))
	b.WriteString(": ")
	b.WriteString(e.Message)
	if len(e.Hints) > 0 {
		b.WriteString(" (valid: ")
		b.WriteString(strings.Join(e.Hints, ", "))
		b.WriteString(")")
	}
	return b.String()
}

// String renders the location as "service.method.param" with empty trailing
// segments omitted.
func (l Location) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Service, l.Method, l.Param} {
		if p == "" {
			break
		}
		parts = append(parts, p)
	}
	return strings.Join(parts, ".")
}

// Add appends diagnostics to the list, ignoring nils.
func (l *List) Add(errs ...*Error) {
	for _, e := range errs {
		if e != nil {
			l.errs = append(l.errs, e)
		}
	}
}

// Merge appends every diagnostic from other.
func (l *List) Merge(other *List) {
	if other != nil {
		l.errs = append(l.errs, other.errs...)
	}
}

// Empty reports whether the list holds no diagnostics.
func (l *List) Empty() bool { return l == nil || len(l.errs) == 0 }

// All returns the accumulated diagnostics in insertion order.
func (l *List) All() []*Error {
	if l == nil {
		return nil
	}
	return l.errs
}

// Err returns the list as an error, or nil when empty. The returned error is
// the list itself so callers can recover individual diagnostics with
// errors.As.
func (l *List) Err() error {
	if l.Empty() {
		return nil
	}
	return l
}

// Error joins every diagnostic message with newlines.
func (l *List) Error() string {
	msgs := make([]string, len(l.errs))
	for i, e := range l.errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}
