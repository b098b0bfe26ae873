// Package dispatch implements the generic remote-procedure dispatch logic
// shared by every JSON-style backend: per-parameter extraction from a
// JSON-like value, method invocation on a live service value, and
// serialization of each return shape back to a JSON-like value.
//
// Generation-time consumers use Plans to obtain the per-method extraction
// tables; request-time consumers use Invoker to execute them. The model is
// read-only throughout; an Invoker never mutates the descriptor it was built
// from.
package dispatch
