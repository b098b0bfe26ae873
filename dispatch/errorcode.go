package dispatch

import (
	"fmt"
	"strings"
)

// ErrorCode is a protocol-agnostic failure category that maps onto an HTTP
// status, a CLI exit code and a gRPC status name. Failure values crossing a
// dispatch boundary are classified into one of these codes, by convention
// from the failure type's name when no explicit mapping exists.
type ErrorCode string

const (
	CodeInvalidInput       ErrorCode = "INVALID_INPUT"
	CodeUnauthenticated    ErrorCode = "UNAUTHENTICATED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeNotFound           ErrorCode = "NOT_FOUND"
	CodeConflict           ErrorCode = "CONFLICT"
	CodeFailedPrecondition ErrorCode = "FAILED_PRECONDITION"
	CodeRateLimited        ErrorCode = "RATE_LIMITED"
	CodeInternal           ErrorCode = "INTERNAL"
	CodeNotImplemented     ErrorCode = "NOT_IMPLEMENTED"
	CodeUnavailable        ErrorCode = "UNAVAILABLE"
)

// HTTPStatus returns the HTTP response status for the code.
func (c ErrorCode) HTTPStatus() int {
	switch c {
	case CodeInvalidInput:
		return 400
	case CodeUnauthenticated:
		return 401
	case CodeForbidden:
		return 403
	case CodeNotFound:
		return 404
	case CodeConflict:
		return 409
	case CodeFailedPrecondition:
		return 422
	case CodeRateLimited:
		return 429
	case CodeNotImplemented:
		return 501
	case CodeUnavailable:
		return 503
	default:
		return 500
	}
}

// ExitCode returns the CLI process exit code for the code.
func (c ErrorCode) ExitCode() int {
	switch c {
	case CodeNotFound:
		return 1
	case CodeInvalidInput:
		return 2
	case CodeUnauthenticated, CodeForbidden:
		return 3
	case CodeConflict, CodeFailedPrecondition:
		return 4
	case CodeRateLimited:
		return 5
	default:
		return 1
	}
}

// GRPCCode returns the gRPC status code name for the code.
func (c ErrorCode) GRPCCode() string {
	switch c {
	case CodeInvalidInput:
		return "INVALID_ARGUMENT"
	case CodeUnauthenticated:
		return "UNAUTHENTICATED"
	case CodeForbidden:
		return "PERMISSION_DENIED"
	case CodeNotFound:
		return "NOT_FOUND"
	case CodeConflict:
		return "ALREADY_EXISTS"
	case CodeFailedPrecondition:
		return "FAILED_PRECONDITION"
	case CodeRateLimited:
		return "RESOURCE_EXHAUSTED"
	case CodeNotImplemented:
		return "UNIMPLEMENTED"
	case CodeUnavailable:
		return "UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

// InferCode classifies a failure by its type or variant name. The match is
// substring based over the lowercased name, most specific first.
func InferCode(name string) ErrorCode {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "notfound"), strings.Contains(n, "not_found"), strings.Contains(n, "missing"):
		return CodeNotFound
	case strings.Contains(n, "invalid"), strings.Contains(n, "validation"), strings.Contains(n, "parse"):
		return CodeInvalidInput
	case strings.Contains(n, "unauthorized"), strings.Contains(n, "unauthenticated"):
		return CodeUnauthenticated
	case strings.Contains(n, "forbidden"), strings.Contains(n, "permission"), strings.Contains(n, "denied"):
		return CodeForbidden
	case strings.Contains(n, "conflict"), strings.Contains(n, "exists"), strings.Contains(n, "duplicate"):
		return CodeConflict
	case strings.Contains(n, "ratelimit"), strings.Contains(n, "rate_limit"), strings.Contains(n, "throttle"):
		return CodeRateLimited
	case strings.Contains(n, "unavailable"), strings.Contains(n, "temporarily"):
		return CodeUnavailable
	case strings.Contains(n, "unimplemented"), strings.Contains(n, "not_implemented"):
		return CodeNotImplemented
	default:
		return CodeInternal
	}
}

// ErrorResponse is the serialized form of a dispatch failure.
type ErrorResponse struct {
	Code         ErrorCode `json:"code"`
	Message      string    `json:"message"`
	InvocationID string    `json:"invocation_id,omitempty"`
}

// Error implements error.
func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
