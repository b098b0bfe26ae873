package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeHTTPStatus(t *testing.T) {
	assert.Equal(t, 400, CodeInvalidInput.HTTPStatus())
	assert.Equal(t, 404, CodeNotFound.HTTPStatus())
	assert.Equal(t, 409, CodeConflict.HTTPStatus())
	assert.Equal(t, 429, CodeRateLimited.HTTPStatus())
	assert.Equal(t, 500, CodeInternal.HTTPStatus())
	assert.Equal(t, 503, CodeUnavailable.HTTPStatus())
}

func TestErrorCodeExitCode(t *testing.T) {
	assert.Equal(t, 1, CodeNotFound.ExitCode())
	assert.Equal(t, 2, CodeInvalidInput.ExitCode())
	assert.Equal(t, 3, CodeUnauthenticated.ExitCode())
	assert.Equal(t, 3, CodeForbidden.ExitCode())
	assert.Equal(t, 4, CodeConflict.ExitCode())
	assert.Equal(t, 5, CodeRateLimited.ExitCode())
	assert.Equal(t, 1, CodeInternal.ExitCode())
}

func TestErrorCodeGRPCCode(t *testing.T) {
	assert.Equal(t, "INVALID_ARGUMENT", CodeInvalidInput.GRPCCode())
	assert.Equal(t, "PERMISSION_DENIED", CodeForbidden.GRPCCode())
	assert.Equal(t, "RESOURCE_EXHAUSTED", CodeRateLimited.GRPCCode())
	assert.Equal(t, "INTERNAL", CodeInternal.GRPCCode())
}

func TestInferCode(t *testing.T) {
	assert.Equal(t, CodeNotFound, InferCode("UserNotFoundError"))
	assert.Equal(t, CodeInvalidInput, InferCode("ValidationFailure"))
	assert.Equal(t, CodeConflict, InferCode("AlreadyExists"))
	assert.Equal(t, CodeRateLimited, InferCode("RateLimitExceeded"))
	assert.Equal(t, CodeForbidden, InferCode("PermissionDenied"))
	assert.Equal(t, CodeInternal, InferCode("SomethingBroke"))
}
