package diag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRendering(t *testing.T) {
	e := Errorf(UnknownOverrideKey,
		Location{Service: "UserService", Method: "get_user", Param: "user_id"},
		"unknown override key %q", "vrb")
	assert.Equal(t,
		`UserService.get_user.user_id: unknown_override_key: unknown override key "vrb"`,
		e.Error())

	withHints := e.WithHints("verb", "path")
	assert.Equal(t,
		`UserService.get_user.user_id: unknown_override_key: unknown override key "vrb" (valid: verb, path)`,
		withHints.Error())
	assert.Empty(t, e.Hints, "WithHints must not mutate the receiver")
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "", Location{}.String())
	assert.Equal(t, "svc", Location{Service: "svc"}.String())
	assert.Equal(t, "svc.m", Location{Service: "svc", Method: "m"}.String())
	assert.Equal(t, "svc.m.p", Location{Service: "svc", Method: "m", Param: "p"}.String())
}

func TestList(t *testing.T) {
	var l List
	assert.True(t, l.Empty())
	require.NoError(t, l.Err())

	l.Add(nil)
	assert.True(t, l.Empty(), "nil diagnostics are ignored")

	l.Add(Errorf(InvalidSignature, Location{Service: "svc", Method: "a"}, "first"))
	l.Add(Errorf(DuplicateRouteConflict, Location{Service: "svc", Method: "b"}, "second"))

	err := l.Err()
	require.Error(t, err)
	assert.Equal(t, "svc.a: invalid_signature: first\nsvc.b: duplicate_route_conflict: second", err.Error())

	var list *List
	require.True(t, errors.As(err, &list))
	require.Len(t, list.All(), 2)
	assert.Equal(t, InvalidSignature, list.All()[0].Kind)
}

func TestListMerge(t *testing.T) {
	var a, b List
	b.Add(Errorf(SchemaMismatch, Location{Service: "svc"}, "drift"))
	a.Merge(&b)
	a.Merge(nil)
	require.Len(t, a.All(), 1)
}
