// Package emittest provides the shared service fixtures backend tests
// project. Fixtures run through the real model builder so emitter tests
// exercise exactly what generation produces.
package emittest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"goa.design/facet/codegen"
	"goa.design/facet/decl"
	"goa.design/facet/model"
)

// UserService builds a fixture with one method per operation kind plus a
// hidden and a suppressed method.
func UserService(t *testing.T) *model.Service {
	t.Helper()
	svc, err := codegen.Build(decl.Service{
		Name: "UserService",
		Methods: []decl.Method{
			{
				Name: "create_user", Receiver: true, Doc: "Register a new user.",
				Return: ref(t, "Outcome<User, UserError>"),
				Params: []decl.Param{
					{Name: "name", Type: ref(t, "Text")},
					{Name: "email", Type: ref(t, "Text")},
				},
			},
			{
				Name: "get_user", Receiver: true, Doc: "Look up one user.",
				Return: ref(t, "Optional<User>"),
				Params: []decl.Param{{Name: "user_id", Type: ref(t, "Int64")}},
			},
			{
				Name: "list_users", Receiver: true,
				Return: ref(t, "Sequence<User>"),
				Params: []decl.Param{{
					Name: "limit", Type: ref(t, "Optional<Int32>"),
					Overrides: map[string]any{decl.OverrideDefault: 20},
				}},
			},
			{
				Name: "delete_user", Receiver: true,
				Return: ref(t, "Unit"),
				Params: []decl.Param{{Name: "user_id", Type: ref(t, "Int64")}},
			},
			{
				Name: "audit_user", Receiver: true,
				Return:    ref(t, "AuditRecord"),
				Params:    []decl.Param{{Name: "user_id", Type: ref(t, "Int64")}},
				Overrides: map[string]any{decl.OverrideVisibility: "hidden", decl.OverridePath: "/users/{user_id}/audit"},
			},
			{
				Name: "purge_user", Receiver: true,
				Return:    ref(t, "Unit"),
				Params:    []decl.Param{{Name: "user_id", Type: ref(t, "Int64")}},
				Overrides: map[string]any{decl.OverrideVisibility: "suppressed"},
			},
		},
	})
	require.NoError(t, err)
	return svc
}

// FeedService builds a fixture with one streaming method and one plain
// lookup.
func FeedService(t *testing.T) *model.Service {
	t.Helper()
	svc, err := codegen.Build(decl.Service{
		Name: "FeedService",
		Methods: []decl.Method{
			{
				Name: "watch_events", Receiver: true, Doc: "Follow the event feed.",
				Return: ref(t, "Stream<Event>"),
				Params: []decl.Param{{Name: "topic", Type: ref(t, "Text")}},
			},
			{
				Name: "get_event", Receiver: true,
				Return: ref(t, "Event"),
				Params: []decl.Param{{Name: "event_id", Type: ref(t, "Int64")}},
			},
		},
	})
	require.NoError(t, err)
	return svc
}

func ref(t *testing.T, s string) decl.TypeRef {
	t.Helper()
	r, err := decl.ParseTypeRef(s)
	require.NoError(t, err)
	return r
}
