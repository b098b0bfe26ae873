package dispatch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/codegen"
	"goa.design/facet/decl"
	"goa.design/facet/diag"
	"goa.design/facet/dispatch"
	"goa.design/facet/model"
)

func TestPlanFor(t *testing.T) {
	svc := buildService(t)

	var create *model.Method
	for _, m := range svc.Methods {
		if m.Name == "create_todo" {
			create = m
		}
	}
	require.NotNil(t, create)

	p, derr := dispatch.PlanFor(svc, create)
	require.Nil(t, derr)
	assert.Equal(t, "CreateTodo", p.GoName)
	assert.False(t, p.Async)
	assert.False(t, p.HasContext)
	require.Len(t, p.Args, 2)
	assert.Equal(t, "title", p.Args[0].Wire)
	assert.Equal(t, "string", p.Args[0].JSONType)
	assert.False(t, p.Args[0].Optional)
	assert.Equal(t, "integer", p.Args[1].JSONType)
	assert.True(t, p.Args[1].Optional)
	assert.Equal(t, model.ShapeOutcome, p.Shape.Kind)
}

func TestPlansRejectStreaming(t *testing.T) {
	ret, err := decl.ParseTypeRef("Stream<Event>")
	require.NoError(t, err)
	svc, err := codegen.Build(decl.Service{
		Name:    "FeedService",
		Methods: []decl.Method{{Name: "watch_events", Receiver: true, Return: ret}},
	})
	require.NoError(t, err)

	_, err = dispatch.Plans(svc)
	require.Error(t, err)
	var list *diag.List
	require.ErrorAs(t, err, &list)
	assert.Equal(t, diag.StreamingUnsupportedByBackend, list.All()[0].Kind)
	assert.Contains(t, err.Error(), "watch_events")
}

func TestPlansSkipSuppressed(t *testing.T) {
	ret, err := decl.ParseTypeRef("Text")
	require.NoError(t, err)
	svc, err := codegen.Build(decl.Service{
		Name: "Svc",
		Methods: []decl.Method{
			{Name: "get_thing", Receiver: true, Return: ret,
				Params:    []decl.Param{{Name: "thing_id", Type: mustRef(t, "Int64")}},
				Overrides: map[string]any{decl.OverrideVisibility: "suppressed"}},
			{Name: "list_things", Receiver: true, Return: ret},
		},
	})
	require.NoError(t, err)

	plans, perr := dispatch.Plans(svc)
	require.NoError(t, perr)
	require.Len(t, plans, 1)
	assert.Equal(t, "list_things", plans[0].Method)
}

func mustRef(t *testing.T, s string) decl.TypeRef {
	t.Helper()
	ref, err := decl.ParseTypeRef(s)
	require.NoError(t, err)
	return ref
}
