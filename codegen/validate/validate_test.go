package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/diag"
	"goa.design/facet/model"
)

func TestPathTemplate(t *testing.T) {
	loc := diag.Location{Service: "svc", Method: "m"}

	valid := []string{"/", "/users", "/users/{id}", "/a/{x}/b/{y}", "/users/{user-id}"}
	for _, p := range valid {
		t.Run("valid "+p, func(t *testing.T) {
			assert.Nil(t, PathTemplate(p, loc))
		})
	}

	invalid := []string{
		"users",
		"/users//x",
		"/users/",
		"/users/{id",
		"/users/{}",
		"/users/{id}/{id}",
		"/users/v{id}",
		"/users/{a b}",
	}
	for _, p := range invalid {
		t.Run("invalid "+p, func(t *testing.T) {
			err := PathTemplate(p, loc)
			require.NotNil(t, err)
			assert.Equal(t, diag.MalformedPathTemplate, err.Kind)
		})
	}
}

func TestRoutes(t *testing.T) {
	svc := &model.Service{
		Name: "ItemService",
		Methods: []*model.Method{
			{Name: "get_item", Op: model.Operation{Verb: "GET", Path: "/items/{id}"}, Visibility: model.VisibilityNormal},
			{Name: "fetch_item", Op: model.Operation{Verb: "GET", Path: "/items/{item_id}"}, Visibility: model.VisibilityNormal},
			{Name: "delete_item", Op: model.Operation{Verb: "DELETE", Path: "/items/{id}"}, Visibility: model.VisibilityNormal},
		},
	}
	var errs diag.List
	Routes(svc, &errs)
	require.Len(t, errs.All(), 1, "slot names do not disambiguate, verbs do")
	e := errs.All()[0]
	assert.Equal(t, diag.DuplicateRouteConflict, e.Kind)
	assert.Equal(t, []string{"get_item", "fetch_item"}, e.Hints)
}

func TestRoutesSuppressedExempt(t *testing.T) {
	svc := &model.Service{
		Name: "ItemService",
		Methods: []*model.Method{
			{Name: "get_item", Op: model.Operation{Verb: "GET", Path: "/items/{id}"}, Visibility: model.VisibilityNormal},
			{Name: "fetch_item", Op: model.Operation{Verb: "GET", Path: "/items/{id}"}, Visibility: model.VisibilitySuppressed},
		},
	}
	var errs diag.List
	Routes(svc, &errs)
	assert.True(t, errs.Empty())
}

func TestSchemaDiff(t *testing.T) {
	loc := diag.Location{Service: "svc"}
	expected := "a\nb\nc\n"

	assert.Nil(t, SchemaDiff("smithy", expected, "c\nb\na", loc), "comparison is order-insensitive")

	err := SchemaDiff("smithy", expected, "a\nb\nd", loc)
	require.NotNil(t, err)
	assert.Equal(t, diag.SchemaMismatch, err.Kind)
	assert.Equal(t, []string{"missing: c", "extra: d"}, err.Hints)
}
