package dispatch_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/codegen"
	"goa.design/facet/decl"
	"goa.design/facet/diag"
	"goa.design/facet/dispatch"
	"goa.design/facet/model"
)

type todo struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

type notFoundError struct{ id int64 }

func (e *notFoundError) Error() string { return fmt.Sprintf("todo %d does not exist", e.id) }

// todoService is the live implementation the invoker binds to.
type todoService struct {
	lastUser string
	synced   bool
}

func (s *todoService) CreateTodo(title string, priority *int32) (todo, error) {
	if title == "" {
		return todo{}, errors.New("invalid title")
	}
	id := int64(1)
	if priority != nil {
		id = int64(*priority)
	}
	return todo{ID: id, Title: title}, nil
}

func (s *todoService) GetTodo(todoID int64) (todo, error) {
	if todoID != 1 {
		return todo{}, &notFoundError{id: todoID}
	}
	return todo{ID: 1, Title: "write tests"}, nil
}

func (s *todoService) ListTodos(limit *int64) []todo {
	if limit != nil && *limit == 0 {
		return nil
	}
	return []todo{{ID: 1, Title: "write tests"}}
}

func (s *todoService) DeleteTodo(todoID int64) error { return nil }

func (s *todoService) CreateNote(ctx *dispatch.Context, body string) todo {
	s.lastUser = ctx.UserID
	return todo{ID: 7, Title: body}
}

func (s *todoService) SyncInventory(ctx context.Context) error {
	s.synced = true
	return nil
}

func buildService(t *testing.T) *model.Service {
	t.Helper()
	mustType := func(s string) decl.TypeRef {
		ref, err := decl.ParseTypeRef(s)
		require.NoError(t, err)
		return ref
	}
	method := func(name, ret string, params ...decl.Param) decl.Method {
		return decl.Method{Name: name, Receiver: true, Return: mustType(ret), Params: params}
	}
	param := func(name, typ string) decl.Param {
		return decl.Param{Name: name, Type: mustType(typ)}
	}

	sync := method("sync_inventory", "Outcome<Unit, SyncError>")
	sync.Async = true

	svc, err := codegen.Build(decl.Service{
		Name: "TodoService",
		Methods: []decl.Method{
			method("create_todo", "Outcome<Todo, TodoError>",
				param("title", "Text"),
				param("priority", "Optional<Int32>"),
			),
			method("get_todo", "Outcome<Todo, TodoError>", param("todo_id", "Int64")),
			method("list_todos", "Sequence<Todo>", param("limit", "Optional<Int64>")),
			method("delete_todo", "Unit", param("todo_id", "Int64")),
			method("create_note", "Todo",
				param("ctx", "Context"),
				param("body", "Text"),
			),
			sync,
		},
	})
	require.NoError(t, err)
	return svc
}

func TestInvokeOutcomeSuccess(t *testing.T) {
	inv, err := dispatch.NewInvoker(&todoService{}, buildService(t))
	require.NoError(t, err)

	res, err := inv.Invoke("create_todo", map[string]any{"title": "ship it", "priority": 3}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(3), "title": "ship it"}, res)
}

func TestInvokeAbsentOptional(t *testing.T) {
	inv, err := dispatch.NewInvoker(&todoService{}, buildService(t))
	require.NoError(t, err)

	res, err := inv.Invoke("create_todo", map[string]any{"title": "ship it"}, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(1), "title": "ship it"}, res)
}

func TestInvokeMissingRequired(t *testing.T) {
	inv, err := dispatch.NewInvoker(&todoService{}, buildService(t))
	require.NoError(t, err)

	_, err = inv.Invoke("create_todo", map[string]any{"priority": 3}, nil)
	var resp *dispatch.ErrorResponse
	require.ErrorAs(t, err, &resp)
	assert.Equal(t, dispatch.CodeInvalidInput, resp.Code)
	assert.Contains(t, resp.Message, "title")
	assert.NotEmpty(t, resp.InvocationID)
}

func TestInvokeFailureClassifiedByTypeName(t *testing.T) {
	inv, err := dispatch.NewInvoker(&todoService{}, buildService(t))
	require.NoError(t, err)

	_, err = inv.Invoke("get_todo", map[string]any{"todo_id": 42}, nil)
	var resp *dispatch.ErrorResponse
	require.ErrorAs(t, err, &resp)
	assert.Equal(t, dispatch.CodeNotFound, resp.Code)
	assert.Contains(t, resp.Message, "42")
}

func TestInvokeSequence(t *testing.T) {
	inv, err := dispatch.NewInvoker(&todoService{}, buildService(t))
	require.NoError(t, err)

	res, err := inv.Invoke("list_todos", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"id": float64(1), "title": "write tests"}}, res)

	res, err = inv.Invoke("list_todos", map[string]any{"limit": 0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{}, res, "nil slices serialize as empty arrays")
}

func TestInvokeUnit(t *testing.T) {
	inv, err := dispatch.NewInvoker(&todoService{}, buildService(t))
	require.NoError(t, err)

	res, err := inv.Invoke("delete_todo", map[string]any{"todo_id": 1}, nil)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestInvokeAmbientContext(t *testing.T) {
	svc := &todoService{}
	inv, err := dispatch.NewInvoker(svc, buildService(t))
	require.NoError(t, err)

	ambient := dispatch.NewContext()
	ambient.UserID = "u-123"
	res, err := inv.Invoke("create_note", map[string]any{"body": "hello"}, ambient)
	require.NoError(t, err)
	assert.Equal(t, "u-123", svc.lastUser)
	assert.Equal(t, map[string]any{"id": float64(7), "title": "hello"}, res)
}

func TestInvokeAsyncRejectedOnSyncPath(t *testing.T) {
	svc := &todoService{}
	inv, err := dispatch.NewInvoker(svc, buildService(t))
	require.NoError(t, err)

	_, err = inv.Invoke("sync_inventory", nil, nil)
	var de *diag.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, diag.AsyncMethodOnSynchronousCaller, de.Kind)
	assert.False(t, svc.synced)

	_, err = inv.InvokeContext(context.Background(), "sync_inventory", nil, nil)
	require.NoError(t, err)
	assert.True(t, svc.synced)
}

func TestInvokeUnknownMethod(t *testing.T) {
	inv, err := dispatch.NewInvoker(&todoService{}, buildService(t))
	require.NoError(t, err)

	_, err = inv.Invoke("nope", nil, nil)
	var resp *dispatch.ErrorResponse
	require.ErrorAs(t, err, &resp)
	assert.Equal(t, dispatch.CodeNotFound, resp.Code)
}

func TestNewInvokerArityMismatch(t *testing.T) {
	svc := buildService(t)
	_, err := dispatch.NewInvoker(struct{}{}, svc)
	assert.Error(t, err, "missing methods are rejected at bind time")
}
