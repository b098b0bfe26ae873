package cli_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/dispatch"
	"goa.design/facet/emit/cli"
	"goa.design/facet/emit/emittest"
)

type user struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type userImpl struct{}

func (userImpl) CreateUser(name, email string) (user, error) {
	return user{ID: 1, Name: name}, nil
}

func (userImpl) GetUser(userID int64) *user {
	if userID != 7 {
		return nil
	}
	return &user{ID: 7, Name: "ada"}
}

func (userImpl) ListUsers(limit *int32) []user {
	n := int(*limit)
	users := make([]user, 0, n)
	for i := 0; i < n; i++ {
		users = append(users, user{ID: int64(i + 1), Name: "u"})
	}
	return users
}

func (userImpl) DeleteUser(userID int64) error { return nil }

func (userImpl) AuditUser(userID int64) map[string]any {
	return map[string]any{"user_id": userID}
}

func TestEmitGrammar(t *testing.T) {
	svc := emittest.UserService(t)
	files, err := cli.New().Emit(svc)
	require.NoError(t, err)
	require.Len(t, files, 1)

	var doc struct {
		Program  string        `json:"program"`
		Commands []cli.Command `json:"commands"`
	}
	require.NoError(t, json.Unmarshal(files[0].Content, &doc))
	assert.Equal(t, "user-service", doc.Program)
	require.Len(t, doc.Commands, 5, "suppressed methods have no subcommand")

	create := doc.Commands[0]
	assert.Equal(t, "create-user", create.Name)
	require.Len(t, create.Positionals, 2)
	assert.Empty(t, create.Flags)

	list := doc.Commands[2]
	assert.Equal(t, "list-users", list.Name)
	assert.Empty(t, list.Positionals)
	require.Len(t, list.Flags, 1)
	assert.Equal(t, "limit", list.Flags[0].Name)

	audit := doc.Commands[4]
	assert.True(t, audit.Hidden)
}

func TestBuildCommandDispatch(t *testing.T) {
	svc := emittest.UserService(t)
	inv, err := dispatch.NewInvoker(userImpl{}, svc)
	require.NoError(t, err)

	root := cli.BuildCommand(svc, inv)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"get-user", "7"})
	require.NoError(t, root.Execute())

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "ada", got["name"])
}

func TestBuildCommandFlagDefault(t *testing.T) {
	svc := emittest.UserService(t)
	inv, err := dispatch.NewInvoker(userImpl{}, svc)
	require.NoError(t, err)

	root := cli.BuildCommand(svc, inv)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list-users"})
	require.NoError(t, root.Execute())

	var got []any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got, 20, "absent flag falls back to the declared default")
}

func TestBuildCommandFlagOverride(t *testing.T) {
	svc := emittest.UserService(t)
	inv, err := dispatch.NewInvoker(userImpl{}, svc)
	require.NoError(t, err)

	root := cli.BuildCommand(svc, inv)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"list-users", "--limit", "2"})
	require.NoError(t, root.Execute())

	var got []any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, cli.ExitCode(nil))
	assert.Equal(t, 2, cli.ExitCode(&dispatch.ErrorResponse{Code: dispatch.CodeInvalidInput}))
	assert.Equal(t, 1, cli.ExitCode(assert.AnError))
}
