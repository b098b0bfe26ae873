package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/emit/emittest"
	"goa.design/facet/emit/markdown"
)

func TestEmit(t *testing.T) {
	files, err := markdown.New().Emit(emittest.UserService(t))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "API.md", files[0].Path)

	out := string(files[0].Content)
	assert.Contains(t, out, "# UserService API")
	assert.Contains(t, out, "## create_user")
	assert.Contains(t, out, "Register a new user.")
	assert.Contains(t, out, "`POST /users`")
	assert.Contains(t, out, "| `user_id` | path | `Int64` | yes | - |")
	assert.Contains(t, out, "Returns: `User` on success, `UserError` on failure")
	assert.Contains(t, out, "CLI: `create-user`")
	assert.NotContains(t, out, "audit_user", "hidden methods are not documented")
}

func TestEmitStreaming(t *testing.T) {
	files, err := markdown.New().Emit(emittest.FeedService(t))
	require.NoError(t, err)

	out := string(files[0].Content)
	assert.Contains(t, out, "lazy event stream")
	assert.Contains(t, out, "Returns: a stream of `Event`")
}
