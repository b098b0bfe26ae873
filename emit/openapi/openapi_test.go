package openapi_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"goa.design/facet/emit/emittest"
	"goa.design/facet/emit/openapi"
)

func TestEmit(t *testing.T) {
	files, err := openapi.New().Emit(emittest.UserService(t))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "openapi.json", files[0].Path)
	assert.Equal(t, "openapi.yaml", files[1].Path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(files[0].Content, &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	paths := doc["paths"].(map[string]any)
	require.Contains(t, paths, "/users")
	require.Contains(t, paths, "/users/{user_id}")
	assert.NotContains(t, paths, "/users/{user_id}/audit", "hidden methods are not documented")

	users := paths["/users"].(map[string]any)
	post := users["post"].(map[string]any)
	assert.Equal(t, "create_user", post["operationId"])
	require.Contains(t, post, "requestBody")
	responses := post["responses"].(map[string]any)
	require.Contains(t, responses, "201")
	assert.Contains(t, responses, "default", "outcome methods document the error channel")

	get := paths["/users/{user_id}"].(map[string]any)["get"].(map[string]any)
	params := get["parameters"].([]any)
	require.Len(t, params, 1)
	p := params[0].(map[string]any)
	assert.Equal(t, "path", p["in"])
	assert.Equal(t, true, p["required"])

	var fromYAML map[string]any
	require.NoError(t, yaml.Unmarshal(files[1].Content, &fromYAML))
	assert.Equal(t, "UserService", fromYAML["info"].(map[string]any)["title"])
}

func TestEmitRejectsStreaming(t *testing.T) {
	_, err := openapi.New().Emit(emittest.FeedService(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watch_events")
	assert.Contains(t, err.Error(), "streaming_unsupported_by_backend")
}
