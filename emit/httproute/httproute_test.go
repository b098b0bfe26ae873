package httproute_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/emit/emittest"
	"goa.design/facet/emit/httproute"
)

func TestEmit(t *testing.T) {
	files, err := httproute.New().Emit(emittest.UserService(t))
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "routes.json", files[0].Path)

	var doc struct {
		Service string            `json:"service"`
		Routes  []httproute.Route `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(files[0].Content, &doc))
	assert.Equal(t, "UserService", doc.Service)
	require.Len(t, doc.Routes, 5, "suppressed methods do not route")

	create := doc.Routes[0]
	assert.Equal(t, "POST", create.Verb)
	assert.Equal(t, "/users", create.Path)
	assert.Equal(t, 201, create.Status)
	require.Len(t, create.Params, 2)
	assert.Equal(t, "body", create.Params[0].In)

	get := doc.Routes[1]
	assert.Equal(t, "GET /users/{user_id}", get.Verb+" "+get.Path)
	assert.Equal(t, "path", get.Params[0].In)
	assert.True(t, get.Params[0].Required)

	list := doc.Routes[2]
	assert.Equal(t, float64(20), list.Params[0].Default)
	assert.False(t, list.Params[0].Required)

	del := doc.Routes[3]
	assert.Equal(t, 204, del.Status)

	audit := doc.Routes[4]
	assert.Equal(t, "/users/{user_id}/audit", audit.Path)
	assert.True(t, audit.Overridden)
}

func TestEmitStreaming(t *testing.T) {
	files, err := httproute.New().Emit(emittest.FeedService(t))
	require.NoError(t, err)

	var doc struct {
		Routes []httproute.Route `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(files[0].Content, &doc))
	watch := doc.Routes[0]
	assert.True(t, watch.Streaming)
	assert.Equal(t, "text/event-stream", watch.Content)
}
