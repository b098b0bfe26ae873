package jsonrpc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/emit/emittest"
	"goa.design/facet/emit/jsonrpc"
)

func TestEmit(t *testing.T) {
	files, err := jsonrpc.New().Emit(emittest.UserService(t))
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "jsonrpc.json", files[0].Path)
	assert.Equal(t, "openrpc.json", files[1].Path)

	var table struct {
		Service string `json:"service"`
		Methods []struct {
			Method string `json:"Method"`
			GoName string `json:"GoName"`
		} `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(files[0].Content, &table))
	require.Len(t, table.Methods, 5)
	assert.Equal(t, "create_user", table.Methods[0].Method)
	assert.Equal(t, "CreateUser", table.Methods[0].GoName)

	var openrpc map[string]any
	require.NoError(t, json.Unmarshal(files[1].Content, &openrpc))
	assert.Equal(t, "1.2.6", openrpc["openrpc"])
	methods := openrpc["methods"].([]any)
	require.Len(t, methods, 4, "openrpc documents only visible methods")
	first := methods[0].(map[string]any)
	assert.Equal(t, "create_user", first["name"])
	assert.Equal(t, "by-name", first["paramStructure"])
}

func TestEmitRejectsStreaming(t *testing.T) {
	_, err := jsonrpc.New().Emit(emittest.FeedService(t))
	assert.Error(t, err)
}
