package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goa.design/facet/emit/all"
	"goa.design/facet/emit/emittest"
)

func TestEmittersAreUniqueAndComplete(t *testing.T) {
	names := all.Names()
	assert.Len(t, names, 13)
	seen := make(map[string]struct{})
	for _, n := range names {
		_, dup := seen[n]
		assert.False(t, dup, "duplicate backend name %s", n)
		seen[n] = struct{}{}
	}
}

func TestSelect(t *testing.T) {
	es, err := all.Select("")
	require.NoError(t, err)
	assert.Len(t, es, 13)

	es, err = all.Select("openapi, cli")
	require.NoError(t, err)
	require.Len(t, es, 2)
	assert.Equal(t, "openapi", es[0].Name())
	assert.Equal(t, "cli", es[1].Name())

	_, err = all.Select("nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openapi")
}

func TestEveryBackendEmits(t *testing.T) {
	svc := emittest.UserService(t)
	for _, e := range all.Emitters() {
		t.Run(e.Name(), func(t *testing.T) {
			files, err := e.Emit(svc)
			require.NoError(t, err)
			assert.NotEmpty(t, files)
			for _, f := range files {
				assert.NotEmpty(t, f.Content)
			}
		})
	}
}
