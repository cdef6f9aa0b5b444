package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedLoader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- name: Spotify\n  price: 20000\n"), 0o600))

	loader := NewCachedLoader(NewLoader(nil), time.Minute)

	first, err := loader.Load(path)
	require.NoError(t, err)
	require.Len(t, first.Catalog, 1)
	assert.Equal(t, 1, loader.Len())

	second, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	require.NoError(t, os.WriteFile(path, []byte("- name: Spotify\n  price: 20000\n- name: Netflix\n  price: 30000\n"), 0o600))
	third, err := loader.Load(path)
	require.NoError(t, err)
	assert.Len(t, third.Catalog, 2)

	loader.Invalidate(path)
	assert.Equal(t, 0, loader.Len())
}

func TestCachedLoader_Errors(t *testing.T) {
	loader := NewCachedLoader(nil, 0)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Equal(t, 0, loader.Len())
}
