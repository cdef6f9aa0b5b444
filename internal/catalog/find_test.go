package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCatalogFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll("config", 0o750))
	require.NoError(t, os.WriteFile(filepath.Join("config", "catalog.yaml"), []byte("[]"), 0o600))

	found, err := FindCatalogFile("catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("config", "catalog.yaml"), found)

	require.NoError(t, os.WriteFile("catalog.yaml", []byte("[]"), 0o600))
	found, err = FindCatalogFile("catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, "catalog.yaml", found)

	abs := filepath.Join(dir, "catalog.yaml")
	found, err = FindCatalogFile(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, found)

	_, err = FindCatalogFile("nope.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = FindCatalogFile(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}
