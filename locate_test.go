package hvsampledata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateBundledMaterializes(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", cache)

	d, err := Describe("penguins")
	require.NoError(t, err)

	path, err := locate(context.Background(), d, 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, "penguins.csv"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestLocateBundledCacheHit(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", cache)

	d, err := Describe("penguins")
	require.NoError(t, err)

	path, err := locate(context.Background(), d, 0)
	require.NoError(t, err)

	// An existing file is trusted as-is; presence is the only cache check.
	require.NoError(t, os.WriteFile(path, []byte("sentinel"), 0o644))

	again, err := locate(context.Background(), d, 0)
	require.NoError(t, err)
	assert.Equal(t, path, again)

	data, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", string(data))
}

func TestLocateLeavesNoTempFiles(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", cache)

	d, err := Describe("penguins")
	require.NoError(t, err)
	_, err = locate(context.Background(), d, 0)
	require.NoError(t, err)

	entries, err := os.ReadDir(cache)
	require.NoError(t, err)
	for _, e := range entries {
		assert.NotContains(t, e.Name(), ".tmp")
	}
}

func TestRemoteLocation(t *testing.T) {
	d := Descriptor{
		Name: "airplane",
		URL:  "https://datasets.holoviz.org/airplane/v1/airplane90.tif",
	}

	raw, rel, err := remoteLocation(d, "")
	require.NoError(t, err)
	assert.Equal(t, d.URL, raw)
	assert.Equal(t, "airplane/v1/airplane90.tif", rel)

	raw, rel, err = remoteLocation(d, "http://127.0.0.1:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/airplane/v1/airplane90.tif", raw)
	assert.Equal(t, "airplane/v1/airplane90.tif", rel)
}

func TestWriteAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.csv")

	require.NoError(t, writeAtomic(path, []byte("a,b\n1,2\n")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
