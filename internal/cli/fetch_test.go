package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchBundled(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", cache)

	out, err := execute(t, "fetch", "penguins")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(cache, "penguins.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "species,island,"))
}

func TestFetchGenerated(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", cache)

	out, err := execute(t, "fetch", "synthetic_clusters", "--total-points", "50")
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 51) // header + 50 rows
}

func TestFetchGeneratedBadTotalPoints(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	out, err := execute(t, "fetch", "synthetic_clusters", "--total-points", "7")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "INCOMPATIBLE_OPTIONS")
}

func TestFetchMultiple(t *testing.T) {
	cache := t.TempDir()
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", cache)

	out, err := execute(t, "fetch", "penguins", "stocks")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, filepath.Join(cache, "penguins.csv"), lines[0])
	assert.Equal(t, filepath.Join(cache, "stocks.csv"), lines[1])
}

func TestFetchNoArgs(t *testing.T) {
	_, err := execute(t, "fetch")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFetchAllConflictsWithNames(t *testing.T) {
	_, err := execute(t, "fetch", "penguins", "--all")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestFetchTotalPointsOnBundled(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	_, err := execute(t, "fetch", "penguins", "--total-points", "50")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
