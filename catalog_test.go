package hvsampledata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasets(t *testing.T) {
	descs, err := Datasets()
	require.NoError(t, err)
	require.Len(t, descs, 8)

	names := make([]string, len(descs))
	for i, d := range descs {
		names[i] = d.Name
	}
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "penguins")
	assert.Contains(t, names, "air_temperature")
}

func TestDescribePenguins(t *testing.T) {
	d, err := Describe("penguins")
	require.NoError(t, err)

	assert.Equal(t, "penguins", d.Name)
	assert.Equal(t, KindTabular, d.Kind)
	assert.Equal(t, StorageBundled, d.Storage)
	assert.Equal(t, "csv", d.Format)
	assert.Equal(t, EngineGota, d.DefaultEngine)
	assert.Equal(t, []EngineID{EngineGota, EngineArrow, EngineSif, EngineDataset}, d.Engines)

	require.Len(t, d.Columns, 8)
	assert.Equal(t, Column{Name: "species", Type: ColumnString}, d.Columns[0])
	assert.Equal(t, Column{Name: "year", Type: ColumnInt}, d.Columns[7])
}

func TestDescribeRemote(t *testing.T) {
	d, err := Describe("large_timeseries")
	require.NoError(t, err)

	assert.Equal(t, StorageRemote, d.Storage)
	assert.Equal(t, "parquet", d.Format)
	assert.Equal(t, EngineArrow, d.DefaultEngine)
	assert.Contains(t, d.URL, "https://")
}

func TestDescribeNormalizesNames(t *testing.T) {
	for _, name := range []string{"Penguins", "  penguins  ", "PENGUINS"} {
		t.Run(name, func(t *testing.T) {
			d, err := Describe(name)
			require.NoError(t, err)
			assert.Equal(t, "penguins", d.Name)
		})
	}
}

func TestDescribeUnknown(t *testing.T) {
	_, err := Describe("pengiuns")
	require.Error(t, err)
	assert.True(t, IsUnknownDataset(err))

	var dsErr *Error
	require.ErrorAs(t, err, &dsErr)
	assert.Contains(t, dsErr.Allowed, "penguins")
}

func TestLookupDatasetKind(t *testing.T) {
	_, err := lookupDataset("air_temperature", KindTabular)
	require.Error(t, err)
	assert.True(t, IsUnknownDataset(err))

	var dsErr *Error
	require.ErrorAs(t, err, &dsErr)
	assert.NotContains(t, dsErr.Allowed, "air_temperature")
	assert.Contains(t, dsErr.Allowed, "penguins")

	_, err = lookupDataset("penguins", KindGridded)
	assert.True(t, IsUnknownDataset(err))
}

func TestSupportsEngine(t *testing.T) {
	d, err := Describe("penguins")
	require.NoError(t, err)

	assert.True(t, d.SupportsEngine(EngineGota))
	assert.True(t, d.SupportsEngine(EngineSif))
	assert.False(t, d.SupportsEngine(EngineNetCDF))
	assert.False(t, d.SupportsEngine(EngineImage))
}

func TestCatalogColumnNamesUnique(t *testing.T) {
	descs, err := Datasets()
	require.NoError(t, err)

	// Schema-driven engines create one column per declared name; loading
	// validates uniqueness, so a decoded catalog can never violate it.
	for _, d := range descs {
		seen := map[string]bool{}
		for _, c := range d.Columns {
			assert.False(t, seen[c.Name], "dataset %s: duplicate column %s", d.Name, c.Name)
			seen[c.Name] = true
		}
	}
}

func TestEveryCatalogEntryHasLoaders(t *testing.T) {
	descs, err := Datasets()
	require.NoError(t, err)

	for _, d := range descs {
		for _, e := range d.Engines {
			_, ok := loaders[registryKey{d.Kind, e, d.Format}]
			assert.True(t, ok, "no loader for %s via %s", d.Name, e)
		}
		assert.True(t, d.SupportsEngine(d.DefaultEngine), "default engine of %s not in engines", d.Name)
	}
}
