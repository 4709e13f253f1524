package hvsampledata

import (
	"context"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPenguinsGota(t *testing.T, opts ...Option) dataframe.DataFrame {
	t.Helper()
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := Penguins(context.Background(), opts...)
	require.NoError(t, err)

	df, ok := res.(dataframe.DataFrame)
	require.True(t, ok, "got %T", res)
	return df
}

func TestGotaPenguinsShape(t *testing.T) {
	df := loadPenguinsGota(t)

	assert.Equal(t, 344, df.Nrow())
	assert.Equal(t, 8, df.Ncol())
	assert.Equal(t, []string{
		"species", "island", "bill_length_mm", "bill_depth_mm",
		"flipper_length_mm", "body_mass_g", "sex", "year",
	}, df.Names())
}

func TestGotaMissingValues(t *testing.T) {
	df := loadPenguinsGota(t)

	// NA cells in the source must come through as missing, not as the
	// literal string "NA".
	assert.True(t, df.Col("sex").HasNaN())
	assert.True(t, df.Col("bill_length_mm").HasNaN())
}

func TestGotaEarthquakes(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := Earthquakes(context.Background())
	require.NoError(t, err)

	df := res.(dataframe.DataFrame)
	assert.Equal(t, 8, df.Ncol())
	assert.Positive(t, df.Nrow())

	classes := map[string]bool{}
	for _, v := range df.Col("mag_class").Records() {
		classes[v] = true
	}
	for _, want := range []string{"Light", "Moderate", "Strong"} {
		assert.True(t, classes[want], "missing magnitude class %s", want)
	}
}

func TestGotaStocks(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := Stocks(context.Background())
	require.NoError(t, err)

	df := res.(dataframe.DataFrame)
	assert.Equal(t, []string{"date", "Apple", "Amazon", "Google", "Meta", "Microsoft", "Netflix"}, df.Names())
	assert.Equal(t, 120, df.Nrow())
}
