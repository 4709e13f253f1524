package hvsampledata

import (
	"context"
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrowEager(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := Penguins(context.Background(), WithEngine("arrow"))
	require.NoError(t, err)

	tbl, ok := res.(arrow.Table)
	require.True(t, ok, "got %T", res)
	defer tbl.Release()

	assert.Equal(t, int64(344), tbl.NumRows())
	assert.Equal(t, int64(8), tbl.NumCols())
	assert.Equal(t, "species", tbl.Schema().Field(0).Name)
}

func TestArrowLazy(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := Penguins(context.Background(), WithEngine("arrow"), WithLazy(true))
	require.NoError(t, err)

	frame, ok := res.(*LazyFrame)
	require.True(t, ok, "got %T", res)

	tbl, err := frame.Collect()
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, int64(344), tbl.NumRows())
}

func TestArrowLazyIteration(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := Penguins(context.Background(),
		WithEngine("arrow"),
		WithLazy(true),
		WithEngineOptions(ArrowOptions{ChunkSize: 100}))
	require.NoError(t, err)

	frame := res.(*LazyFrame)
	defer frame.Close()

	var rows, batches int64
	for frame.Next() {
		rec := frame.Record()
		rows += rec.NumRows()
		batches++
	}
	require.NoError(t, frame.Err())

	assert.Equal(t, int64(344), rows)
	assert.GreaterOrEqual(t, batches, int64(4), "chunked scan should yield multiple batches")
}

func TestArrowNullHandling(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := Penguins(context.Background(), WithEngine("arrow"))
	require.NoError(t, err)

	tbl := res.(arrow.Table)
	defer tbl.Release()

	idx := tbl.Schema().FieldIndices("sex")
	require.Len(t, idx, 1)

	nulls := 0
	col := tbl.Column(idx[0])
	for _, chunk := range col.Data().Chunks() {
		nulls += chunk.NullN()
	}
	assert.Positive(t, nulls, "NA markers must parse as nulls")
}

func TestArrowAliasPolars(t *testing.T) {
	t.Setenv("HVSAMPLEDATA_CACHE_DIR", t.TempDir())

	res, err := AppleStocks(context.Background(), WithEngine("polars"))
	require.NoError(t, err)

	tbl, ok := res.(arrow.Table)
	require.True(t, ok, "got %T", res)
	defer tbl.Release()

	assert.Equal(t, int64(7), tbl.NumCols())
	assert.Equal(t, int64(504), tbl.NumRows())
}
