package hvsampledata

import "context"

// EngineID identifies the third-party data-loading library servicing a
// request. The set is closed: adding an engine is a code change, not a
// runtime registration.
type EngineID string

const (
	// EngineGota loads eager dataframes (github.com/go-gota/gota).
	EngineGota EngineID = "gota"

	// EngineArrow loads columnar tables, eager or as a lazy record scan
	// (github.com/apache/arrow-go).
	EngineArrow EngineID = "arrow"

	// EngineSif builds deferred distributed dataframes (github.com/go-sif/sif).
	// The representation is inherently lazy; eager requests are rejected.
	EngineSif EngineID = "sif"

	// EngineDataset loads tabular data into an in-memory SQLite table and
	// returns the database handle (github.com/mattn/go-sqlite3).
	EngineDataset EngineID = "dataset"

	// EngineNetCDF opens labeled N-dimensional arrays
	// (github.com/batchatco/go-native-netcdf).
	EngineNetCDF EngineID = "netcdf"

	// EngineImage decodes raster grids (golang.org/x/image/tiff).
	EngineImage EngineID = "image"
)

// engineAliases maps the engine names of the original Python library to the
// Go engines covering the same capability. Kept so examples written against
// the original keep working.
var engineAliases = map[string]EngineID{
	"pandas": EngineGota,
	"polars": EngineArrow,
	"dask":   EngineSif,
	"xarray": EngineNetCDF,
}

// parseEngine canonicalizes a caller-supplied engine name. The boolean is
// false for names that are neither canonical IDs nor aliases.
func parseEngine(name string) (EngineID, bool) {
	n := normalizeName(name)
	if id, ok := engineAliases[n]; ok {
		return id, true
	}
	switch id := EngineID(n); id {
	case EngineGota, EngineArrow, EngineSif, EngineDataset, EngineNetCDF, EngineImage:
		return id, true
	}
	return "", false
}

// lazyCapable engines can return a deferred representation.
var lazyCapable = map[EngineID]bool{
	EngineArrow: true,
	EngineSif:   true,
}

// lazyOnly engines have no materialized representation of their own; they
// must be requested with WithLazy(true).
var lazyOnly = map[EngineID]bool{
	EngineSif: true,
}

// loader wraps exactly one third-party read call. Loaders receive the
// descriptor for schema-driven engines, the on-disk path from the locator,
// and the typed engine options (nil for defaults). Errors from the underlying
// library surface unchanged.
type loader func(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error)

// registryKey is the static lookup key: an engine supports a subset of
// formats within a kind.
type registryKey struct {
	kind   Kind
	engine EngineID
	format string
}

// loaders is the full engine registry. A missing key means the engine cannot
// read the dataset's format.
var loaders = map[registryKey]loader{
	{KindTabular, EngineGota, "csv"}:       loadGotaCSV,
	{KindTabular, EngineArrow, "csv"}:      loadArrowCSV,
	{KindTabular, EngineArrow, "parquet"}:  loadArrowParquet,
	{KindTabular, EngineSif, "csv"}:        loadSifCSV,
	{KindTabular, EngineDataset, "csv"}:    loadSQLiteCSV,
	{KindGridded, EngineNetCDF, "nc"}:      loadNetCDF,
	{KindGridded, EngineImage, "tif"}:      loadTIFF,
}
