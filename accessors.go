package hvsampledata

import "context"

// Tabular loads a tabular dataset by name. The result is the native object
// of the engine that serviced the request; see the package documentation for
// the type per engine.
func Tabular(ctx context.Context, name string, opts ...Option) (any, error) {
	desc, err := lookupDataset(name, KindTabular)
	if err != nil {
		return nil, err
	}
	return resolve(ctx, desc, buildRequest(opts))
}

// Gridded loads a gridded dataset by name.
func Gridded(ctx context.Context, name string, opts ...Option) (any, error) {
	desc, err := lookupDataset(name, KindGridded)
	if err != nil {
		return nil, err
	}
	return resolve(ctx, desc, buildRequest(opts))
}

// Fetch populates the cache for a dataset without loading it and returns the
// on-disk path. For remote datasets this is the download-only mode; for
// bundled and generated datasets it materializes the file.
//
// No engine runs, so WithEngine, WithLazy and WithEngineOptions are rejected
// rather than ignored. WithTotalPoints applies, for generated datasets.
func Fetch(ctx context.Context, name string, opts ...Option) (string, error) {
	desc, err := Describe(name)
	if err != nil {
		return "", err
	}
	req := buildRequest(opts)
	if req.engine != "" || req.lazy || req.engineOpts != nil {
		return "", newIncompatibleOptions(desc.Name, "",
			"Fetch is download-only; WithEngine, WithLazy and WithEngineOptions do not apply")
	}
	if req.totalPoints != 0 && desc.Storage != StorageGenerated {
		return "", newIncompatibleOptions(desc.Name, "", "WithTotalPoints applies only to generated datasets")
	}
	return locate(ctx, desc, req.totalPoints)
}

// Penguins is the Palmer penguins dataset: 344 rows of measurements across
// three species, with missing values in the measurement and sex columns.
func Penguins(ctx context.Context, opts ...Option) (any, error) {
	return Tabular(ctx, "penguins", opts...)
}

// AppleStocks is a daily Apple stock price series (OHLC, volume, adjusted
// close).
func AppleStocks(ctx context.Context, opts ...Option) (any, error) {
	return Tabular(ctx, "apple_stocks", opts...)
}

// Stocks is a monthly closing-price series for six large tech companies.
func Stocks(ctx context.Context, opts ...Option) (any, error) {
	return Tabular(ctx, "stocks", opts...)
}

// Earthquakes is an earthquake event table with ordered depth and magnitude
// classes.
func Earthquakes(ctx context.Context, opts ...Option) (any, error) {
	return Tabular(ctx, "earthquakes", opts...)
}

// SyntheticClusters is a generated point-cluster dataset. The row count is
// set with WithTotalPoints and must be a multiple of 5; generation is
// deterministic, so equal row counts yield identical data.
func SyntheticClusters(ctx context.Context, opts ...Option) (any, error) {
	return Tabular(ctx, "synthetic_clusters", opts...)
}

// LargeTimeseries is a high-frequency sensor time series stored as Parquet.
// The first call downloads the file into the cache directory.
func LargeTimeseries(ctx context.Context, opts ...Option) (any, error) {
	return Tabular(ctx, "large_timeseries", opts...)
}

// AirTemperature is the 4x daily NMC reanalysis air temperature dataset
// (1948): variable air over dims (time, lat, lon) = (20, 25, 53).
func AirTemperature(ctx context.Context, opts ...Option) (any, error) {
	return Gridded(ctx, "air_temperature", opts...)
}

// Airplane is a grayscale aerial photograph. The first call downloads the
// TIFF into the cache directory.
func Airplane(ctx context.Context, opts ...Option) (any, error) {
	return Gridded(ctx, "airplane", opts...)
}

// buildRequest applies the options to a fresh request.
func buildRequest(opts []Option) loadRequest {
	var req loadRequest
	for _, opt := range opts {
		opt(&req)
	}
	return req
}
