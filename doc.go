// Package hvsampledata distributes the shared sample datasets used across the
// HoloViz projects and loads them through a caller-selected data engine.
//
// Small datasets ship inside the module and are materialized into a
// per-platform cache directory on first use. Large datasets are downloaded
// from datasets.holoviz.org on first use and cached the same way. The
// synthetic_clusters dataset is generated deterministically on demand.
//
// Every accessor returns the native object of the engine that serviced the
// request, so the concrete result type depends on the engine:
//
//	gota     dataframe.DataFrame   eager tabular
//	arrow    arrow.Table           eager tabular (CSV and Parquet)
//	         *LazyFrame            lazy tabular (WithLazy(true))
//	sif      sif.DataFrame         deferred distributed tabular (lazy only)
//	dataset  *sql.DB               in-memory SQLite table
//	netcdf   api.Group             labeled N-dimensional array (NetCDF)
//	image    image.Image           raster grid (TIFF)
//
// The engine set is closed: adding an engine is a code change, not a runtime
// registration. Requests are validated before any I/O happens; a lazy request
// against an eager-only engine fails with IncompatibleOptions rather than
// silently returning eager data.
//
// Typical use:
//
//	df, err := hvsampledata.Penguins(ctx)                                  // gota dataframe
//	lf, err := hvsampledata.Penguins(ctx, hvsampledata.WithEngine("arrow"),
//	        hvsampledata.WithLazy(true))                                   // *LazyFrame
//	ds, err := hvsampledata.AirTemperature(ctx)                            // NetCDF group
package hvsampledata
