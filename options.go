package hvsampledata

// Option configures one load request. Options are applied in order and the
// request is discarded after the call.
type Option func(*loadRequest)

// loadRequest collects caller arguments before dispatch. The zero value means
// "dataset defaults": default engine, eager, no engine options.
type loadRequest struct {
	engine      string // raw engine name as supplied; "" means default
	lazy        bool
	engineOpts  EngineOptions
	totalPoints int // synthetic_clusters only; 0 means default
}

// WithEngine selects the engine servicing the request by name. Accepted names
// are the canonical engine IDs ("gota", "arrow", "sif", "dataset", "netcdf",
// "image") plus the historical aliases "pandas", "polars", "dask" and
// "xarray". When omitted, the dataset's default engine is used.
func WithEngine(name string) Option {
	return func(r *loadRequest) { r.engine = name }
}

// WithLazy requests a deferred representation instead of materialized data.
// Only the arrow and sif engines support laziness; requesting lazy on an
// eager-only engine fails with an incompatible-options error rather than
// silently returning eager data.
func WithLazy(lazy bool) Option {
	return func(r *loadRequest) { r.lazy = lazy }
}

// WithEngineOptions forwards engine-specific read options. The options value
// must match the engine that services the request.
func WithEngineOptions(opts EngineOptions) Option {
	return func(r *loadRequest) { r.engineOpts = opts }
}

// WithTotalPoints sets the row count of the synthetic_clusters dataset. The
// value must be a positive multiple of 5 (one fifth per cluster). Using it
// with any other dataset fails with an incompatible-options error.
func WithTotalPoints(n int) Option {
	return func(r *loadRequest) { r.totalPoints = n }
}

// EngineOptions is the sealed interface implemented by the per-engine option
// structs. Each implementation names the single engine it configures.
type EngineOptions interface {
	engine() EngineID
}

// normalizeEngineOptions dereferences pointer forms of the option structs.
// Pointers satisfy EngineOptions through the promoted value-receiver method,
// so the resolver accepts them; loaders assert on the value types. A typed
// nil pointer means defaults.
func normalizeEngineOptions(opts EngineOptions) EngineOptions {
	switch v := opts.(type) {
	case *GotaOptions:
		if v == nil {
			return nil
		}
		return *v
	case *ArrowOptions:
		if v == nil {
			return nil
		}
		return *v
	case *SifOptions:
		if v == nil {
			return nil
		}
		return *v
	case *DatasetOptions:
		if v == nil {
			return nil
		}
		return *v
	case *NetCDFOptions:
		if v == nil {
			return nil
		}
		return *v
	}
	return opts
}

// GotaOptions configures the gota CSV reader.
type GotaOptions struct {
	// Delimiter overrides the field separator. Zero means comma.
	Delimiter rune

	// NaNValues overrides the strings parsed as missing. Nil means
	// {"NA", "NaN", ""}.
	NaNValues []string
}

func (GotaOptions) engine() EngineID { return EngineGota }

// ArrowOptions configures the arrow CSV and Parquet readers.
type ArrowOptions struct {
	// ChunkSize is the records-per-batch for lazy scans. Zero means 1024.
	ChunkSize int64

	// NullValues overrides the strings parsed as null in CSV input. Nil
	// means {"NA", "NaN", ""}.
	NullValues []string
}

func (ArrowOptions) engine() EngineID { return EngineArrow }

// SifOptions configures the sif CSV datasource.
type SifOptions struct {
	// NilValue is the string parsed as missing. Empty means "NA".
	NilValue string
}

func (SifOptions) engine() EngineID { return EngineSif }

// DatasetOptions configures the SQLite-backed dataset engine.
type DatasetOptions struct {
	// Table overrides the table name; defaults to the dataset name.
	Table string
}

func (DatasetOptions) engine() EngineID { return EngineDataset }

// NetCDFOptions configures the NetCDF engine.
type NetCDFOptions struct {
	// Variable selects a single variable instead of the whole group,
	// mirroring a dataarray-style open.
	Variable string
}

func (NetCDFOptions) engine() EngineID { return EngineNetCDF }
