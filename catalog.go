package hvsampledata

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/unicode/norm"
)

//go:embed catalog.cue
var catalogCUE []byte

// Kind classifies the shape of a dataset.
type Kind string

const (
	// KindTabular is row/column data (CSV, Parquet).
	KindTabular Kind = "tabular"

	// KindGridded is labeled N-dimensional array data (NetCDF, TIFF).
	KindGridded Kind = "gridded"
)

// Storage describes where a dataset's bytes come from.
type Storage string

const (
	// StorageBundled files ship inside the module and are materialized into
	// the cache directory on first use.
	StorageBundled Storage = "bundled"

	// StorageRemote files are downloaded from a fixed URL on first use.
	StorageRemote Storage = "remote"

	// StorageGenerated files are synthesized deterministically on first use.
	StorageGenerated Storage = "generated"
)

// ColumnType is the declared type of a tabular column. It drives schema
// construction for engines that need one up front (sif, dataset).
type ColumnType string

const (
	ColumnString   ColumnType = "string"
	ColumnFloat    ColumnType = "float"
	ColumnInt      ColumnType = "int"
	ColumnDate     ColumnType = "date"
	ColumnDatetime ColumnType = "datetime"
)

// Column is one declared column of a tabular dataset.
type Column struct {
	Name string
	Type ColumnType
}

// Descriptor is the immutable description of one dataset. Descriptors are
// built once from the embedded catalog and never mutated.
type Descriptor struct {
	Name          string
	Kind          Kind
	Storage       Storage
	Format        string
	DefaultEngine EngineID
	Engines       []EngineID
	URL           string
	SHA256        string
	Description   string
	Columns       []Column
}

// SupportsEngine reports whether the dataset can be loaded by the engine.
func (d Descriptor) SupportsEngine(e EngineID) bool {
	for _, id := range d.Engines {
		if id == e {
			return true
		}
	}
	return false
}

// filename is the cache-relative name of the dataset's bundled asset.
func (d Descriptor) filename() string {
	return d.Name + "." + d.Format
}

type rawColumn struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type rawDataset struct {
	Name          string      `json:"name"`
	Kind          string      `json:"kind"`
	Storage       string      `json:"storage"`
	Format        string      `json:"format"`
	Engines       []string    `json:"engines"`
	DefaultEngine string      `json:"default_engine"`
	Description   string      `json:"description"`
	URL           string      `json:"url"`
	SHA256        string      `json:"sha256"`
	Columns       []rawColumn `json:"columns"`
}

// loadCatalog compiles and validates the embedded CUE catalog exactly once.
// A malformed catalog is a packaging defect: every accessor will return the
// same error.
var loadCatalog = sync.OnceValues(func() (map[string]Descriptor, error) {
	ctx := cuecontext.New()

	v := ctx.CompileBytes(catalogCUE, cue.Filename("catalog.cue"))
	if v.Err() != nil {
		return nil, fmt.Errorf("compile catalog: %w", v.Err())
	}

	datasets := v.LookupPath(cue.ParsePath("datasets"))
	if !datasets.Exists() {
		return nil, fmt.Errorf("compile catalog: no datasets list")
	}
	if err := datasets.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var raw []rawDataset
	if err := datasets.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	index := make(map[string]Descriptor, len(raw))
	for _, r := range raw {
		engines := make([]EngineID, len(r.Engines))
		for i, e := range r.Engines {
			engines[i] = EngineID(e)
		}
		columns := make([]Column, len(r.Columns))
		seen := make(map[string]bool, len(r.Columns))
		for i, c := range r.Columns {
			if seen[c.Name] {
				return nil, fmt.Errorf("decode catalog: dataset %q: duplicate column %q", r.Name, c.Name)
			}
			seen[c.Name] = true
			columns[i] = Column{Name: c.Name, Type: ColumnType(c.Type)}
		}
		if _, dup := index[r.Name]; dup {
			return nil, fmt.Errorf("decode catalog: duplicate dataset %q", r.Name)
		}
		index[r.Name] = Descriptor{
			Name:          r.Name,
			Kind:          Kind(r.Kind),
			Storage:       Storage(r.Storage),
			Format:        r.Format,
			DefaultEngine: EngineID(r.DefaultEngine),
			Engines:       engines,
			URL:           r.URL,
			SHA256:        r.SHA256,
			Description:   r.Description,
			Columns:       columns,
		}
	}
	return index, nil
})

// normalizeName canonicalizes a caller-supplied dataset name before lookup.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// Datasets returns every catalog entry, sorted by name.
func Datasets() ([]Descriptor, error) {
	index, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	out := make([]Descriptor, 0, len(index))
	for _, d := range index {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Describe returns the descriptor for a dataset name.
func Describe(name string) (Descriptor, error) {
	index, err := loadCatalog()
	if err != nil {
		return Descriptor{}, err
	}
	d, ok := index[normalizeName(name)]
	if !ok {
		return Descriptor{}, newUnknownDataset(name, datasetNames(index, ""))
	}
	return d, nil
}

// lookupDataset resolves a name within one dataset kind. Names of another
// kind are unknown on purpose: the tabular and gridded accessors expose
// disjoint catalogs.
func lookupDataset(name string, kind Kind) (Descriptor, error) {
	index, err := loadCatalog()
	if err != nil {
		return Descriptor{}, err
	}
	d, ok := index[normalizeName(name)]
	if !ok || d.Kind != kind {
		return Descriptor{}, newUnknownDataset(name, datasetNames(index, kind))
	}
	return d, nil
}

// datasetNames lists known names, optionally filtered by kind, sorted.
func datasetNames(index map[string]Descriptor, kind Kind) []string {
	var names []string
	for name, d := range index {
		if kind != "" && d.Kind != kind {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
