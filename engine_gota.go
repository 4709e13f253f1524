package hvsampledata

import (
	"context"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// defaultNaN are the strings parsed as missing values by the tabular CSV
// engines unless overridden.
var defaultNaN = []string{"NA", "NaN", ""}

// loadGotaCSV reads a CSV file into an eager gota dataframe.
func loadGotaCSV(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error) {
	o := GotaOptions{}
	if opts != nil {
		o = opts.(GotaOptions)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nan := o.NaNValues
	if nan == nil {
		nan = defaultNaN
	}
	load := []dataframe.LoadOption{
		dataframe.HasHeader(true),
		dataframe.NaNValues(nan),
	}
	if o.Delimiter != 0 {
		load = append(load, dataframe.WithDelimiter(o.Delimiter))
	}

	df := dataframe.ReadCSV(f, load...)
	if df.Err != nil {
		return nil, df.Err
	}
	return df, nil
}
