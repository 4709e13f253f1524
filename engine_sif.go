package hvsampledata

import (
	"context"
	"fmt"

	"github.com/go-sif/sif"
	"github.com/go-sif/sif/datasource/file"
	"github.com/go-sif/sif/datasource/parser/dsv"
	"github.com/go-sif/sif/schema"
)

// loadSifCSV builds a deferred sif dataframe over a CSV file. Nothing is read
// here: sif evaluates the plan when the caller attaches it to a node and runs
// an action, which is why the engine is registered lazy-only.
//
// sif needs the schema up front, so this loader is the one consumer of the
// catalog's declared column types that cannot infer them.
func loadSifCSV(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error) {
	o := SifOptions{}
	if opts != nil {
		o = opts.(SifOptions)
	}
	nilValue := o.NilValue
	if nilValue == "" {
		nilValue = "NA"
	}

	sch := schema.CreateSchema()
	for _, col := range desc.Columns {
		ct, err := sifColumnType(col.Type)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", desc.Name, err)
		}
		// CreateColumn only fails on a duplicate name, which catalog
		// loading already rules out.
		sch.CreateColumn(col.Name, ct)
	}

	parser := dsv.CreateParser(&dsv.ParserConf{
		NilValue:    nilValue,
		HeaderLines: 1,
	})
	return file.CreateDataFrame(path, parser, sch), nil
}

// sifColumnType maps a catalog column type onto a sif column type.
func sifColumnType(t ColumnType) (sif.ColumnType, error) {
	switch t {
	case ColumnString:
		return &sif.VarStringColumnType{}, nil
	case ColumnFloat:
		return &sif.Float64ColumnType{}, nil
	case ColumnInt:
		return &sif.Int64ColumnType{}, nil
	case ColumnDate:
		return &sif.TimeColumnType{Format: "2006-01-02"}, nil
	case ColumnDatetime:
		return &sif.TimeColumnType{Format: "2006-01-02T15:04:05"}, nil
	default:
		return nil, fmt.Errorf("no sif column type for %q", t)
	}
}
