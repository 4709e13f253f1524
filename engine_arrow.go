package hvsampledata

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// LazyFrame is a deferred tabular scan backed by an arrow record reader.
// Records are produced on demand; nothing is read until Next or Collect is
// called. A LazyFrame must be finished with Collect or Close to release the
// underlying file.
type LazyFrame struct {
	rdr array.RecordReader
	src io.Closer
}

// Schema returns the scan schema. For CSV scans the schema is inferred from
// the first batch, so it is nil before the first call to Next.
func (l *LazyFrame) Schema() *arrow.Schema { return l.rdr.Schema() }

// Next advances the scan to the next record batch.
func (l *LazyFrame) Next() bool { return l.rdr.Next() }

// Record returns the current batch. Only valid until the next call to Next;
// Retain it to keep it longer.
func (l *LazyFrame) Record() arrow.Record { return l.rdr.Record() }

// Err returns the first error hit by the scan.
func (l *LazyFrame) Err() error { return l.rdr.Err() }

// Close releases the reader and the underlying file.
func (l *LazyFrame) Close() error {
	l.rdr.Release()
	if l.src != nil {
		return l.src.Close()
	}
	return nil
}

// Collect materializes the remaining batches into an arrow table and closes
// the frame.
func (l *LazyFrame) Collect() (arrow.Table, error) {
	defer l.Close()

	var recs []arrow.Record
	release := func() {
		for _, r := range recs {
			r.Release()
		}
	}

	for l.rdr.Next() {
		rec := l.rdr.Record()
		rec.Retain()
		recs = append(recs, rec)
	}
	if err := l.rdr.Err(); err != nil {
		release()
		return nil, err
	}

	schema := l.rdr.Schema()
	if schema == nil {
		release()
		return nil, fmt.Errorf("empty scan: no schema")
	}
	tbl := array.NewTableFromRecords(schema, recs)
	release()
	return tbl, nil
}

// loadArrowCSV reads a CSV file with the arrow inferring reader. Eager
// requests drain the scan into an arrow.Table; lazy requests return the scan
// itself as a *LazyFrame.
func loadArrowCSV(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error) {
	o := arrowOptions(opts)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	nulls := o.NullValues
	if nulls == nil {
		nulls = defaultNaN
	}
	chunk := o.ChunkSize
	if chunk == 0 {
		chunk = 1024
	}
	if !lazy {
		// One batch for the whole file keeps the eager path cheap.
		chunk = -1
	}

	rdr := csv.NewInferringReader(f,
		csv.WithAllocator(memory.DefaultAllocator),
		csv.WithHeader(true),
		csv.WithChunk(int(chunk)),
		csv.WithNullReader(true, nulls...),
	)

	frame := &LazyFrame{rdr: rdr, src: f}
	if lazy {
		return frame, nil
	}
	return frame.Collect()
}

// loadArrowParquet reads a Parquet file. Eager requests return an
// arrow.Table; lazy requests return a *LazyFrame over the row groups.
func loadArrowParquet(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error) {
	o := arrowOptions(opts)

	pf, err := file.OpenParquetFile(path, false)
	if err != nil {
		return nil, err
	}

	chunk := o.ChunkSize
	if chunk == 0 {
		chunk = 1024
	}
	rdr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{BatchSize: chunk}, memory.DefaultAllocator)
	if err != nil {
		pf.Close()
		return nil, err
	}

	if lazy {
		rr, err := rdr.GetRecordReader(ctx, nil, nil)
		if err != nil {
			pf.Close()
			return nil, err
		}
		return &LazyFrame{rdr: rr, src: pf}, nil
	}

	tbl, err := rdr.ReadTable(ctx)
	if cerr := pf.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	return tbl, nil
}

func arrowOptions(opts EngineOptions) ArrowOptions {
	if opts != nil {
		return opts.(ArrowOptions)
	}
	return ArrowOptions{}
}
