package hvsampledata

import (
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// loadSQLiteCSV loads a CSV file into a single table of an in-memory SQLite
// database and returns the open *sql.DB. The caller owns the handle and
// closes it; closing discards the data.
//
// Column types come from the catalog declaration; unparseable cells and the
// usual missing-value strings become NULL.
func loadSQLiteCSV(ctx context.Context, desc Descriptor, path string, lazy bool, opts EngineOptions) (any, error) {
	o := DatasetOptions{}
	if opts != nil {
		o = opts.(DatasetOptions)
	}
	table := o.Table
	if table == "" {
		table = desc.Name
	}

	header, rows, err := readCSVFile(path)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// The handle is a single in-memory connection; a second connection would
	// see a different empty database.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := populateTable(ctx, db, desc, table, header, rows); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// populateTable creates the table and inserts every row in one transaction.
func populateTable(ctx context.Context, db *sql.DB, desc Descriptor, table string, header []string, rows [][]string) error {
	types := make(map[string]ColumnType, len(desc.Columns))
	for _, col := range desc.Columns {
		types[col.Name] = col.Type
	}

	defs := make([]string, len(header))
	marks := make([]string, len(header))
	for i, name := range header {
		defs[i] = fmt.Sprintf("%q %s", name, sqliteType(types[name]))
		marks[i] = "?"
	}
	create := fmt.Sprintf("CREATE TABLE %q (%s)", table, strings.Join(defs, ", "))
	if _, err := db.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("create table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := fmt.Sprintf("INSERT INTO %q VALUES (%s)", table, strings.Join(marks, ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	args := make([]any, len(header))
	for _, row := range rows {
		for i, cell := range row {
			args[i] = sqliteValue(cell)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// readCSVFile reads a whole CSV file, splitting the header row off.
func readCSVFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("read csv: empty file")
	}
	return records[0], records[1:], nil
}

// sqliteType maps a catalog column type onto a SQLite column type. Dates and
// datetimes stay TEXT in ISO form; SQLite has no dedicated temporal type.
func sqliteType(t ColumnType) string {
	switch t {
	case ColumnInt:
		return "INTEGER"
	case ColumnFloat:
		return "REAL"
	default:
		return "TEXT"
	}
}

// sqliteValue converts a CSV cell to an insert argument, mapping missing
// markers to NULL. SQLite's type affinity converts numeric text itself.
func sqliteValue(cell string) any {
	switch cell {
	case "", "NA", "NaN":
		return nil
	}
	return cell
}
