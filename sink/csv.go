package sink

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/rowgen"
)

// CSVSink writes one CSV file per table into a directory.
type CSVSink struct {
	dir string
}

// NewCSV creates a CSV sink writing into dir.
func NewCSV(dir string) *CSVSink {
	return &CSVSink{dir: dir}
}

func (s *CSVSink) Name() string { return "csv" }

// Write creates dir if needed and writes {table}.csv for every table,
// header row first, rows in emission order.
func (s *CSVSink) Write(ctx context.Context, tables *rowgen.Tables) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.SinkFailed("csv").WithCause(err)
	}

	for _, name := range tables.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows, _ := tables.Get(name)
		if err := s.writeTable(name, rows); err != nil {
			return errors.SinkFailed("csv").
				WithDetail("table", name).
				WithCause(err)
		}
	}
	return nil
}

func (s *CSVSink) writeTable(name string, rows []rowgen.Row) error {
	f, err := os.Create(filepath.Join(s.dir, name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	cols := columnsOf(rows)

	if err := w.Write(cols); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			record[i] = formatValue(row[col])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// formatValue renders a field value as a CSV cell.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}
