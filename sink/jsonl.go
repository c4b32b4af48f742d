package sink

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/rowgen"
)

// JSONLSink writes one JSON-lines file per table into a directory.
type JSONLSink struct {
	dir string
}

// NewJSONL creates a JSONL sink writing into dir.
func NewJSONL(dir string) *JSONLSink {
	return &JSONLSink{dir: dir}
}

func (s *JSONLSink) Name() string { return "jsonl" }

// Write creates dir if needed and writes {table}.jsonl for every table,
// one JSON object per row, in emission order.
func (s *JSONLSink) Write(ctx context.Context, tables *rowgen.Tables) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.SinkFailed("jsonl").WithCause(err)
	}

	for _, name := range tables.Names() {
		if err := ctx.Err(); err != nil {
			return err
		}
		rows, _ := tables.Get(name)
		if err := s.writeTable(name, rows); err != nil {
			return errors.SinkFailed("jsonl").
				WithDetail("table", name).
				WithCause(err)
		}
	}
	return nil
}

func (s *JSONLSink) writeTable(name string, rows []rowgen.Row) error {
	f, err := os.Create(filepath.Join(s.dir, name+".jsonl"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
