package sink

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/rowgen"
)

// SQLSink inserts tables into a database through database/sql. Tables are
// written in collection order, which puts parents before dependents.
type SQLSink struct {
	db *sql.DB
}

// NewSQL creates a SQL sink on an open database handle. The sink does not
// own the handle; closing it is the caller's job.
func NewSQL(db *sql.DB) *SQLSink {
	return &SQLSink{db: db}
}

func (s *SQLSink) Name() string { return "sql" }

// Write creates each table if needed and inserts all rows inside a single
// transaction, so a failed run leaves the database unchanged.
func (s *SQLSink) Write(ctx context.Context, tables *rowgen.Tables) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.SinkFailed("sql").WithCause(err)
	}
	defer tx.Rollback()

	for _, name := range tables.Names() {
		rows, _ := tables.Get(name)
		if len(rows) == 0 {
			continue
		}
		cols := columnsOf(rows)

		if _, err := tx.ExecContext(ctx, createStmt(name, cols, rows)); err != nil {
			return errors.SinkFailed("sql").
				WithDetail("table", name).
				WithCause(err)
		}
		if err := insertRows(ctx, tx, name, cols, rows); err != nil {
			return errors.SinkFailed("sql").
				WithDetail("table", name).
				WithCause(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.SinkFailed("sql").WithCause(err)
	}
	return nil
}

func insertRows(ctx context.Context, tx *sql.Tx, table string, cols []string, rows []rowgen.Row) error {
	quoted := make([]string, len(cols))
	holes := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = quoteIdent(col)
		holes[i] = "?"
	}
	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(table), strings.Join(quoted, ", "), strings.Join(holes, ", "),
	))
	if err != nil {
		return err
	}
	defer stmt.Close()

	args := make([]any, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			args[i] = sqlValue(row[col])
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return err
		}
	}
	return nil
}

// createStmt builds a CREATE TABLE IF NOT EXISTS statement with column
// types inferred from the first non-nil value seen per column.
func createStmt(table string, cols []string, rows []rowgen.Row) string {
	defs := make([]string, len(cols))
	for i, col := range cols {
		defs[i] = quoteIdent(col) + " " + columnType(col, rows)
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		quoteIdent(table), strings.Join(defs, ", "))
}

func columnType(col string, rows []rowgen.Row) string {
	for _, row := range rows {
		switch row[col].(type) {
		case nil:
			continue
		case int, int32, int64, bool:
			return "INTEGER"
		case float32, float64:
			return "REAL"
		default:
			return "TEXT"
		}
	}
	return "TEXT"
}

// sqlValue converts a row value to a driver-friendly argument.
func sqlValue(v any) any {
	switch t := v.(type) {
	case nil, string, int, int32, int64, float32, float64, bool, []byte:
		return v
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	default:
		return fmt.Sprint(t)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
