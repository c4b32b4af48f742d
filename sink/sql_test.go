package sink

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLSink_Write(t *testing.T) {
	db := openTestDB(t)

	if err := NewSQL(db).Write(context.Background(), sampleTables()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "users"`).Scan(&count); err != nil {
		t.Fatalf("counting users: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 users, got %d", count)
	}

	var name string
	if err := db.QueryRow(`SELECT "name" FROM "users" WHERE "id" = 1`).Scan(&name); err != nil {
		t.Fatalf("selecting user: %v", err)
	}
	if name != "Ada" {
		t.Fatalf("expected Ada, got %q", name)
	}

	var at string
	if err := db.QueryRow(`SELECT "at" FROM "orders"`).Scan(&at); err != nil {
		t.Fatalf("selecting order: %v", err)
	}
	if at != "2024-06-01T12:00:00Z" {
		t.Fatalf("timestamp not RFC3339: %q", at)
	}
}

func TestSQLSink_Idempotent(t *testing.T) {
	db := openTestDB(t)
	s := NewSQL(db)

	// CREATE TABLE IF NOT EXISTS: writing twice must append, not fail.
	if err := s.Write(context.Background(), sampleTables()); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := s.Write(context.Background(), sampleTables()); err != nil {
		t.Fatalf("second write: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "users"`).Scan(&count); err != nil {
		t.Fatalf("counting users: %v", err)
	}
	if count != 4 {
		t.Fatalf("expected 4 users after two writes, got %d", count)
	}
}

func TestNew_Formats(t *testing.T) {
	if s, err := New(Config{Format: "csv", Dir: t.TempDir()}); err != nil || s.Name() != "csv" {
		t.Fatalf("csv: %v", err)
	}
	if s, err := New(Config{Format: "jsonl", Dir: t.TempDir()}); err != nil || s.Name() != "jsonl" {
		t.Fatalf("jsonl: %v", err)
	}
	if _, err := New(Config{Format: "sql"}); err == nil {
		t.Fatal("sql without dsn must fail")
	}
	if s, err := New(Config{Format: "sql", DSN: filepath.Join(t.TempDir(), "x.db")}); err != nil || s.Name() != "sql" {
		t.Fatalf("sql: %v", err)
	}
}

func TestNew_DefaultFormat(t *testing.T) {
	s, err := New(Config{Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name() != "csv" {
		t.Fatalf("expected csv default, got %q", s.Name())
	}
}
