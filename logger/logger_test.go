package logger

import (
	"fmt"
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stderr" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Fatal("timestamps should default on")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Level = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown level")
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNew(t *testing.T) {
	log := New(&Config{Level: "error", Format: "json", Output: "stderr"}, "mytool")
	if log == nil {
		t.Fatal("expected logger")
	}

	// Derived loggers keep the tool name.
	derived := log.WithComponent("engine").WithError(fmt.Errorf("x"))
	if derived.tool != "mytool" {
		t.Fatalf("derived logger lost tool name: %q", derived.tool)
	}
}

func TestNew_BadLevelFallsBack(t *testing.T) {
	if log := New(&Config{Level: "nope", Format: "json"}, "t"); log == nil {
		t.Fatal("expected logger despite bad level")
	}
}

func TestGetGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily created default logger")
	}
}

func TestFields(t *testing.T) {
	m := Fields(FieldTable, "users", FieldRows, 3)
	if m[FieldTable] != "users" || m[FieldRows] != 3 {
		t.Fatalf("unexpected fields %v", m)
	}

	// Odd trailing value is dropped, not misassigned.
	m = Fields("a", 1, "dangling")
	if len(m) != 1 || m["a"] != 1 {
		t.Fatalf("unexpected fields %v", m)
	}

	// Non-string keys are skipped.
	m = Fields(42, "v")
	if len(m) != 0 {
		t.Fatalf("unexpected fields %v", m)
	}
}

func TestErrorFields(t *testing.T) {
	m := ErrorFields("write", fmt.Errorf("disk full"))
	if m[FieldOperation] != "write" || m[FieldError] != "disk full" {
		t.Fatalf("unexpected fields %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("generate", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Fatalf("unexpected duration %v", m[FieldDuration])
	}
}
