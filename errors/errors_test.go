package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Message(t *testing.T) {
	err := GeneratorFailed("users", "emit")
	if !strings.Contains(err.Error(), "users") || !strings.Contains(err.Error(), "emit") {
		t.Fatalf("unexpected message: %v", err)
	}
	if err.Code != ErrCodeGeneratorFailed {
		t.Fatalf("unexpected code %q", err.Code)
	}
	if err.Details["table"] != "users" || err.Details["op"] != "emit" {
		t.Fatalf("unexpected details %v", err.Details)
	}
}

func TestError_CauseChain(t *testing.T) {
	root := fmt.Errorf("disk full")
	err := StreamFailed().WithCause(GeneratorFailed("t", "emit").WithCause(root))

	if !stderrors.Is(err, root) {
		t.Fatal("errors.Is lost the root cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("cause missing from message: %v", err)
	}
}

func TestHasCode(t *testing.T) {
	err := StreamFailed().WithCause(GeneratorFailed("t", "visit"))

	if !HasCode(err, ErrCodeStreamFailed) {
		t.Fatal("outer code not found")
	}
	if !HasCode(err, ErrCodeGeneratorFailed) {
		t.Fatal("inner code not found")
	}
	if HasCode(err, ErrCodeSinkFailed) {
		t.Fatal("found a code that is not in the chain")
	}
	if HasCode(nil, ErrCodeInternal) {
		t.Fatal("nil error cannot carry a code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(InvalidSchema("x")); got != ErrCodeInvalidSchema {
		t.Fatalf("expected INVALID_SCHEMA, got %q", got)
	}
	if got := GetCode(fmt.Errorf("plain")); got != ErrCodeInternal {
		t.Fatalf("expected INTERNAL_ERROR for foreign error, got %q", got)
	}
}

func TestAsError(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", NotFound("dataset file", "x.yml"))

	e, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError failed on wrapped error")
	}
	if e.Code != ErrCodeNotFound {
		t.Fatalf("unexpected code %q", e.Code)
	}
	if !IsError(wrapped) {
		t.Fatal("IsError disagreed with AsError")
	}
	if IsError(fmt.Errorf("plain")) {
		t.Fatal("foreign error reported as synthkit error")
	}
}

func TestWithDetail(t *testing.T) {
	err := GraphShape("nil node").
		WithDetail("index", 3).
		WithDetails(map[string]any{"depth": 2})

	if err.Details["index"] != 3 || err.Details["depth"] != 2 {
		t.Fatalf("unexpected details %v", err.Details)
	}
}
