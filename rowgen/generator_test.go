package rowgen

import (
	"math/rand"
	"testing"
)

func TestFromFunc_Defaults(t *testing.T) {
	gen := FromFunc(GenConfig{
		Table: "t",
		Emit: func(_ *rand.Rand, _ Deps, state State) (Row, error) {
			if state != nil {
				t.Fatalf("expected nil state without a Visit hook, got %v", state)
			}
			return Row{}, nil
		},
	})

	rng := rand.New(rand.NewSource(1))

	if depKeyOf(gen) != "t" {
		t.Fatalf("expected dep key to default to table, got %q", depKeyOf(gen))
	}

	state, err := visitOf(gen, rng, Deps{})
	if err != nil || state != nil {
		t.Fatalf("expected nil state, got %v, %v", state, err)
	}

	n, err := gen.NumRows(rng, state)
	if err != nil || n != 1 {
		t.Fatalf("expected default of one row, got %d, %v", n, err)
	}

	if _, err := gen.Emit(rng, Deps{}, state); err != nil {
		t.Fatalf("emit failed: %v", err)
	}
}

func TestFromFunc_DepKeyOverride(t *testing.T) {
	gen := FromFunc(GenConfig{
		Table:  "events",
		DepKey: "signup",
		Emit: func(_ *rand.Rand, _ Deps, _ State) (Row, error) {
			return Row{}, nil
		},
	})

	if depKeyOf(gen) != "signup" {
		t.Fatalf("expected dep key override, got %q", depKeyOf(gen))
	}
}

func TestDepKeyOf_FallsBackToTable(t *testing.T) {
	if got := depKeyOf(&bareGen{table: "plain"}); got != "plain" {
		t.Fatalf("expected table name fallback, got %q", got)
	}
}
