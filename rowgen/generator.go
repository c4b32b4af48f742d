package rowgen

import "math/rand"

// State is the opaque per-visit state of a generator. It is created by
// Visit at node entry, passed into every NumRows and Emit call for that
// visit, and discarded when the visit's row loop completes. Generators
// that need no state leave it nil.
type State any

// Generator produces rows for one table. Implementations must not retain
// the deps map beyond a call, and must route every random draw through the
// supplied rng so that generation stays reproducible.
type Generator interface {
	// Table identifies the output table. Stable per instance.
	Table() string
	// NumRows determines how many rows the current visit will produce.
	// state is the value returned by Visit, or nil for stateless generators.
	NumRows(rng *rand.Rand, state State) (int, error)
	// Emit produces exactly one row. It may mutate state to make successive
	// rows within the same visit conditional on earlier ones.
	Emit(rng *rand.Rand, deps Deps, state State) (Row, error)
}

// DepKeyer optionally overrides the key under which a generator's rows are
// exposed to descendants. Without it the table name is used. Two generators
// writing to the same table can declare distinct dependency keys so their
// dependents reference them independently.
type DepKeyer interface {
	DepKey() string
}

// Visitor optionally pre-rolls per-visit state before any rows are
// produced: a shared pool, a target row count, anything that must stay
// consistent across the whole batch of rows of one visit.
type Visitor interface {
	Visit(rng *rand.Rand, deps Deps) (State, error)
}

// depKeyOf resolves the dependency key of a generator, falling back to the
// table name.
func depKeyOf(g Generator) string {
	if dk, ok := g.(DepKeyer); ok {
		return dk.DepKey()
	}
	return g.Table()
}

// visitOf runs the generator's Visit hook, or returns nil state when the
// generator has none.
func visitOf(g Generator, rng *rand.Rand, deps Deps) (State, error) {
	if v, ok := g.(Visitor); ok {
		return v.Visit(rng, deps)
	}
	return nil, nil
}

// GenConfig configures a function-backed generator.
type GenConfig struct {
	// Table is the output table name.
	Table string
	// DepKey overrides the dependency key (defaults to Table).
	DepKey string
	// Rows determines the row count per visit. Nil means exactly one row.
	Rows func(rng *rand.Rand, state State) (int, error)
	// Visit pre-rolls per-visit state. Nil means no state.
	Visit func(rng *rand.Rand, deps Deps) (State, error)
	// Emit produces one row. Required.
	Emit func(rng *rand.Rand, deps Deps, state State) (Row, error)
}

// FromFunc builds a Generator from plain functions, so simple tables don't
// need a struct type each.
func FromFunc(cfg GenConfig) Generator {
	return &funcGen{cfg: cfg}
}

type funcGen struct {
	cfg GenConfig
}

func (g *funcGen) Table() string { return g.cfg.Table }

func (g *funcGen) DepKey() string {
	if g.cfg.DepKey != "" {
		return g.cfg.DepKey
	}
	return g.cfg.Table
}

func (g *funcGen) Visit(rng *rand.Rand, deps Deps) (State, error) {
	if g.cfg.Visit == nil {
		return nil, nil
	}
	return g.cfg.Visit(rng, deps)
}

func (g *funcGen) NumRows(rng *rand.Rand, state State) (int, error) {
	if g.cfg.Rows == nil {
		return 1, nil
	}
	return g.cfg.Rows(rng, state)
}

func (g *funcGen) Emit(rng *rand.Rand, deps Deps, state State) (Row, error) {
	return g.cfg.Emit(rng, deps, state)
}
