package rowgen

import (
	"math/rand"

	"github.com/kbukum/synthkit/errors"
)

// EmitFunc receives each (table, row) pair in emission order. Returning an
// error aborts the traversal.
type EmitFunc func(table string, row Row) error

// Walk traverses the graph depth-first and calls emit for every produced
// row. The traversal is strictly sequential: a parent row is emitted before
// any of its descendants' rows, a row's entire subtree is finished before
// the parent's next row, and a sibling is fully traversed before the next
// sibling begins.
//
// Any error from a generator capability or from emit aborts the whole walk;
// nothing is retried or skipped.
func Walk(rng *rand.Rand, node Node, emit EmitFunc) error {
	n, err := normalize(node)
	if err != nil {
		return err
	}
	return walk(rng, n, Deps{}, emit)
}

func walk(rng *rand.Rand, node Node, deps Deps, emit EmitFunc) error {
	switch v := node.(type) {
	case seqNode:
		// Siblings share the incoming context, never each other's rows.
		for _, c := range v.nodes {
			if err := walk(rng, c, deps, emit); err != nil {
				return err
			}
		}
		return nil
	case genNode:
		return visitGenerator(rng, v.gen, nil, deps, emit)
	case pairNode:
		return visitGenerator(rng, v.gen, v.children, deps, emit)
	default:
		return errors.GraphShape("unknown node shape")
	}
}

// visitGenerator performs one visit of a generator node: one Visit call,
// one NumRows call, then the emit-and-recurse loop.
func visitGenerator(rng *rand.Rand, gen Generator, children []Node, deps Deps, emit EmitFunc) error {
	table := gen.Table()

	state, err := visitOf(gen, rng, deps)
	if err != nil {
		return errors.GeneratorFailed(table, "visit").WithCause(err)
	}

	n, err := gen.NumRows(rng, state)
	if err != nil {
		return errors.GeneratorFailed(table, "num_rows").WithCause(err)
	}
	if n < 0 {
		return errors.GeneratorFailed(table, "num_rows").
			WithDetail("rows", n).
			WithCause(errors.InvalidInput("row count must be non-negative"))
	}

	depKey := depKeyOf(gen)

	for i := 0; i < n; i++ {
		row, err := gen.Emit(rng, deps, state)
		if err != nil {
			return errors.GeneratorFailed(table, "emit").WithCause(err)
		}
		// Output before descendants: pre-order with respect to this row.
		if err := emit(table, row); err != nil {
			return err
		}
		if len(children) == 0 {
			continue
		}
		childDeps := deps.With(depKey, row)
		for _, c := range children {
			if err := walk(rng, c, childDeps, emit); err != nil {
				return err
			}
		}
	}
	return nil
}
