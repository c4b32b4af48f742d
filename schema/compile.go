package schema

import (
	"math/rand"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/rowgen"
)

// Compile resolves a dataset definition into a rowgen graph. Root tables
// become siblings in declaration order; child tables nest under their
// parent and are visited once per parent row.
func Compile(ds *Dataset, reg *Registry) (rowgen.Node, error) {
	children := make(map[string][]*TableDef)
	var roots []*TableDef
	for i := range ds.Tables {
		t := &ds.Tables[i]
		if t.Parent == "" {
			roots = append(roots, t)
			continue
		}
		children[t.Parent] = append(children[t.Parent], t)
	}
	if len(roots) == 0 {
		return nil, errors.InvalidSchema("no root tables")
	}

	var build func(t *TableDef) (rowgen.Node, error)
	build = func(t *TableDef) (rowgen.Node, error) {
		gen, err := compileTable(t, reg)
		if err != nil {
			return nil, err
		}
		kids := children[t.Name]
		if len(kids) == 0 {
			return rowgen.G(gen), nil
		}
		childNodes := make([]rowgen.Node, 0, len(kids))
		for _, kid := range kids {
			node, err := build(kid)
			if err != nil {
				return nil, err
			}
			childNodes = append(childNodes, node)
		}
		return rowgen.Nest(gen, childNodes...), nil
	}

	rootNodes := make([]rowgen.Node, 0, len(roots))
	for _, root := range roots {
		node, err := build(root)
		if err != nil {
			return nil, err
		}
		rootNodes = append(rootNodes, node)
	}
	if len(rootNodes) == 1 {
		return rootNodes[0], nil
	}
	return rowgen.Seq(rootNodes...), nil
}

// compileTable builds the generator for one table definition. Every field
// kind is resolved against the registry up front, so unknown kinds fail at
// compile time instead of mid-run.
func compileTable(t *TableDef, reg *Registry) (rowgen.Generator, error) {
	fakers := make([]FakerFunc, len(t.Fields))
	for i, f := range t.Fields {
		fn, ok := reg.Get(f.Kind)
		if !ok {
			return nil, errors.InvalidSchema("unknown field kind").
				WithDetail("table", t.Name).
				WithDetail("field", f.Name).
				WithDetail("kind", f.Kind)
		}
		fakers[i] = fn
	}

	lo, hi := t.rowBounds()
	fields := t.Fields

	return rowgen.FromFunc(rowgen.GenConfig{
		Table:  t.Name,
		DepKey: t.depKey(),
		Rows: func(rng *rand.Rand, _ rowgen.State) (int, error) {
			return rowgen.Between(rng, lo, hi), nil
		},
		Emit: func(rng *rand.Rand, deps rowgen.Deps, _ rowgen.State) (rowgen.Row, error) {
			row := make(rowgen.Row, len(fields))
			// Declaration order keeps the rng sequence stable.
			for i, f := range fields {
				value, err := fakers[i](rng, f, deps)
				if err != nil {
					return nil, err
				}
				row[f.Name] = value
			}
			return row, nil
		},
	}), nil
}
