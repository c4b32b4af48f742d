// Package schema turns declarative YAML dataset definitions into runnable
// rowgen graphs.
//
// A dataset file names its tables, their parent links, per-visit row-count
// ranges, and per-field faker kinds. Compile resolves each field kind
// against a faker Registry and produces the generator graph that rowgen
// walks:
//
//	ds, err := schema.Load("dataset.yml")
//	node, err := schema.Compile(ds, schema.DefaultRegistry())
//	tables, err := rowgen.Generate(node, rowgen.WithSeed(42)).Tables()
package schema
