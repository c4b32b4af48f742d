package rowgen

// Row is one emitted record: a schema-free field-to-value mapping.
// The engine never inspects a row's contents; it only stores rows in the
// dependency context for descendant generators. Treat rows as immutable
// once emitted.
type Row map[string]any

// Clone returns a shallow copy of the row.
func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Deps is the dependency context: the most recently emitted row of each
// ancestor generator on the current traversal path, keyed by dependency key.
type Deps map[string]Row

// With returns a new context with key bound to row. The receiver is never
// mutated; sibling branches and earlier rows keep their own view.
func (d Deps) With(key string, row Row) Deps {
	out := make(Deps, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	out[key] = row
	return out
}

// Get retrieves the most recent row emitted under the given dependency key.
func (d Deps) Get(key string) (Row, bool) {
	row, ok := d[key]
	return row, ok
}
