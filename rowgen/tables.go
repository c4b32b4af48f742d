package rowgen

// Tables groups emitted rows by table, preserving first-seen table order.
// Because traversal emits a parent row before recursing, a parent table is
// always ordered before any table whose rows only ever appeared as its
// descendants. That makes the iteration order safe for foreign-key-aware
// consumers (insert parents first).
type Tables struct {
	order []string
	rows  map[string][]Row
}

// NewTables creates an empty collection.
func NewTables() *Tables {
	return &Tables{rows: make(map[string][]Row)}
}

// GroupItems collects a slice of stream items in emission order.
func GroupItems(items []Item) *Tables {
	t := NewTables()
	for _, item := range items {
		t.Append(item.Table, item.Row)
	}
	return t
}

// Append adds a row to the named table, registering the table on first use.
func (t *Tables) Append(table string, row Row) {
	if _, ok := t.rows[table]; !ok {
		t.order = append(t.order, table)
	}
	t.rows[table] = append(t.rows[table], row)
}

// Names returns the table names in first-seen order.
func (t *Tables) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Get returns the rows of a table in emission order.
func (t *Tables) Get(table string) ([]Row, bool) {
	rows, ok := t.rows[table]
	return rows, ok
}

// Len returns the number of tables.
func (t *Tables) Len() int {
	return len(t.order)
}

// TotalRows returns the number of rows across all tables.
func (t *Tables) TotalRows() int {
	n := 0
	for _, rows := range t.rows {
		n += len(rows)
	}
	return n
}
