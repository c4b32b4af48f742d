package rowgen

import (
	"reflect"
	"testing"
)

func TestTables_FirstSeenOrder(t *testing.T) {
	tables := NewTables()
	tables.Append("users", Row{"id": 1})
	tables.Append("orders", Row{"id": 10})
	tables.Append("users", Row{"id": 2})

	if got := tables.Names(); !reflect.DeepEqual(got, []string{"users", "orders"}) {
		t.Fatalf("expected first-seen order, got %v", got)
	}

	rows, ok := tables.Get("users")
	if !ok || len(rows) != 2 {
		t.Fatalf("expected 2 user rows, got %v", rows)
	}
	if rows[0]["id"] != 1 || rows[1]["id"] != 2 {
		t.Fatalf("rows out of emission order: %v", rows)
	}

	if tables.Len() != 2 || tables.TotalRows() != 3 {
		t.Fatalf("expected 2 tables / 3 rows, got %d / %d", tables.Len(), tables.TotalRows())
	}
}

func TestGroupItems(t *testing.T) {
	tables := GroupItems([]Item{
		{Table: "a", Row: Row{"n": 1}},
		{Table: "b", Row: Row{"n": 2}},
		{Table: "a", Row: Row{"n": 3}},
	})

	if got := tables.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("unexpected order %v", got)
	}
	if _, ok := tables.Get("missing"); ok {
		t.Fatal("Get reported a table that was never appended")
	}
}
