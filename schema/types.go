package schema

// Dataset is a declarative dataset definition.
type Dataset struct {
	// Name identifies the dataset.
	Name string `yaml:"name" validate:"required"`
	// Seed, when set, fixes the rng seed for reproducible output.
	Seed *int64 `yaml:"seed,omitempty"`
	// Tables lists the table definitions in declaration order.
	Tables []TableDef `yaml:"tables" validate:"required,min=1,dive"`
}

// TableDef defines one generated table.
type TableDef struct {
	// Name is the output table name.
	Name string `yaml:"name" validate:"required"`
	// DepKey overrides the key under which this table's rows are exposed
	// to child tables. Defaults to Name.
	DepKey string `yaml:"dep_key,omitempty"`
	// Parent names the table this one depends on. Empty means root. Child
	// tables are visited once per parent row.
	Parent string `yaml:"parent,omitempty"`
	// MinRows and MaxRows bound the per-visit row count (inclusive).
	// Both zero means exactly one row per visit.
	MinRows int `yaml:"min_rows,omitempty" validate:"gte=0"`
	MaxRows int `yaml:"max_rows,omitempty" validate:"gte=0"`
	// Fields lists the row fields in declaration order.
	Fields []FieldDef `yaml:"fields" validate:"required,min=1,dive"`
}

// FieldDef defines one row field and the faker kind that fills it.
type FieldDef struct {
	// Name is the field name in the emitted row.
	Name string `yaml:"name" validate:"required"`
	// Kind is the faker registry key: uuid, name, first_name, last_name,
	// email, word, sentence, int, float, bool, timestamp, oneof, ref.
	Kind string `yaml:"kind" validate:"required"`
	// Min and Max bound numeric kinds (int, float).
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`
	// Choices feeds the oneof kind.
	Choices []string `yaml:"choices,omitempty"`
	// Ref points a ref field at a parent row field, as "dep_key.field".
	Ref string `yaml:"ref,omitempty"`
	// Words sizes the sentence kind.
	Words int `yaml:"words,omitempty" validate:"gte=0"`
	// Prob is the true-probability of the bool kind (default 0.5).
	Prob *float64 `yaml:"prob,omitempty"`
}

// depKey resolves the effective dependency key of a table.
func (t *TableDef) depKey() string {
	if t.DepKey != "" {
		return t.DepKey
	}
	return t.Name
}

// rowBounds resolves the effective row-count range of a table.
func (t *TableDef) rowBounds() (int, int) {
	lo, hi := t.MinRows, t.MaxRows
	if lo == 0 && hi == 0 {
		return 1, 1
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}
