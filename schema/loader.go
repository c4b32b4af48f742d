package schema

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/validation"
)

// Load reads and validates a dataset definition from a YAML file.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NotFound("dataset file", path).WithCause(err)
	}
	return Parse(data)
}

// Parse reads and validates a dataset definition from YAML bytes.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, errors.InvalidSchema("not valid YAML").WithCause(err)
	}
	if err := validation.Validate(&ds); err != nil {
		return nil, errors.InvalidSchema("failed validation").WithCause(err)
	}
	if err := checkStructure(&ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// checkStructure verifies the cross-table properties the struct tags can't:
// unique table names, known parents, acyclic parent links, and well-formed
// field definitions.
func checkStructure(ds *Dataset) error {
	byName := make(map[string]*TableDef, len(ds.Tables))
	for i := range ds.Tables {
		t := &ds.Tables[i]
		if _, dup := byName[t.Name]; dup {
			return errors.InvalidSchema("duplicate table name").
				WithDetail("table", t.Name)
		}
		byName[t.Name] = t
	}

	for i := range ds.Tables {
		t := &ds.Tables[i]
		if t.Parent != "" {
			if _, ok := byName[t.Parent]; !ok {
				return errors.InvalidSchema("unknown parent table").
					WithDetail("table", t.Name).
					WithDetail("parent", t.Parent)
			}
		}
		if t.MaxRows > 0 && t.MaxRows < t.MinRows {
			return errors.InvalidSchema("max_rows below min_rows").
				WithDetail("table", t.Name)
		}
		for _, f := range t.Fields {
			if f.Kind == "ref" && f.Ref == "" {
				return errors.InvalidSchema("ref field missing ref target").
					WithDetail("table", t.Name).
					WithDetail("field", f.Name)
			}
		}
	}

	// Parent links must form a forest. Follow each chain to a root and
	// fail on revisits.
	for i := range ds.Tables {
		seen := map[string]bool{}
		cur := &ds.Tables[i]
		for cur.Parent != "" {
			if seen[cur.Name] {
				return errors.InvalidSchema(fmt.Sprintf("parent cycle through table %q", cur.Name))
			}
			seen[cur.Name] = true
			cur = byName[cur.Parent]
		}
	}

	return nil
}
