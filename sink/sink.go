package sink

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/rowgen"
)

// Sink writes a collected set of tables somewhere durable.
type Sink interface {
	// Name identifies the sink in logs and errors.
	Name() string
	// Write persists all tables. Partial writes after an error are the
	// destination's concern; generation itself is already complete by the
	// time a sink runs.
	Write(ctx context.Context, tables *rowgen.Tables) error
}

// Config selects and configures an output sink.
type Config struct {
	// Format is the output format.
	Format string `yaml:"format" mapstructure:"format" validate:"omitempty,oneof=csv jsonl sql"`
	// Dir is the output directory for file-based formats.
	Dir string `yaml:"dir" mapstructure:"dir"`
	// Driver is the database/sql driver name for the sql format.
	Driver string `yaml:"driver" mapstructure:"driver"`
	// DSN is the database connection string for the sql format.
	DSN string `yaml:"dsn" mapstructure:"dsn"`
}

// ApplyDefaults applies default values to sink configuration.
func (c *Config) ApplyDefaults() {
	if c.Format == "" {
		c.Format = "csv"
	}
	if c.Dir == "" {
		c.Dir = "./out"
	}
	if c.Driver == "" {
		c.Driver = "sqlite"
	}
}

// New builds the sink selected by cfg. For the sql format the driver must
// be registered by the caller (blank import).
func New(cfg Config) (Sink, error) {
	cfg.ApplyDefaults()
	switch cfg.Format {
	case "csv":
		return NewCSV(cfg.Dir), nil
	case "jsonl":
		return NewJSONL(cfg.Dir), nil
	case "sql":
		if cfg.DSN == "" {
			return nil, errors.InvalidInput("sql sink requires a dsn")
		}
		db, err := sql.Open(cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, errors.SinkFailed("sql").WithCause(err)
		}
		return NewSQL(db), nil
	default:
		return nil, errors.InvalidInput(fmt.Sprintf("unknown sink format %q", cfg.Format))
	}
}

// columnsOf returns the sorted union of field names across all rows of a
// table. Rows are schema-free, so late rows may carry fields early rows
// don't.
func columnsOf(rows []rowgen.Row) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	return cols
}
