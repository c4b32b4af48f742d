// Command synthgen generates a synthetic dataset from a declarative YAML
// schema and writes it to CSV, JSON-lines, or a SQL database.
//
//	synthgen -schema dataset.yml -seed 42 -format csv -out ./out
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kbukum/synthkit/config"
	"github.com/kbukum/synthkit/logger"
	"github.com/kbukum/synthkit/observability"
	"github.com/kbukum/synthkit/rowgen"
	"github.com/kbukum/synthkit/schema"
	"github.com/kbukum/synthkit/sink"
	"github.com/kbukum/synthkit/validation"
	"github.com/kbukum/synthkit/version"
)

// appConfig is the synthgen tool configuration.
type appConfig struct {
	config.ToolConfig `yaml:",inline" mapstructure:",squash"`

	// Output selects and configures the sink.
	Output sink.Config `yaml:"output" mapstructure:"output"`
	// Buffer is the generation stream buffer size.
	Buffer int `yaml:"buffer" mapstructure:"buffer" validate:"gte=0"`
}

func (c *appConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "synthgen"
	}
	c.ToolConfig.ApplyDefaults()
	c.Output.ApplyDefaults()
	if c.Buffer == 0 {
		c.Buffer = rowgen.DefaultBufferSize
	}
}

func (c *appConfig) Validate() error {
	if err := c.ToolConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

func main() {
	var (
		configPath  = flag.String("config", "", "path to config.yml (optional)")
		schemaPath  = flag.String("schema", "", "path to the dataset schema YAML (required)")
		seed        = flag.Int64("seed", 0, "rng seed for reproducible output")
		seedSet     = false
		format      = flag.String("format", "", "output format: csv, jsonl, or sql")
		outDir      = flag.String("out", "", "output directory for file formats")
		dsn         = flag.String("dsn", "", "database DSN for the sql format")
		trace       = flag.Bool("trace", false, "export OpenTelemetry traces and metrics")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	if *showVersion {
		fmt.Println("synthgen", version.Short())
		return
	}
	if *schemaPath == "" {
		fmt.Fprintln(os.Stderr, "synthgen: -schema is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := &appConfig{}
	var loadOpts []config.LoaderOption
	if *configPath != "" {
		loadOpts = append(loadOpts, config.WithConfigFile(*configPath))
	}
	if err := config.Load("synthgen", cfg, loadOpts...); err != nil {
		fmt.Fprintln(os.Stderr, "synthgen: loading config:", err)
		os.Exit(1)
	}
	// Flags win over file config.
	if *format != "" {
		cfg.Output.Format = *format
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *dsn != "" {
		cfg.Output.DSN = *dsn
		if *format == "" {
			cfg.Output.Format = "sql"
		}
	}

	logger.Init(cfg.Logging)
	log := logger.WithComponent("synthgen")

	if err := run(context.Background(), cfg, *schemaPath, *seed, seedSet, *trace, log); err != nil {
		log.Error("run failed", logger.ErrorFields("generate", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *appConfig, schemaPath string, seed int64, seedSet, trace bool, log *logger.Logger) error {
	runID := uuid.NewString()
	start := time.Now()

	var metrics *observability.Metrics
	if trace {
		tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig(cfg.Name))
		if err != nil {
			return err
		}
		defer tp.Shutdown(ctx)

		meterCfg := observability.DefaultMeterConfig(cfg.Name)
		mp, err := observability.InitMeter(ctx, &meterCfg)
		if err != nil {
			return err
		}
		defer mp.Shutdown(ctx)

		metrics, err = observability.NewMetrics(observability.Meter(cfg.Name))
		if err != nil {
			return err
		}

		spanCtx, span := observability.StartSpan(ctx, observability.SpanGenerate)
		ctx = spanCtx
		defer span.End()
	}

	ds, err := schema.Load(schemaPath)
	if err != nil {
		return err
	}
	node, err := schema.Compile(ds, schema.DefaultRegistry())
	if err != nil {
		return err
	}

	opts := []rowgen.Option{
		rowgen.WithContext(ctx),
		rowgen.WithBufferSize(cfg.Buffer),
		rowgen.WithLogger(log),
	}
	switch {
	case seedSet:
		opts = append(opts, rowgen.WithSeed(seed))
	case ds.Seed != nil:
		opts = append(opts, rowgen.WithSeed(*ds.Seed))
	}

	log.Info("generating dataset", logger.Fields(
		logger.FieldRunID, runID,
		logger.FieldSchema, ds.Name,
	))

	tables, err := rowgen.Generate(node, opts...).Tables()
	if err != nil {
		if metrics != nil {
			metrics.RecordRun(ctx, "error", 0, time.Since(start))
		}
		return err
	}

	out, err := sink.New(cfg.Output)
	if err != nil {
		return err
	}
	if err := out.Write(ctx, tables); err != nil {
		return err
	}

	if metrics != nil {
		metrics.RecordRun(ctx, "ok", int64(tables.TotalRows()), time.Since(start))
	}
	log.Info("dataset written", logger.Fields(
		logger.FieldRunID, runID,
		logger.FieldSink, out.Name(),
		logger.FieldTables, tables.Len(),
		logger.FieldRows, tables.TotalRows(),
		logger.FieldDuration, time.Since(start).Milliseconds(),
	))
	return nil
}
