package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ToolName is the name of the tool.
	ToolName string
	// ToolVersion is the version of the tool.
	ToolVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(toolName string) MeterConfig {
	return MeterConfig{
		ToolName:    toolName,
		ToolVersion: "1.0.0",
		Environment: "development",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		Interval:    15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ToolName, config.ToolVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds OpenTelemetry metric instruments for generation runs.
type Metrics struct {
	rowTotal    metric.Int64Counter
	emitLatency metric.Float64Histogram
	runDuration metric.Float64Histogram
	errorTotal  metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	rowTotal, err := meter.Int64Counter("rowgen.rows.total",
		metric.WithDescription("Total number of rows emitted"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rowgen.rows.total counter: %w", err)
	}

	emitLatency, err := meter.Float64Histogram("rowgen.emit.duration",
		metric.WithDescription("Duration of single row emissions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rowgen.emit.duration histogram: %w", err)
	}

	runDuration, err := meter.Float64Histogram("rowgen.run.duration",
		metric.WithDescription("Duration of whole generation runs in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rowgen.run.duration histogram: %w", err)
	}

	errorTotal, err := meter.Int64Counter("rowgen.errors.total",
		metric.WithDescription("Total generator errors by table and capability"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rowgen.errors.total counter: %w", err)
	}

	return &Metrics{
		rowTotal:    rowTotal,
		emitLatency: emitLatency,
		runDuration: runDuration,
		errorTotal:  errorTotal,
	}, nil
}

// RecordRow records one emitted row for a table.
func (m *Metrics) RecordRow(ctx context.Context, table string, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("table", table))
	m.rowTotal.Add(ctx, 1, attrs)
	m.emitLatency.Record(ctx, duration.Seconds(), attrs)
}

// RecordRun records a completed generation run.
func (m *Metrics) RecordRun(ctx context.Context, status string, rows int64, duration time.Duration) {
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("status", status),
		attribute.Int64("rows", rows),
	))
}

// RecordError records a generator error by table and capability.
func (m *Metrics) RecordError(ctx context.Context, table, capability string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("table", table),
		attribute.String("capability", capability),
	))
}
