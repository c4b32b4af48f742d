package rowgen

import (
	"context"
	"math/rand"
	"time"

	"github.com/kbukum/synthkit/logger"
	"github.com/kbukum/synthkit/observability"
)

// WithLogging wraps a generator with per-visit logging: table, row count,
// duration, and failure status. The rng passes straight through, so
// wrapping never changes the emitted data.
func WithLogging(gen Generator, log *logger.Logger) Generator {
	return &loggingGen{inner: gen, log: log}
}

type loggingGen struct {
	inner Generator
	log   *logger.Logger
}

func (g *loggingGen) Table() string  { return g.inner.Table() }
func (g *loggingGen) DepKey() string { return depKeyOf(g.inner) }

func (g *loggingGen) Visit(rng *rand.Rand, deps Deps) (State, error) {
	return visitOf(g.inner, rng, deps)
}

func (g *loggingGen) NumRows(rng *rand.Rand, state State) (int, error) {
	n, err := g.inner.NumRows(rng, state)
	if err != nil {
		g.log.Error("row count failed", logger.ErrorFields(g.inner.Table(), err))
		return n, err
	}
	g.log.Debug("visit sized", logger.Fields(
		logger.FieldTable, g.inner.Table(),
		logger.FieldRows, n,
	))
	return n, nil
}

func (g *loggingGen) Emit(rng *rand.Rand, deps Deps, state State) (Row, error) {
	start := time.Now()
	row, err := g.inner.Emit(rng, deps, state)
	if err != nil {
		g.log.Error("emit failed", logger.Fields(
			logger.FieldTable, g.inner.Table(),
			logger.FieldDuration, time.Since(start).Milliseconds(),
			logger.FieldError, err.Error(),
		))
		return nil, err
	}
	return row, nil
}

// WithMetrics wraps a generator with metric recording: rows emitted and
// generator errors per table.
func WithMetrics(gen Generator, metrics *observability.Metrics) Generator {
	return &metricsGen{inner: gen, metrics: metrics}
}

type metricsGen struct {
	inner   Generator
	metrics *observability.Metrics
}

func (g *metricsGen) Table() string  { return g.inner.Table() }
func (g *metricsGen) DepKey() string { return depKeyOf(g.inner) }

func (g *metricsGen) Visit(rng *rand.Rand, deps Deps) (State, error) {
	return visitOf(g.inner, rng, deps)
}

func (g *metricsGen) NumRows(rng *rand.Rand, state State) (int, error) {
	n, err := g.inner.NumRows(rng, state)
	if err != nil {
		g.metrics.RecordError(context.Background(), g.inner.Table(), "num_rows")
	}
	return n, err
}

func (g *metricsGen) Emit(rng *rand.Rand, deps Deps, state State) (Row, error) {
	start := time.Now()
	row, err := g.inner.Emit(rng, deps, state)
	if err != nil {
		g.metrics.RecordError(context.Background(), g.inner.Table(), "emit")
		return nil, err
	}
	g.metrics.RecordRow(context.Background(), g.inner.Table(), time.Since(start))
	return row, nil
}

// WithTracing wraps a generator with an OpenTelemetry span per visit,
// named "{prefix}.{table}".
func WithTracing(gen Generator, prefix string) Generator {
	return &tracingGen{inner: gen, prefix: prefix}
}

type tracingGen struct {
	inner  Generator
	prefix string
}

func (g *tracingGen) Table() string  { return g.inner.Table() }
func (g *tracingGen) DepKey() string { return depKeyOf(g.inner) }

func (g *tracingGen) Visit(rng *rand.Rand, deps Deps) (State, error) {
	ctx, span := observability.StartSpan(context.Background(), g.prefix+"."+g.inner.Table())
	defer span.End()
	observability.SetSpanAttribute(ctx, "rowgen.table", g.inner.Table())

	state, err := visitOf(g.inner, rng, deps)
	if err != nil {
		observability.SetSpanError(ctx, err)
	}
	return state, err
}

func (g *tracingGen) NumRows(rng *rand.Rand, state State) (int, error) {
	return g.inner.NumRows(rng, state)
}

func (g *tracingGen) Emit(rng *rand.Rand, deps Deps, state State) (Row, error) {
	return g.inner.Emit(rng, deps, state)
}
