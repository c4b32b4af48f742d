// Package observability provides OpenTelemetry tracing and metrics
// integration for long-running generation jobs.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("synthgen"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, "generate.dataset")
//	defer span.End()
//
// Metrics:
//
//	cfg := observability.DefaultMeterConfig("synthgen")
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("synthgen"))
//	metrics.RecordRow(ctx, "users", duration)
package observability
