// Package observability wires OpenTelemetry tracing and metrics for pushgen
// runs.
//
// Both providers export over OTLP HTTP when enabled. A disabled config yields
// a provider that records nothing and leaves the otel globals alone.
//
//	tp, err := observability.InitTracer(ctx, cfg.Observability.TracerConfig(name, ver, env))
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, &meterCfg)
//	defer mp.Shutdown(ctx)
//
// Each scenario run gets a RunContext that opens a span and records
// RunMetrics when it ends:
//
//	rc := observability.NewRunContext(runID, "dedup", metrics)
//	ctx, span := rc.StartSpan(ctx)
//	rc.End(ctx, span, "complete", values, nil, "")
package observability
