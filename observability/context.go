package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RunContext holds observability context for one scenario run.
type RunContext struct {
	RunID     string
	Scenario  string
	StartTime time.Time
	Metrics   *RunMetrics
}

// NewRunContext creates a run context.
// If metrics is nil, metric recording is silently skipped.
func NewRunContext(runID, scenario string, metrics *RunMetrics) *RunContext {
	return &RunContext{
		RunID:     runID,
		Scenario:  scenario,
		StartTime: time.Now(),
		Metrics:   metrics,
	}
}

type runContextKey struct{}

// WithRunContext stores a RunContext in the context.
func WithRunContext(ctx context.Context, rc *RunContext) context.Context {
	return context.WithValue(ctx, runContextKey{}, rc)
}

// RunContextFromContext retrieves the RunContext from context, or nil.
func RunContextFromContext(ctx context.Context) *RunContext {
	if rc, ok := ctx.Value(runContextKey{}).(*RunContext); ok {
		return rc
	}
	return nil
}

// StartSpan starts the scenario span and stores rc in the returned context.
func (rc *RunContext) StartSpan(ctx context.Context) (context.Context, trace.Span) {
	ctx, span := StartSpan(WithRunContext(ctx, rc), SpanScenarioRun)
	span.SetAttributes(
		attribute.String(AttrRunID, rc.RunID),
		attribute.String(AttrScenario, rc.Scenario),
	)
	return ctx, span
}

// End ends the span and records the run. code is the error code of err, or
// empty on success.
func (rc *RunContext) End(ctx context.Context, span trace.Span, result string, values int64, err error, code string) {
	duration := time.Since(rc.StartTime)

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorMessage, err.Error()))
	}

	span.SetAttributes(
		attribute.String(AttrResult, result),
		attribute.Int64(AttrValues, values),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	span.End()

	if rc.Metrics != nil {
		rc.Metrics.RecordRun(ctx, rc.Scenario, result, values, duration)
		if err != nil {
			rc.Metrics.RecordError(ctx, rc.Scenario, code)
		}
	}
}

// Duration returns the elapsed time since the run started.
func (rc *RunContext) Duration() time.Duration {
	return time.Since(rc.StartTime)
}
