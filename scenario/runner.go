package scenario

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/pushgen/errors"
	"github.com/kbukum/pushgen/logger"
	"github.com/kbukum/pushgen/observability"
	"github.com/kbukum/pushgen/validation"
)

// Runner executes scenarios under a single run ID.
type Runner struct {
	log      *logger.Logger
	metrics  *observability.RunMetrics
	runID    string
	failFast bool
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger. Defaults to the "runner" component logger.
func WithLogger(l *logger.Logger) RunnerOption {
	return func(r *Runner) { r.log = l }
}

// WithMetrics records every run on m.
func WithMetrics(m *observability.RunMetrics) RunnerOption {
	return func(r *Runner) { r.metrics = m }
}

// WithRunID fixes the run ID instead of generating one.
func WithRunID(id string) RunnerOption {
	return func(r *Runner) { r.runID = id }
}

// WithFailFast stops at the first failing scenario.
func WithFailFast(on bool) RunnerOption {
	return func(r *Runner) { r.failFast = on }
}

// NewRunner creates a Runner. A configured run ID must be a UUID.
func NewRunner(opts ...RunnerOption) (*Runner, error) {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	id, err := validation.ParseUUID("run_id", r.runID)
	if err != nil {
		return nil, err
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	r.runID = id.String()
	if r.log == nil {
		r.log = logger.Get("runner")
	}
	return r, nil
}

// RunID returns the ID attached to every report of this runner.
func (r *Runner) RunID() string {
	return r.runID
}

// Run executes scenarios in order and returns their summary. The returned
// error is the first scenario failure, or the context error if ctx ended
// before all scenarios ran.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (Summary, error) {
	sum := Summary{RunID: r.runID, Reports: make([]Report, 0, len(scenarios))}
	ctx = logger.ContextWithRunID(ctx, r.runID)

	ctx, suite := observability.StartSpan(ctx, observability.SpanSuiteRun)
	defer suite.End()
	observability.SetSpanAttribute(ctx, observability.AttrRunID, r.runID)

	var firstErr error
	for _, s := range scenarios {
		if err := ctx.Err(); err != nil {
			observability.SetSpanError(ctx, err)
			return sum, errors.ScenarioFailed(s.Name(), err)
		}

		rep, err := r.runOne(ctx, s)
		sum.Reports = append(sum.Reports, rep)
		if err == nil {
			sum.Passed++
			continue
		}
		sum.Failed++
		if firstErr == nil {
			firstErr = err
		}
		if r.failFast {
			break
		}
	}

	observability.SetSpanAttribute(ctx, "scenarios.failed", sum.Failed)
	if firstErr != nil {
		observability.SetSpanError(ctx, firstErr)
	}
	r.log.WithContext(ctx).Info("run finished", logger.Fields(
		"passed", sum.Passed,
		"failed", sum.Failed,
	))
	return sum, firstErr
}

func (r *Runner) runOne(ctx context.Context, s Scenario) (rep Report, err error) {
	rc := observability.NewRunContext(r.runID, s.Name(), r.metrics)
	ctx = logger.ContextWithScenario(ctx, s.Name())
	ctx, span := rc.StartSpan(ctx)
	if sc := span.SpanContext(); sc.IsValid() {
		ctx = logger.ContextWithTrace(ctx, sc.TraceID().String(), sc.SpanID().String())
	}

	defer func() {
		if p := recover(); p != nil {
			err = errors.Internal(nil).WithDetail("panic", p).WithDetail(logger.FieldScenario, s.Name())
		}
		rep = r.finish(ctx, span, rep, err)
	}()

	r.log.WithContext(ctx).Debug("scenario started")
	return s.Run(ctx)
}

// finish completes the report from the RunContext stored in ctx, ends the
// span, records metrics and logs the outcome.
func (r *Runner) finish(ctx context.Context, span trace.Span, rep Report, err error) Report {
	rc := observability.RunContextFromContext(ctx)
	if rep.Scenario == "" {
		rep.Scenario = rc.Scenario
	}
	if rep.Duration == 0 {
		rep.Duration = rc.Duration()
	}
	var code string
	if err != nil {
		code = string(errors.CodeOf(err))
	}
	rc.End(ctx, span, rep.Result.String(), rep.Values, err, code)
	r.logReport(r.log.WithContext(ctx), rep, err)
	return rep
}

func (r *Runner) logReport(log *logger.Logger, rep Report, err error) {
	fields := logger.MergeWithDuration(logger.Fields(
		logger.FieldResult, rep.Result.String(),
		logger.FieldValues, rep.Values,
		"runs", rep.Runs,
	), rep.Duration)
	for k, v := range rep.Details {
		fields[k] = v
	}

	if err == nil {
		log.Info("scenario passed", fields)
		return
	}
	fields[logger.FieldStatus] = string(errors.CodeOf(err))
	log.WithError(err).Error("scenario failed", fields)
}
