package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/pushgen/errors"
	"github.com/kbukum/pushgen/generator"
	"github.com/kbukum/pushgen/logger"
	"github.com/kbukum/pushgen/observability"
)

type fakeScenario struct {
	name string
	run  func(context.Context) (Report, error)
	hits int
}

func (f *fakeScenario) Name() string { return f.name }

func (f *fakeScenario) Run(ctx context.Context) (Report, error) {
	f.hits++
	return f.run(ctx)
}

func passing(name string, values int64) *fakeScenario {
	return &fakeScenario{name: name, run: func(context.Context) (Report, error) {
		return Report{Scenario: name, Result: generator.Complete, Values: values}, nil
	}}
}

func failing(name string) *fakeScenario {
	return &fakeScenario{name: name, run: func(context.Context) (Report, error) {
		return Report{Scenario: name, Result: generator.Stopped}, errors.Mismatch(name, 1, 2)
	}}
}

type harness struct {
	spans  *tracetest.InMemoryExporter
	reader *sdkmetric.ManualReader
	logs   *bytes.Buffer
	opts   []RunnerOption
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	spans := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(spans))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := observability.NewRunMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
		_ = mp.Shutdown(context.Background())
		otel.SetTracerProvider(prev)
	})

	logs := &bytes.Buffer{}
	log := logger.NewWithWriter(&logger.Config{Level: "debug", Format: "json"}, "pushgen", logs)
	return &harness{
		spans:  spans,
		reader: reader,
		logs:   logs,
		opts:   []RunnerOption{WithLogger(log), WithMetrics(metrics)},
	}
}

func (h *harness) runner(t *testing.T, extra ...RunnerOption) *Runner {
	t.Helper()
	r, err := NewRunner(append(h.opts, extra...)...)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func (h *harness) logLines(t *testing.T) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, raw := range strings.Split(strings.TrimSpace(h.logs.String()), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(raw), &m); err != nil {
			t.Fatalf("bad log line %q: %v", raw, err)
		}
		lines = append(lines, m)
	}
	return lines
}

func (h *harness) counter(t *testing.T, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := h.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok && m.Name == name {
				for _, dp := range sum.DataPoints {
					total += dp.Value
				}
			}
		}
	}
	return total
}

func TestNewRunner_RunID(t *testing.T) {
	r, err := NewRunner()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(r.RunID()); err != nil {
		t.Errorf("generated run ID is not a UUID: %q", r.RunID())
	}

	fixed := uuid.New().String()
	r, err = NewRunner(WithRunID(fixed))
	if err != nil || r.RunID() != fixed {
		t.Errorf("expected fixed run ID, got %q %v", r.RunID(), err)
	}

	_, err = NewRunner(WithRunID("not-a-uuid"))
	if !errors.Is(err, errors.ErrCodeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestRunner_AllPass(t *testing.T) {
	h := newHarness(t)
	r := h.runner(t)

	sum, err := r.Run(context.Background(), []Scenario{passing("a", 3), passing("b", 4)})
	if err != nil {
		t.Fatal(err)
	}
	if !sum.OK() || sum.Passed != 2 || len(sum.Reports) != 2 || sum.RunID != r.RunID() {
		t.Errorf("unexpected summary %+v", sum)
	}

	// two scenario spans plus the suite span
	spans := h.spans.GetSpans()
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d", len(spans))
	}
	suite := spans[len(spans)-1]
	if suite.Name != observability.SpanSuiteRun {
		t.Errorf("last span = %q", suite.Name)
	}
	for _, s := range spans[:2] {
		if s.Parent.SpanID() != suite.SpanContext.SpanID() {
			t.Errorf("scenario span %q is not a child of the suite span", s.Name)
		}
	}

	if got := h.counter(t, "pushgen.runs"); got != 2 {
		t.Errorf("pushgen.runs = %d", got)
	}
	if got := h.counter(t, "pushgen.values"); got != 7 {
		t.Errorf("pushgen.values = %d", got)
	}

	var passed int
	for _, l := range h.logLines(t) {
		if l["message"] == "scenario passed" {
			passed++
			if l[logger.FieldRunID] != r.RunID() || l[logger.FieldTraceID] == nil {
				t.Errorf("log line missing run or trace id: %v", l)
			}
		}
	}
	if passed != 2 {
		t.Errorf("expected 2 'scenario passed' lines, got %d", passed)
	}
}

func TestRunner_FailureContinues(t *testing.T) {
	h := newHarness(t)
	bad, after := failing("bad"), passing("after", 1)

	sum, err := h.runner(t).Run(context.Background(), []Scenario{bad, after})
	if !errors.Is(err, errors.ErrCodeResultMismatch) {
		t.Fatalf("expected RESULT_MISMATCH, got %v", err)
	}
	if after.hits != 1 || sum.Failed != 1 || sum.Passed != 1 || sum.OK() {
		t.Errorf("unexpected summary %+v", sum)
	}
	if got := h.counter(t, "pushgen.errors"); got != 1 {
		t.Errorf("pushgen.errors = %d", got)
	}
}

func TestRunner_FailFast(t *testing.T) {
	h := newHarness(t)
	bad, after := failing("bad"), passing("after", 1)

	sum, err := h.runner(t, WithFailFast(true)).Run(context.Background(), []Scenario{bad, after})
	if err == nil {
		t.Fatal("expected error")
	}
	if after.hits != 0 || len(sum.Reports) != 1 {
		t.Errorf("fail fast should skip later scenarios, got %+v", sum)
	}
}

func TestRunner_PanicBecomesInternalError(t *testing.T) {
	h := newHarness(t)
	boom := &fakeScenario{name: "boom", run: func(context.Context) (Report, error) {
		panic("kaboom")
	}}

	sum, err := h.runner(t).Run(context.Background(), []Scenario{boom})
	if !errors.Is(err, errors.ErrCodeInternal) {
		t.Fatalf("expected INTERNAL_ERROR, got %v", err)
	}
	if sum.Reports[0].Scenario != "boom" {
		t.Errorf("report should name the scenario, got %+v", sum.Reports[0])
	}
}

func TestRunner_RunContextFillsReport(t *testing.T) {
	h := newHarness(t)
	r := h.runner(t)

	var seen *observability.RunContext
	bare := &fakeScenario{name: "bare", run: func(ctx context.Context) (Report, error) {
		seen = observability.RunContextFromContext(ctx)
		time.Sleep(time.Millisecond)
		return Report{}, nil
	}}

	sum, err := r.Run(context.Background(), []Scenario{bare})
	if err != nil {
		t.Fatal(err)
	}
	if seen == nil || seen.RunID != r.RunID() || seen.Scenario != "bare" {
		t.Fatalf("scenario did not see its run context: %+v", seen)
	}
	rep := sum.Reports[0]
	if rep.Scenario != "bare" || rep.Duration < time.Millisecond {
		t.Errorf("report not completed from run context: %+v", rep)
	}
}

func TestRunner_ContextCancelled(t *testing.T) {
	h := newHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	first := passing("first", 1)
	_, err := h.runner(t).Run(ctx, []Scenario{first})
	if !errors.Is(err, errors.ErrCodeScenarioFailed) {
		t.Fatalf("expected SCENARIO_FAILED, got %v", err)
	}
	if first.hits != 0 {
		t.Error("no scenario should run after cancellation")
	}
}

func TestRunner_Builtin(t *testing.T) {
	h := newHarness(t)
	sum, err := h.runner(t).Run(context.Background(), Builtin(smallWorkload()))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Passed != len(Names()) {
		t.Errorf("passed %d of %d", sum.Passed, len(Names()))
	}
}
