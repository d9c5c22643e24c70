package scenario

import (
	"context"
	"slices"
	"time"

	"github.com/kbukum/pushgen/errors"
	"github.com/kbukum/pushgen/generator"
	"github.com/kbukum/pushgen/pipeline"
)

// Built-in scenario names.
const (
	NameDedup         = "dedup"
	NameFlattenResume = "flatten-resume"
	NameTakeSkip      = "take-skip"
	NameEquivalence   = "equivalence"
	NameWindowing     = "windowing"
)

// Names lists the built-in scenarios in execution order.
func Names() []string {
	return []string{NameDedup, NameFlattenResume, NameTakeSkip, NameEquivalence, NameWindowing}
}

// Builtin returns every built-in scenario sized by w.
func Builtin(w Workload) []Scenario {
	return []Scenario{
		&dedupScenario{w: w},
		&flattenScenario{w: w},
		&takeSkipScenario{w: w},
		&equivalenceScenario{w: w},
		&windowingScenario{w: w},
	}
}

// Select returns the scenarios of all named in names, in the order given.
// An empty names selects all.
func Select(all []Scenario, names []string) ([]Scenario, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Scenario, len(all))
	for _, s := range all {
		byName[s.Name()] = s
	}
	selected := make([]Scenario, 0, len(names))
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			return nil, errors.InvalidConfig("unknown scenario "+n, nil).
				WithDetail("known", Names())
		}
		selected = append(selected, s)
	}
	return selected, nil
}

// --- dedup ---

// dedupScenario checks that Dedup yields each run of equal values once and
// keeps its last-seen value across stops.
type dedupScenario struct{ w Workload }

func (s *dedupScenario) Name() string { return NameDedup }

func (s *dedupScenario) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	rep := Report{Scenario: s.Name()}

	row := s.w.MakeRow()
	got, runs, res, err := drainInSteps(ctx, generator.Dedup(generator.FromSlice(row)), s.w.StopEvery)
	rep.Result, rep.Runs, rep.Values = res, runs, int64(len(got))
	if err != nil {
		return rep, errors.ScenarioFailed(s.Name(), err)
	}

	want := make([]int, s.w.Distinct())
	for i := range want {
		want[i] = i
	}
	if i := firstDiff(want, got, equal[int]); i >= 0 {
		return rep, errors.Mismatch(s.Name(), len(want), len(got)).WithDetail("first_diff", i)
	}

	twice := generator.ToSlice(generator.Dedup(generator.Dedup(generator.FromSlice(row))))
	if !slices.Equal(twice, want) {
		return rep, errors.Mismatch(s.Name(), "idempotent dedup", len(twice)).WithDetail("check", "idempotence")
	}

	rep.Duration = time.Since(start)
	rep.Details = map[string]any{"input": len(row), "distinct": len(got)}
	return rep, nil
}

// --- flatten-resume ---

// flattenScenario checks that a flattened generator stopped every StopEvery
// values resumes inside the current inner sequence without loss.
type flattenScenario struct{ w Workload }

func (s *flattenScenario) Name() string { return NameFlattenResume }

func (s *flattenScenario) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	rep := Report{Scenario: s.Name()}

	data := s.w.MakeData()
	got, runs, res, err := drainInSteps(ctx, generator.FlattenSlices(generator.FromSlice(data)), s.w.StopEvery)
	rep.Result, rep.Runs, rep.Values = res, runs, int64(len(got))
	if err != nil {
		return rep, errors.ScenarioFailed(s.Name(), err)
	}

	want := slices.Concat(data...)
	if i := firstDiff(want, got, equal[int]); i >= 0 {
		return rep, errors.Mismatch(s.Name(), len(want), len(got)).WithDetail("first_diff", i)
	}
	// Every stopped run delivers exactly StopEvery values; the last run
	// delivers the remainder, possibly none.
	if wantRuns := len(want)/s.w.StopEvery + 1; runs != wantRuns {
		return rep, errors.Mismatch(s.Name(), wantRuns, runs).WithDetail("check", "runs")
	}

	rep.Duration = time.Since(start)
	rep.Details = map[string]any{"rows": len(data), "stop_every": s.w.StopEvery}
	return rep, nil
}

// --- take-skip ---

// takeSkipScenario checks counts and results of Take and Skip. Each case is
// run once to completion, where Take must report Stopped exactly when its
// quota is below the source length, and once in steps, where the quota must
// span runs.
type takeSkipScenario struct{ w Workload }

func (s *takeSkipScenario) Name() string { return NameTakeSkip }

type takeSkipCase struct {
	name   string
	build  func() generator.Generator[int]
	want   []int
	result generator.Result
}

func (s *takeSkipScenario) cases() []takeSkipCase {
	n := s.w.Distinct()
	half := n / 2
	src := func() generator.Generator[int] { return generator.Range(0, n) }
	seq := func(from, to int) []int {
		out := make([]int, 0, max(to-from, 0))
		for i := from; i < to; i++ {
			out = append(out, i)
		}
		return out
	}
	takeResult := func(quota, available int) generator.Result {
		if quota < available {
			return generator.Stopped
		}
		return generator.Complete
	}
	return []takeSkipCase{
		{"take-half", func() generator.Generator[int] { return generator.Take(src(), half) },
			seq(0, half), takeResult(half, n)},
		{"take-all", func() generator.Generator[int] { return generator.Take(src(), n) },
			seq(0, n), generator.Complete},
		{"take-more", func() generator.Generator[int] { return generator.Take(src(), n+5) },
			seq(0, n), generator.Complete},
		{"take-zero", func() generator.Generator[int] { return generator.Take(src(), 0) },
			nil, generator.Stopped},
		{"skip-half", func() generator.Generator[int] { return generator.Skip(src(), half) },
			seq(half, n), generator.Complete},
		{"skip-all", func() generator.Generator[int] { return generator.Skip(src(), n+1) },
			nil, generator.Complete},
		{"skip-take", func() generator.Generator[int] { return generator.Take(generator.Skip(src(), half), 3) },
			seq(half, min(half+3, n)), takeResult(3, n-half)},
	}
}

func (s *takeSkipScenario) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	rep := Report{Scenario: s.Name(), Result: generator.Complete}
	checked := make([]string, 0)

	for _, tc := range s.cases() {
		got, res := drainOnce(tc.build())
		rep.Values += int64(len(got))
		rep.Runs++
		if !slices.Equal(got, tc.want) {
			return rep, errors.Mismatch(s.Name(), len(tc.want), len(got)).WithDetail("case", tc.name)
		}
		if res != tc.result {
			return rep, errors.Mismatch(s.Name(), tc.result.String(), res.String()).WithDetail("case", tc.name)
		}

		got, runs, _, err := drainInSteps(ctx, tc.build(), s.w.StopEvery)
		rep.Values += int64(len(got))
		rep.Runs += runs
		if err != nil {
			return rep, errors.ScenarioFailed(s.Name(), err).WithDetail("case", tc.name)
		}
		if !slices.Equal(got, tc.want) {
			return rep, errors.Mismatch(s.Name(), len(tc.want), len(got)).WithDetail("case", tc.name+"/steps")
		}
		checked = append(checked, tc.name)
	}

	rep.Duration = time.Since(start)
	rep.Details = map[string]any{"cases": checked}
	return rep, nil
}

// --- equivalence ---

// equivalenceScenario runs dedup, flatten, filter even and multiply by three
// through the push generator, the pull pipeline and a plain loop, and
// compares the int32 wrapping sums and value counts. It also checks that
// Chain and Concat over a row and a range fold to the same sum.
type equivalenceScenario struct{ w Workload }

func (s *equivalenceScenario) Name() string { return NameEquivalence }

func even(x int) bool { return x%2 == 0 }

func triple(x int) int32 { return int32(x * 3) }

func addInt(acc int32, x int) int32 { return acc + int32(x) }

func (s *equivalenceScenario) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	rep := Report{Scenario: s.Name()}
	data := s.w.MakeData()

	var pushSum int32
	g := generator.Map(
		generator.Filter(
			generator.FlattenSlices(generator.DedupFunc(generator.FromSlice(data), slices.Equal[[]int])),
			even,
		),
		triple,
	)
	rep.Result = generator.ForEach(g, func(x int32) {
		pushSum += x
		rep.Values++
	})
	rep.Runs = 1

	var pullValues int64
	p := pipeline.Tap(
		pipeline.Map(
			pipeline.Filter(
				pipeline.FlatMap(
					pipeline.DedupFunc(pipeline.FromSlice(data), slices.Equal[[]int]),
					func(ctx context.Context, row []int) (pipeline.Iterator[int], error) {
						return pipeline.FromSlice(row).Iter(ctx), nil
					},
				),
				even,
			),
			func(_ context.Context, x int) (int32, error) { return triple(x), nil },
		),
		func(context.Context, int32) error {
			pullValues++
			return nil
		},
	)
	pullSum, err := reduceSum(ctx, p, func(acc, x int32) int32 { return acc + x })
	if err != nil {
		return rep, errors.ScenarioFailed(s.Name(), err)
	}

	var loopSum int32
	for i, row := range data {
		if i > 0 && slices.Equal(data[i-1], row) {
			continue
		}
		for _, x := range row {
			if even(x) {
				loopSum += triple(x)
			}
		}
	}

	row, n := data[0], s.w.Distinct()
	chainSum := generator.Fold(generator.Chain(generator.FromSlice(row), generator.Range(0, n)), int32(0), addInt)
	concatSum, err := reduceSum(ctx,
		pipeline.Concat(pipeline.FromSlice(row), pipeline.FromGenerator(generator.Range(0, n))),
		addInt,
	)
	if err != nil {
		return rep, errors.ScenarioFailed(s.Name(), err)
	}

	rep.Duration = time.Since(start)
	rep.Details = map[string]any{"push": pushSum, "pull": pullSum, "loop": loopSum, "chain": chainSum}
	switch {
	case pushSum != loopSum:
		return rep, errors.Mismatch(s.Name(), loopSum, pushSum).WithDetail("check", "push")
	case pullSum != loopSum:
		return rep, errors.Mismatch(s.Name(), loopSum, pullSum).WithDetail("check", "pull")
	case pullValues != rep.Values:
		return rep, errors.Mismatch(s.Name(), rep.Values, pullValues).WithDetail("check", "values")
	case concatSum != chainSum:
		return rep, errors.Mismatch(s.Name(), chainSum, concatSum).WithDetail("check", "chain")
	}
	return rep, nil
}

// reduceSum folds p into a single int32 with pipeline.Reduce.
func reduceSum[T any](ctx context.Context, p *pipeline.Pipeline[T], add func(int32, T) int32) (int32, error) {
	sums, err := pipeline.Collect(ctx, pipeline.Reduce(p, int32(0), add))
	if err != nil {
		return 0, err
	}
	return sums[0], nil
}

// --- windowing ---

// windowingScenario checks that Chunks and Windows carry their buffers
// across stopped runs.
type windowingScenario struct{ w Workload }

func (s *windowingScenario) Name() string { return NameWindowing }

func (s *windowingScenario) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	rep := Report{Scenario: s.Name()}
	n := s.w.Distinct()
	chunkSize := s.w.Repeat + 1
	windowSize := s.w.Repeat

	var wantChunks [][]int
	for i := 0; i < n; i += chunkSize {
		c := make([]int, 0, chunkSize)
		for j := i; j < min(i+chunkSize, n); j++ {
			c = append(c, j)
		}
		wantChunks = append(wantChunks, c)
	}
	var wantWindows [][]int
	for i := 0; i+windowSize <= n; i++ {
		w := make([]int, windowSize)
		for j := range w {
			w[j] = i + j
		}
		wantWindows = append(wantWindows, w)
	}

	chunks, chunkRuns, res, err := drainInSteps(ctx, generator.Chunks(generator.Range(0, n), chunkSize), s.w.StopEvery)
	rep.Values += int64(len(chunks))
	rep.Runs += chunkRuns
	if err != nil {
		return rep, errors.ScenarioFailed(s.Name(), err).WithDetail("stage", "chunks")
	}
	if i := firstDiff(wantChunks, chunks, slices.Equal[[]int]); i >= 0 {
		return rep, errors.Mismatch(s.Name(), len(wantChunks), len(chunks)).WithDetail("stage", "chunks").WithDetail("first_diff", i)
	}

	windows, windowRuns, res, err := drainInSteps(ctx, generator.Windows(generator.Range(0, n), windowSize), s.w.StopEvery)
	rep.Values += int64(len(windows))
	rep.Runs += windowRuns
	rep.Result = res
	if err != nil {
		return rep, errors.ScenarioFailed(s.Name(), err).WithDetail("stage", "windows")
	}
	if i := firstDiff(wantWindows, windows, slices.Equal[[]int]); i >= 0 {
		return rep, errors.Mismatch(s.Name(), len(wantWindows), len(windows)).WithDetail("stage", "windows").WithDetail("first_diff", i)
	}

	rep.Duration = time.Since(start)
	rep.Details = map[string]any{"chunks": len(chunks), "windows": len(windows)}
	return rep, nil
}
