package scenario

import (
	"context"
	"fmt"
	"testing"

	"github.com/kbukum/pushgen/errors"
	"github.com/kbukum/pushgen/generator"
)

func TestBuiltin_AllPass(t *testing.T) {
	for _, every := range []int{1, 2, 3, 4, 7, 1000} {
		w := smallWorkload()
		w.StopEvery = every
		for _, s := range Builtin(w) {
			t.Run(fmt.Sprintf("%s/every=%d", s.Name(), every), func(t *testing.T) {
				rep, err := s.Run(context.Background())
				if err != nil {
					t.Fatalf("scenario failed: %v", err)
				}
				if rep.Scenario != s.Name() {
					t.Errorf("report scenario = %q", rep.Scenario)
				}
				if rep.Values == 0 {
					t.Error("expected values to be counted")
				}
			})
		}
	}
}

func TestBuiltin_NamesMatch(t *testing.T) {
	all := Builtin(smallWorkload())
	names := Names()
	if len(all) != len(names) {
		t.Fatalf("%d scenarios, %d names", len(all), len(names))
	}
	for i, s := range all {
		if s.Name() != names[i] {
			t.Errorf("scenario %d: %q != %q", i, s.Name(), names[i])
		}
	}
}

func TestEquivalence_DefaultWorkload(t *testing.T) {
	s := &equivalenceScenario{w: DefaultWorkload()}
	rep, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// 12 * sum of even x below 25000.
	const want int32 = 1_874_850_000
	for _, k := range []string{"push", "pull", "loop"} {
		if rep.Details[k] != want {
			t.Errorf("%s sum = %v, want %d", k, rep.Details[k], want)
		}
	}
	if rep.Result != generator.Complete {
		t.Errorf("result = %v", rep.Result)
	}
	if rep.Values != 50_000 {
		t.Errorf("values = %d, want 50000", rep.Values)
	}
	// one row (4 * sum below 25000) chained with the range 0..24999
	if rep.Details["chain"] != int32(1_562_437_500) {
		t.Errorf("chain sum = %v", rep.Details["chain"])
	}
}

func TestFlattenResume_RunCount(t *testing.T) {
	w := Workload{Size: 12, Repeat: 1, Rows: 2, StopEvery: 6}
	rep, err := (&flattenScenario{w: w}).Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	// 24 values, 6 per run: four stopped runs and one empty completing run.
	if rep.Runs != 5 || rep.Values != 24 || rep.Result != generator.Complete {
		t.Errorf("got runs=%d values=%d result=%v", rep.Runs, rep.Values, rep.Result)
	}
}

func TestTakeSkip_SingleValueWorkload(t *testing.T) {
	w := Workload{Size: 1, Repeat: 1, Rows: 1, StopEvery: 1}
	if _, err := (&takeSkipScenario{w: w}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
}

func TestSelect(t *testing.T) {
	all := Builtin(smallWorkload())

	got, err := Select(all, nil)
	if err != nil || len(got) != len(all) {
		t.Fatalf("empty selection should return all, got %d %v", len(got), err)
	}

	got, err = Select(all, []string{NameWindowing, NameDedup})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name() != NameWindowing || got[1].Name() != NameDedup {
		t.Errorf("unexpected selection order")
	}

	_, err = Select(all, []string{"nope"})
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("expected INVALID_CONFIG, got %v", err)
	}
}

func TestDrainInSteps(t *testing.T) {
	got, runs, res, err := drainInSteps(context.Background(), generator.Range(0, 10), 4)
	if err != nil || res != generator.Complete {
		t.Fatalf("unexpected %v %v", res, err)
	}
	if len(got) != 10 || runs != 3 {
		t.Errorf("got %d values in %d runs", len(got), runs)
	}
}

func TestDrainInSteps_NoProgress(t *testing.T) {
	stuck := generator.GeneratorFunc[int](func(func(int) generator.ValueResult) generator.Result {
		return generator.Stopped
	})
	_, runs, _, err := drainInSteps(context.Background(), stuck, 3)
	if err == nil {
		t.Fatal("expected an error for a generator that never progresses")
	}
	if runs != 2 {
		t.Errorf("expected to give up after 2 runs, got %d", runs)
	}
}

func TestDrainInSteps_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, _, err := drainInSteps(ctx, generator.Range(0, 10), 4)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestScenario_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := (&dedupScenario{w: smallWorkload()}).Run(ctx)
	if !errors.Is(err, errors.ErrCodeScenarioFailed) {
		t.Errorf("expected SCENARIO_FAILED, got %v", err)
	}
}

func TestFirstDiff(t *testing.T) {
	tests := []struct {
		a, b []int
		want int
	}{
		{[]int{1, 2}, []int{1, 2}, -1},
		{[]int{1, 2}, []int{1, 3}, 1},
		{[]int{1, 2}, []int{1}, 1},
		{nil, nil, -1},
	}
	for _, tc := range tests {
		if got := firstDiff(tc.a, tc.b, equal[int]); got != tc.want {
			t.Errorf("firstDiff(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
