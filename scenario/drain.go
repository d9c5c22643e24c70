package scenario

import (
	"context"
	"fmt"

	"github.com/kbukum/pushgen/generator"
)

// drainInSteps runs g repeatedly, stopping after every `every` values, until
// it completes. A stage may stop its upstream without delivering anything
// (Take with a met quota), but two such runs in a row mean g makes no
// progress.
func drainInSteps[T any](ctx context.Context, g generator.Generator[T], every int) ([]T, int, generator.Result, error) {
	var (
		out   []T
		runs  int
		empty int
	)
	for {
		if err := ctx.Err(); err != nil {
			return out, runs, generator.Stopped, err
		}
		seen := 0
		res := g.Run(func(v T) generator.ValueResult {
			out = append(out, v)
			seen++
			return generator.Continue(seen < every)
		})
		runs++
		if res == generator.Complete {
			return out, runs, res, nil
		}
		if seen > 0 {
			empty = 0
			continue
		}
		if empty++; empty == 2 {
			return out, runs, res, fmt.Errorf("run %d stopped twice without delivering a value", runs)
		}
	}
}

// drainOnce runs g a single time with a sink that never stops.
func drainOnce[T any](g generator.Generator[T]) ([]T, generator.Result) {
	var out []T
	res := g.Run(func(v T) generator.ValueResult {
		out = append(out, v)
		return generator.More
	})
	return out, res
}

// firstDiff returns the first index at which a and b differ, or -1.
func firstDiff[T any](a, b []T, eq func(T, T) bool) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !eq(a[i], b[i]) {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

func equal[T comparable](a, b T) bool { return a == b }
