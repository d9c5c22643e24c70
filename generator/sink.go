package generator

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Runnable is a generator bound to a terminal sink. Nothing can be chained
// after it.
type Runnable struct {
	run func() Result
}

// Run drives the chain once. A Stopped result means the sink asked to stop;
// calling Run again resumes.
func (r *Runnable) Run() Result {
	return r.run()
}

// Collect binds g to a sink that accepts every value.
func Collect[T any](g Generator[T], sink func(T)) *Runnable {
	return &Runnable{run: func() Result {
		return g.Run(func(v T) ValueResult {
			sink(v)
			return More
		})
	}}
}

// End binds g to a sink that decides after every value whether to go on.
func End[T any](g Generator[T], sink func(T) bool) *Runnable {
	return &Runnable{run: func() Result {
		return g.Run(func(v T) ValueResult {
			return Continue(sink(v))
		})
	}}
}

// ForEach drains g into fn.
func ForEach[T any](g Generator[T], fn func(T)) Result {
	return Collect(g, fn).Run()
}

// ToSlice drains g into a new slice.
func ToSlice[T any](g Generator[T]) []T {
	var out []T
	ForEach(g, func(v T) { out = append(out, v) })
	return out
}

// Fold drains g, combining every value into the accumulator.
func Fold[T, A any](g Generator[T], init A, fn func(A, T) A) A {
	acc := init
	g.Run(func(v T) ValueResult {
		acc = fn(acc, v)
		return More
	})
	return acc
}

// Reduce folds g using its first value as the initial accumulator.
// It reports false when g produces nothing.
func Reduce[T any](g Generator[T], fn func(T, T) T) (T, bool) {
	var acc T
	seen := false
	g.Run(func(v T) ValueResult {
		if !seen {
			acc, seen = v, true
			return More
		}
		acc = fn(acc, v)
		return More
	})
	return acc, seen
}

// Count drains g and returns how many values it produced.
func Count[T any](g Generator[T]) int {
	return Fold(g, 0, func(n int, _ T) int { return n + 1 })
}

// Last drains g and returns its final value.
func Last[T any](g Generator[T]) (T, bool) {
	var last T
	seen := false
	ForEach(g, func(v T) { last, seen = v, true })
	return last, seen
}

// Nth returns the value at zero-based position n, consuming g up to and
// including it.
func Nth[T any](g Generator[T], n int) (T, bool) {
	var zero T
	if n < 0 {
		return zero, false
	}
	return Find(Skip(g, n), func(T) bool { return true })
}

// Find returns the first value satisfying pred. g is left positioned
// just after it.
func Find[T any](g Generator[T], pred func(T) bool) (T, bool) {
	var found T
	ok := false
	g.Run(func(v T) ValueResult {
		if pred(v) {
			found, ok = v, true
			return Stop
		}
		return More
	})
	return found, ok
}

// Any reports whether some value satisfies pred, stopping at the first.
func Any[T any](g Generator[T], pred func(T) bool) bool {
	_, ok := Find(g, pred)
	return ok
}

// All reports whether every value satisfies pred, stopping at the first
// that does not.
func All[T any](g Generator[T], pred func(T) bool) bool {
	return g.Run(func(v T) ValueResult { return Continue(pred(v)) }) == Complete
}

// Number is the set of types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds up every value of g. Integer overflow wraps.
func Sum[T Number](g Generator[T]) T {
	return Fold(g, T(0), func(acc, v T) T { return acc + v })
}

// Min returns the smallest value of g.
func Min[T cmp.Ordered](g Generator[T]) (T, bool) {
	return Reduce(g, func(a, b T) T { return min(a, b) })
}

// Max returns the largest value of g.
func Max[T cmp.Ordered](g Generator[T]) (T, bool) {
	return Reduce(g, func(a, b T) T { return max(a, b) })
}
