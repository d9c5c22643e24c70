package generator

import "golang.org/x/exp/constraints"

// SliceGenerator yields the elements of a slice. The slice is referenced,
// not copied.
type SliceGenerator[T any] struct {
	items []T
	index int
}

// FromSlice creates a generator over items.
func FromSlice[T any](items []T) *SliceGenerator[T] {
	return &SliceGenerator[T]{items: items}
}

// Of creates a generator over the given values.
func Of[T any](values ...T) *SliceGenerator[T] {
	return FromSlice(values)
}

// Run implements Generator.
func (g *SliceGenerator[T]) Run(output func(T) ValueResult) Result {
	for g.index < len(g.items) {
		v := g.items[g.index]
		// advance first: a value answered with Stop was still delivered
		g.index++
		if output(v) == Stop {
			return Stopped
		}
	}
	return Complete
}

// Remaining returns the number of elements not yet delivered.
func (g *SliceGenerator[T]) Remaining() int {
	return len(g.items) - g.index
}

// Empty returns a generator that never produces a value.
func Empty[T any]() Generator[T] {
	return GeneratorFunc[T](func(func(T) ValueResult) Result { return Complete })
}

type funcGenerator[T any] struct {
	next func() (T, bool)
	done bool
}

// FromFunc creates a generator that calls next until it reports false.
// Once next has reported false it is never called again.
func FromFunc[T any](next func() (T, bool)) Generator[T] {
	return &funcGenerator[T]{next: next}
}

func (g *funcGenerator[T]) Run(output func(T) ValueResult) Result {
	for !g.done {
		v, ok := g.next()
		if !ok {
			g.done = true
			break
		}
		if output(v) == Stop {
			return Stopped
		}
	}
	return Complete
}

type rangeGenerator[N constraints.Integer] struct {
	next, end N
}

// Range yields start, start+1, ..., end-1.
func Range[N constraints.Integer](start, end N) Generator[N] {
	return &rangeGenerator[N]{next: start, end: end}
}

func (g *rangeGenerator[N]) Run(output func(N) ValueResult) Result {
	for g.next < g.end {
		v := g.next
		g.next++
		if output(v) == Stop {
			return Stopped
		}
	}
	return Complete
}
