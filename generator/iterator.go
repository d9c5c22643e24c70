package generator

import "iter"

// Iterator exposes a generator one value at a time.
//
// Each Next runs the generator with a receiver that takes a single value
// and stops. Iterator is itself a Generator, so passing it to Fold,
// ForEach or another stage drains the rest in bulk instead of stepping.
type Iterator[T any] struct {
	source Generator[T]
}

// Iter wraps g in an Iterator.
func Iter[T any](g Generator[T]) *Iterator[T] {
	return &Iterator[T]{source: g}
}

// Next returns the next value, or false once the generator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	var (
		value T
		ok    bool
	)
	it.source.Run(func(v T) ValueResult {
		value, ok = v, true
		return Stop
	})
	return value, ok
}

// Run implements Generator by delegating to the wrapped generator.
func (it *Iterator[T]) Run(output func(T) ValueResult) Result {
	return it.source.Run(output)
}

// All returns the remaining values as an iter.Seq.
func (it *Iterator[T]) All() iter.Seq[T] {
	return Seq[T](it)
}

// Seq adapts g to iter.Seq. Breaking out of the range loop stops g, and a
// later range over g (or another Seq of it) resumes where it stopped.
func Seq[T any](g Generator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		g.Run(func(v T) ValueResult {
			return Continue(yield(v))
		})
	}
}
