package generator

type flatMap[I, O any] struct {
	source  Generator[I]
	produce func(I) Generator[O]
	// current is the inner generator being drained. It survives a Stop so
	// the next Run resumes inside it.
	current Generator[O]
}

// FlatMap calls produce for every value of g and yields all values of the
// resulting generators in order, as one flat sequence.
func FlatMap[I, O any](g Generator[I], produce func(I) Generator[O]) Generator[O] {
	return &flatMap[I, O]{source: g, produce: produce}
}

// Flatten yields every value of every generator produced by g.
func Flatten[T any](g Generator[Generator[T]]) Generator[T] {
	return FlatMap(g, func(inner Generator[T]) Generator[T] { return inner })
}

func (f *flatMap[I, O]) Run(output func(O) ValueResult) Result {
	if f.current != nil {
		if f.current.Run(output) == Stopped {
			return Stopped
		}
		f.current = nil
	}
	return f.source.Run(func(v I) ValueResult {
		f.current = f.produce(v)
		if f.current.Run(output) == Stopped {
			return Stop
		}
		f.current = nil
		return More
	})
}

type chain[T any] struct {
	first, second Generator[T]
	firstDone     bool
}

// Chain yields every value of first followed by every value of second.
func Chain[T any](first, second Generator[T]) Generator[T] {
	return &chain[T]{first: first, second: second}
}

func (c *chain[T]) Run(output func(T) ValueResult) Result {
	if !c.firstDone {
		if c.first.Run(output) == Stopped {
			return Stopped
		}
		c.firstDone = true
	}
	return c.second.Run(output)
}

// FlattenSlices yields every element of every slice produced by g.
func FlattenSlices[T any](g Generator[[]T]) Generator[T] {
	return FlatMap(g, func(items []T) Generator[T] { return FromSlice(items) })
}
