package generator

type dedupStage[T any] struct {
	equal func(a, b T) bool
	last  T
	seen  bool
}

// DedupFuncStage drops a value when equal reports it the same as the value
// seen immediately before it.
func DedupFuncStage[T any](equal func(a, b T) bool) Stage[T, T] {
	return &dedupStage[T]{equal: equal}
}

// DedupStage drops consecutive duplicate values.
func DedupStage[T comparable]() Stage[T, T] {
	return DedupFuncStage(func(a, b T) bool { return a == b })
}

func (s *dedupStage[T]) Process(v T, output func(T) ValueResult) ValueResult {
	if s.seen && s.equal(s.last, v) {
		return More
	}
	// record before forwarding so a Stop keeps the comparison value
	s.last = v
	s.seen = true
	return output(v)
}

// Dedup collapses runs of equal consecutive values into one. Sorted input
// comes out with every value unique.
func Dedup[T comparable](g Generator[T]) Generator[T] {
	return Then(g, DedupStage[T]())
}

// DedupFunc is Dedup for values that are not comparable with ==, such as
// slices.
func DedupFunc[T any](g Generator[T], equal func(a, b T) bool) Generator[T] {
	return Then(g, DedupFuncStage(equal))
}
