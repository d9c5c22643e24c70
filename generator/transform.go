package generator

// FilterStage forwards only values for which pred returns true.
func FilterStage[T any](pred func(T) bool) Stage[T, T] {
	return StageFunc[T, T](func(v T, output func(T) ValueResult) ValueResult {
		if !pred(v) {
			return More
		}
		return output(v)
	})
}

// MapStage forwards fn(v) for every value v.
func MapStage[I, O any](fn func(I) O) Stage[I, O] {
	return StageFunc[I, O](func(v I, output func(O) ValueResult) ValueResult {
		return output(fn(v))
	})
}

// InspectStage calls fn with every value, then forwards it unchanged.
func InspectStage[T any](fn func(T)) Stage[T, T] {
	return StageFunc[T, T](func(v T, output func(T) ValueResult) ValueResult {
		fn(v)
		return output(v)
	})
}

// Filter keeps the values of g that satisfy pred.
func Filter[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return Then(g, FilterStage(pred))
}

// Map transforms each value of g with fn.
func Map[I, O any](g Generator[I], fn func(I) O) Generator[O] {
	return Then(g, MapStage(fn))
}

// Inspect calls fn as a side effect for every value of g.
func Inspect[T any](g Generator[T], fn func(T)) Generator[T] {
	return Then(g, InspectStage(fn))
}
