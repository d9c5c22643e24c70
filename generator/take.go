package generator

type take[T any] struct {
	source    Generator[T]
	remaining int
	done      bool
}

// Take forwards the first n values produced by g over its whole lifetime,
// not per Run.
//
// Run reports Stopped if g had more than n values and Complete if it had n
// or fewer. After the quota has been met, every Run returns Complete
// without driving g.
//
// g is not stopped when the n-th value is forwarded. It is told to stop
// when it offers the next value, which is dropped, so a source with side
// effects produces one value past the quota. Take(g, 0) over a non-empty g
// still pulls one value.
func Take[T any](g Generator[T], n int) Generator[T] {
	return &take[T]{source: g, remaining: max(n, 0)}
}

func (t *take[T]) Run(output func(T) ValueResult) Result {
	if t.done {
		return Complete
	}
	r := t.source.Run(func(v T) ValueResult {
		if t.remaining == 0 {
			return Stop
		}
		t.remaining--
		return output(v)
	})
	if t.remaining == 0 {
		t.done = true
	}
	return r
}

type skipStage[T any] struct {
	remaining int
}

// SkipStage discards the first n values it sees, then forwards the rest.
func SkipStage[T any](n int) Stage[T, T] {
	return &skipStage[T]{remaining: max(n, 0)}
}

func (s *skipStage[T]) Process(v T, output func(T) ValueResult) ValueResult {
	if s.remaining > 0 {
		s.remaining--
		return More
	}
	return output(v)
}

// Skip discards the first n values of g and passes the rest through.
func Skip[T any](g Generator[T], n int) Generator[T] {
	return Then(g, SkipStage[T](n))
}

type takeWhile[T any] struct {
	source Generator[T]
	pred   func(T) bool
	done   bool
}

// TakeWhile forwards values while pred holds. The first value failing pred
// is dropped, the upstream is stopped, and later runs return Complete.
func TakeWhile[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return &takeWhile[T]{source: g, pred: pred}
}

func (t *takeWhile[T]) Run(output func(T) ValueResult) Result {
	if t.done {
		return Complete
	}
	return t.source.Run(func(v T) ValueResult {
		if !t.pred(v) {
			t.done = true
			return Stop
		}
		return output(v)
	})
}

type skipWhileStage[T any] struct {
	pred     func(T) bool
	skipping bool
}

// SkipWhile discards values while pred holds; from the first value that
// fails pred onward everything is forwarded.
func SkipWhile[T any](g Generator[T], pred func(T) bool) Generator[T] {
	return Then[T, T](g, &skipWhileStage[T]{pred: pred, skipping: true})
}

func (s *skipWhileStage[T]) Process(v T, output func(T) ValueResult) ValueResult {
	if s.skipping {
		if s.pred(v) {
			return More
		}
		s.skipping = false
	}
	return output(v)
}

type stepStage[T any] struct {
	step, pos int
}

// StepBy forwards the first value of g and then every step-th value after
// it. A step below 1 is treated as 1.
func StepBy[T any](g Generator[T], step int) Generator[T] {
	return Then[T, T](g, &stepStage[T]{step: max(step, 1)})
}

func (s *stepStage[T]) Process(v T, output func(T) ValueResult) ValueResult {
	emit := s.pos == 0
	s.pos++
	if s.pos == s.step {
		s.pos = 0
	}
	if !emit {
		return More
	}
	return output(v)
}

// Indexed pairs a value with its position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

type enumerateStage[T any] struct {
	next int
}

// Enumerate pairs every value of g with its zero-based position.
func Enumerate[T any](g Generator[T]) Generator[Indexed[T]] {
	return Then[T, Indexed[T]](g, &enumerateStage[T]{})
}

func (s *enumerateStage[T]) Process(v T, output func(Indexed[T]) ValueResult) ValueResult {
	i := s.next
	s.next++
	return output(Indexed[T]{Index: i, Value: v})
}
