package generator

// Stage turns one upstream value into zero or more downstream values.
//
// Process hands each produced value to output and returns Stop as soon as
// output does, even if value would have produced more. A stateful stage
// must record whatever it needs to continue correctly on the next call.
type Stage[I, O any] interface {
	Process(value I, output func(O) ValueResult) ValueResult
}

// StageFunc adapts a function to the Stage interface.
type StageFunc[I, O any] func(value I, output func(O) ValueResult) ValueResult

// Process calls f(value, output).
func (f StageFunc[I, O]) Process(value I, output func(O) ValueResult) ValueResult {
	return f(value, output)
}

type then[I, O any] struct {
	source Generator[I]
	stage  Stage[I, O]
}

// Then attaches stage downstream of source. The returned generator owns
// both; its Run returns whatever source.Run returns.
func Then[I, O any](source Generator[I], stage Stage[I, O]) Generator[O] {
	return &then[I, O]{source: source, stage: stage}
}

func (t *then[I, O]) Run(output func(O) ValueResult) Result {
	return t.source.Run(func(v I) ValueResult {
		return t.stage.Process(v, output)
	})
}

type composed[A, B, C any] struct {
	first  Stage[A, B]
	second Stage[B, C]
}

// Compose joins two stages into one. Values produced by first are fed to
// second; a Stop from the final output halts both.
func Compose[A, B, C any](first Stage[A, B], second Stage[B, C]) Stage[A, C] {
	return &composed[A, B, C]{first: first, second: second}
}

func (c *composed[A, B, C]) Process(value A, output func(C) ValueResult) ValueResult {
	return c.first.Process(value, func(b B) ValueResult {
		return c.second.Process(b, output)
	})
}

// Feed pushes values through stage into sink until the sink stops or
// values run out. It returns Stopped if the sink stopped.
func Feed[I, O any](stage Stage[I, O], values []I, sink func(O) ValueResult) Result {
	for _, v := range values {
		if stage.Process(v, sink) == Stop {
			return Stopped
		}
	}
	return Complete
}
