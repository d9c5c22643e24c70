package generator

// Generator produces values by pushing them into output.
//
// Run calls output once per value, in order. The first time output returns
// Stop, Run returns Stopped without producing anything further. Otherwise
// it exhausts its values and returns Complete.
//
// Run may be called any number of times. Each call resumes where the
// previous one stopped: no value is delivered twice and none is skipped.
// Once exhausted, Run returns Complete without producing values.
type Generator[T any] interface {
	Run(output func(T) ValueResult) Result
}

// GeneratorFunc adapts a function to the Generator interface.
// The function is responsible for its own resumability.
type GeneratorFunc[T any] func(output func(T) ValueResult) Result

// Run calls f(output).
func (f GeneratorFunc[T]) Run(output func(T) ValueResult) Result {
	return f(output)
}
