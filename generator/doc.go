// Package generator provides push-based lazy sequences.
//
// A Generator drives values into a receiver instead of being polled for them.
// The receiver answers every value with More or Stop, and every Run reports
// whether the generator ran dry (Complete) or was halted (Stopped). A stopped
// generator can be run again and resumes exactly where it left off.
//
// Stages are attached with package functions, since Go methods cannot
// introduce new type parameters:
//
//	rows := generator.FromSlice(data)
//	flat := generator.FlattenSlices(generator.DedupFunc(rows, slices.Equal[[]int]))
//	evens := generator.Filter(flat, func(n int) bool { return n%2 == 0 })
//	tripled := generator.Map(evens, func(n int) int { return n * 3 })
//	generator.ForEach(tripled, func(n int) { sum += n })
//
// # Stages
//
// Stateless:
//
//   - Filter, Map, Inspect
//
// Stateful (state survives a Stop and is reused by the next Run):
//
//   - Take, Skip, TakeWhile, SkipWhile, StepBy, Enumerate
//   - Dedup, DedupFunc
//   - FlatMap, Flatten, FlattenSlices, Chain
//   - Chunks, Windows
//
// # Terminals
//
//   - Collect, End, ForEach
//   - ToSlice, Fold, Reduce, Count, Last, Nth, Find, Any, All, Sum, Min, Max
//
// # Interop
//
// Iterator exposes a generator one value at a time, and Seq adapts it to
// the standard iter.Seq so it can be used with a range loop.
//
// Everything in this package is synchronous. Nothing here is safe for
// concurrent use, and nothing needs to be: a stop is just a return value.
package generator
