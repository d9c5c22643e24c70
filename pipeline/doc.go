// Package pipeline provides composable, pull-based pipeline operators.
//
// Pipelines are lazy: no work happens until values are pulled via Collect,
// Drain, or ForEach. Each stage pulls from the previous stage on demand.
// This is the pull-style counterpart of package generator, where the source
// pushes instead; FromGenerator bridges a generator into a pipeline, and
// both styles are expected to produce identical sequences for the same
// chain of operators.
//
// # Operators
//
//   - Map: transform each value
//   - FlatMap: transform each value into an Iterator and flatten
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value
//   - Dedup, DedupFunc: collapse consecutive duplicates
//   - Take, Skip: limit or drop a prefix
//   - Reduce: accumulate all values into one result
//   - Concat: join pipelines sequentially
//
// All operators run on the caller's goroutine.
//
// # Usage
//
//	src := pipeline.FromSlice([]int{1, 2, 3, 4, 5})
//	doubled := pipeline.Map(src, func(_ context.Context, n int) (int, error) {
//	    return n * 2, nil
//	})
//	evens := pipeline.Filter(doubled, func(n int) bool { return n%2 == 0 })
//	results, _ := pipeline.Collect(ctx, evens)
//
// From a generator:
//
//	rows := generator.FlattenSlices(generator.FromSlice(data))
//	results, _ := pipeline.Collect(ctx, pipeline.FromGenerator(rows))
package pipeline
