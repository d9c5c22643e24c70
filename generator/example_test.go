package generator_test

import (
	"fmt"
	"slices"

	"github.com/kbukum/pushgen/generator"
)

func ExampleDedup() {
	fmt.Println(generator.ToSlice(generator.Dedup(generator.Of(1, 1, 2, 2, 3, 3))))
	// Output: [1 2 3]
}

func ExampleFlattenSlices() {
	g := generator.FlattenSlices(generator.FromSlice([][]int{{1, 2, 3}, {4, 5, 6}, {7}, {}, {8, 9}}))

	var first []int
	generator.End(g, func(v int) bool {
		first = append(first, v)
		return len(first) < 4
	}).Run()
	fmt.Println(first)
	fmt.Println(generator.ToSlice(g))
	// Output:
	// [1 2 3 4]
	// [5 6 7 8 9]
}

func ExampleTake() {
	g := generator.Take(generator.Range(0, 100), 3)
	var out []int
	r := generator.ForEach(g, func(v int) { out = append(out, v) })
	fmt.Println(out, r)
	// Output: [0 1 2] stopped
}

func ExampleSeq() {
	evens := generator.Filter(generator.Range(0, 10), func(n int) bool { return n%2 == 0 })
	for n := range generator.Seq(evens) {
		fmt.Print(n, " ")
	}
	fmt.Println()
	// Output: 0 2 4 6 8
}

func ExampleCompose() {
	var out []int
	pipe := generator.Compose(generator.DedupStage[int](), generator.MapStage(func(x int) int { return x * 2 }))
	generator.Feed(pipe, []int{1, 1, 2, 2, 3, 3}, func(v int) generator.ValueResult {
		out = append(out, v)
		return generator.More
	})
	fmt.Println(out)
	// Output: [2 4 6]
}

func ExampleIterator() {
	it := generator.Iter(generator.DedupFunc(generator.Of([]int{1}, []int{1}, []int{2}), slices.Equal[[]int]))
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		fmt.Println(v)
	}
	// Output:
	// [1]
	// [2]
}
