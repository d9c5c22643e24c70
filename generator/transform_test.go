package generator

import (
	"slices"
	"strconv"
	"testing"
)

func TestFilter(t *testing.T) {
	got, r := drain(Filter(FromSlice(seq(0, 10)), func(x int) bool { return x%3 == 0 }))
	if r != Complete || !intSliceEqual(got, []int{0, 3, 6, 9}) {
		t.Errorf("got %v %v", got, r)
	}
}

func TestMap_TypeConversion(t *testing.T) {
	got, _ := drain(Map(Of(1, 2, 3), func(x int) string { return "#" + strconv.Itoa(x) }))
	if !slices.Equal(got, []string{"#1", "#2", "#3"}) {
		t.Errorf("got %v", got)
	}
}

func TestInspect(t *testing.T) {
	var seen []int
	got, _ := drain(Inspect(Of(1, 2, 3), func(x int) { seen = append(seen, x) }))
	if !intSliceEqual(seen, got) {
		t.Errorf("inspected %v, forwarded %v", seen, got)
	}
}

// Filter/map chains must match the same computation done with a loop and
// with the standard range-over-func adapters.
func TestStatelessChains_MatchLoop(t *testing.T) {
	inputs := [][]int{
		nil,
		{1},
		{5, 4, 3, 2, 1},
		seq(-20, 50),
	}
	for _, in := range inputs {
		var want []int
		for _, x := range in {
			if x%2 == 0 {
				y := x*3 + 1
				if y > 0 {
					want = append(want, y)
				}
			}
		}

		g := Filter(
			Map(
				Filter(FromSlice(in), func(x int) bool { return x%2 == 0 }),
				func(x int) int { return x*3 + 1 },
			),
			func(y int) bool { return y > 0 },
		)
		got := slices.Collect(Seq(g))
		if !intSliceEqual(got, want) {
			t.Errorf("input %v: got %v, want %v", in, got, want)
		}
	}
}

func TestFilter_ResumesAfterStop(t *testing.T) {
	g := Filter(FromSlice(seq(0, 20)), func(x int) bool { return x%5 == 0 })
	var first []int
	if r := g.Run(stopAfter(2, &first)); r != Stopped {
		t.Fatalf("expected stopped, got %v", r)
	}
	rest, r := drain(g)
	if r != Complete {
		t.Errorf("expected complete, got %v", r)
	}
	if !intSliceEqual(first, []int{0, 5}) || !intSliceEqual(rest, []int{10, 15}) {
		t.Errorf("got %v then %v", first, rest)
	}
}
