package generator

import (
	"slices"
	"testing"
)

func TestDedup(t *testing.T) {
	got, r := drain(Dedup(Of(1, 1, 2, 2, 3, 3)))
	if r != Complete || !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v %v", got, r)
	}
}

func TestDedup_RunLengthOnly(t *testing.T) {
	got, _ := drain(Dedup(Of(1, 1, 2, 1, 1, 3, 3, 1)))
	if !intSliceEqual(got, []int{1, 2, 1, 3, 1}) {
		t.Errorf("got %v", got)
	}
}

func TestDedup_Idempotent(t *testing.T) {
	inputs := [][]int{
		nil,
		{7},
		{1, 1, 1, 1},
		{1, 2, 2, 3, 3, 3, 2, 2, 1},
		{0, 1, 0, 1, 0, 1},
	}
	for _, in := range inputs {
		once, _ := drain(Dedup(FromSlice(in)))
		twice, _ := drain(Dedup(Dedup(FromSlice(in))))
		if !intSliceEqual(once, twice) {
			t.Errorf("input %v: once %v, twice %v", in, once, twice)
		}
	}
}

func TestDedup_KeepsLastValueAcrossStop(t *testing.T) {
	g := Dedup(Of(1, 1, 2, 2, 2, 3, 1, 1))

	var first []int
	if r := g.Run(stopAfter(1, &first)); r != Stopped {
		t.Fatalf("expected stopped, got %v", r)
	}
	rest, r := drain(g)
	if r != Complete {
		t.Errorf("expected complete, got %v", r)
	}
	if !intSliceEqual(first, []int{1}) || !intSliceEqual(rest, []int{2, 3, 1}) {
		t.Errorf("got %v then %v", first, rest)
	}
}

func TestDedup_EveryStopPoint(t *testing.T) {
	in := []int{4, 4, 5, 5, 5, 6, 4, 4, 7}
	want := []int{4, 5, 6, 4, 7}
	for k := 1; k < len(want); k++ {
		g := Dedup(FromSlice(in))
		var got []int
		for g.Run(stopAfter(k, &got)) == Stopped {
		}
		if !intSliceEqual(got, want) {
			t.Errorf("stop every %d: got %v, want %v", k, got, want)
		}
	}
}

func TestDedupFunc_Slices(t *testing.T) {
	rows := [][]int{{1, 2}, {1, 2}, {3}, {3}, {1, 2}}
	got, _ := drain(DedupFunc(FromSlice(rows), slices.Equal[[]int]))
	if len(got) != 3 {
		t.Fatalf("got %v", got)
	}
	if !slices.Equal(got[0], []int{1, 2}) || !slices.Equal(got[1], []int{3}) || !slices.Equal(got[2], []int{1, 2}) {
		t.Errorf("got %v", got)
	}
}
