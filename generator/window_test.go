package generator

import (
	"fmt"
	"slices"
	"testing"
)

func chunkString(chunks [][]int) string {
	return fmt.Sprint(chunks)
}

func TestChunks(t *testing.T) {
	tests := []struct {
		size int
		in   []int
		want string
	}{
		{3, seq(1, 8), "[[1 2 3] [4 5 6] [7]]"},
		{3, seq(1, 7), "[[1 2 3] [4 5 6]]"},
		{5, seq(1, 3), "[[1 2]]"},
		{0, seq(1, 3), "[[1] [2]]"},
		{2, nil, "[]"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("size=%d/len=%d", tc.size, len(tc.in)), func(t *testing.T) {
			got, r := drain(Chunks(FromSlice(tc.in), tc.size))
			if r != Complete {
				t.Errorf("expected complete, got %v", r)
			}
			if chunkString(got) != tc.want {
				t.Errorf("got %v, want %s", got, tc.want)
			}
		})
	}
}

func TestChunks_BufferSurvivesStop(t *testing.T) {
	src := FromSlice(seq(1, 8))
	pulled := 0
	g := Chunks(Inspect(src, func(int) { pulled++ }), 3)

	var first [][]int
	if r := g.Run(stopAfter(1, &first)); r != Stopped {
		t.Fatalf("expected stopped, got %v", r)
	}
	if pulled != 3 {
		t.Errorf("pulled %d", pulled)
	}
	rest, r := drain(g)
	if r != Complete {
		t.Errorf("expected complete, got %v", r)
	}
	if chunkString(first) != "[[1 2 3]]" || chunkString(rest) != "[[4 5 6] [7]]" {
		t.Errorf("got %v then %v", first, rest)
	}
}

func TestChunks_StopOnTail(t *testing.T) {
	g := Chunks(FromSlice(seq(1, 5)), 3)
	var out [][]int
	for g.Run(stopAfter(1, &out)) == Stopped {
	}
	if chunkString(out) != "[[1 2 3] [4]]" {
		t.Errorf("got %v", out)
	}
	again, r := drain(g)
	if r != Complete || len(again) != 0 {
		t.Errorf("tail emitted twice: %v %v", again, r)
	}
}

func TestChunks_InnerGeneratorStopsMidChunk(t *testing.T) {
	g := Chunks(Take(FromSlice(seq(1, 10)), 4), 3)
	got, r := drain(g)
	// Take stops its upstream, so the final partial chunk stays buffered.
	if r != Stopped || chunkString(got) != "[[1 2 3]]" {
		t.Errorf("got %v %v", got, r)
	}
	rest, r := drain(g)
	if r != Complete || chunkString(rest) != "[[4]]" {
		t.Errorf("got %v %v", rest, r)
	}
}

func TestWindows(t *testing.T) {
	got, r := drain(Windows(FromSlice(seq(1, 6)), 3))
	if r != Complete || chunkString(got) != "[[1 2 3] [2 3 4] [3 4 5]]" {
		t.Errorf("got %v %v", got, r)
	}

	short, _ := drain(Windows(Of(1, 2), 3))
	if len(short) != 0 {
		t.Errorf("short source produced %v", short)
	}
}

func TestWindows_IndependentSlices(t *testing.T) {
	got, _ := drain(Windows(FromSlice(seq(0, 4)), 2))
	got[0][0] = 100
	if got[1][0] != 1 {
		t.Errorf("windows share storage: %v", got)
	}
}

func TestWindows_ResumeAfterEveryPosition(t *testing.T) {
	want, _ := drain(Windows(FromSlice(seq(0, 8)), 3))
	for k := 1; k < len(want); k++ {
		g := Windows(FromSlice(seq(0, 8)), 3)
		var got [][]int
		for g.Run(stopAfter(k, &got)) == Stopped {
		}
		if !slices.EqualFunc(got, want, slices.Equal[[]int]) {
			t.Errorf("k=%d: got %v, want %v", k, got, want)
		}
	}
}
