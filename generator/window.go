package generator

import "slices"

type chunks[T any] struct {
	source Generator[T]
	size   int
	buf    []T
}

// Chunks groups the values of g into slices of size values. The last,
// possibly shorter, chunk is emitted once g completes. Values buffered when
// a run stops are kept for the next run. A size below 1 is treated as 1.
func Chunks[T any](g Generator[T], size int) Generator[[]T] {
	size = max(size, 1)
	return &chunks[T]{source: g, size: size}
}

func (c *chunks[T]) Run(output func([]T) ValueResult) Result {
	r := c.source.Run(func(v T) ValueResult {
		c.buf = append(c.buf, v)
		if len(c.buf) < c.size {
			return More
		}
		full := c.buf
		c.buf = nil
		return output(full)
	})
	if r == Complete && len(c.buf) > 0 {
		tail := c.buf
		c.buf = nil
		if output(tail) == Stop {
			return Stopped
		}
	}
	return r
}

type windowStage[T any] struct {
	size int
	buf  []T
}

// WindowsStage emits the last size values seen, as a new slice, for every
// value once size values have been seen.
func WindowsStage[T any](size int) Stage[T, []T] {
	size = max(size, 1)
	return &windowStage[T]{size: size, buf: make([]T, 0, size)}
}

func (s *windowStage[T]) Process(v T, output func([]T) ValueResult) ValueResult {
	if len(s.buf) == s.size {
		copy(s.buf, s.buf[1:])
		s.buf = s.buf[:s.size-1]
	}
	s.buf = append(s.buf, v)
	if len(s.buf) < s.size {
		return More
	}
	return output(slices.Clone(s.buf))
}

// Windows yields overlapping windows of size consecutive values of g.
// A source shorter than size yields nothing.
func Windows[T any](g Generator[T], size int) Generator[[]T] {
	return Then(g, WindowsStage[T](size))
}
