package generator

// ValueResult is what a receiver answers after consuming one value.
type ValueResult uint8

const (
	// More asks the producer for further values.
	More ValueResult = iota
	// Stop tells the producer to cease immediately.
	Stop
)

// String implements fmt.Stringer.
func (v ValueResult) String() string {
	switch v {
	case More:
		return "more"
	case Stop:
		return "stop"
	default:
		return "unknown"
	}
}

// Continue maps a boolean "keep going" answer onto a ValueResult.
func Continue(keepGoing bool) ValueResult {
	if keepGoing {
		return More
	}
	return Stop
}

// Result is what a generator reports once a Run returns.
type Result uint8

const (
	// Complete means the generator exhausted its source without being stopped.
	Complete Result = iota
	// Stopped means a receiver returned Stop during the run.
	Stopped
)

// String implements fmt.Stringer.
func (r Result) String() string {
	switch r {
	case Complete:
		return "complete"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// resultOf converts the answer of a nested run into the answer its driver
// should give to the enclosing producer.
func resultOf(r Result) ValueResult {
	if r == Stopped {
		return Stop
	}
	return More
}
