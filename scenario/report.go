package scenario

import (
	"context"
	"time"

	"github.com/kbukum/pushgen/generator"
)

// Scenario is one self-check.
type Scenario interface {
	Name() string
	// Run executes the check. A returned error means the check failed or
	// could not run; Report is still filled as far as the run got.
	Run(ctx context.Context) (Report, error)
}

// Report describes one scenario run.
type Report struct {
	Scenario string
	// Result is the generator result of the final run of the pipeline
	// under test.
	Result generator.Result
	// Values is the number of values delivered to the scenario's sink.
	Values int64
	// Runs is the number of Run calls it took to drain the pipeline.
	Runs     int
	Duration time.Duration
	Details  map[string]any
}

// Summary aggregates the reports of one Runner invocation.
type Summary struct {
	RunID   string
	Reports []Report
	Passed  int
	Failed  int
}

// OK reports whether every scenario passed.
func (s Summary) OK() bool {
	return s.Failed == 0
}
