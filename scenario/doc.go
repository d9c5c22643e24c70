// Package scenario runs self-checks of the generator library against
// reference computations.
//
// Each Scenario drives a generator pipeline over a Workload, compares the
// outcome with a plain loop or the pull-based pipeline package, and reports
// the run result. The Runner executes a set of scenarios under one run ID,
// wrapping each in a span and recording run metrics.
package scenario
