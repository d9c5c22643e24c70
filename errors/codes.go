package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates configuration could not be loaded or is inconsistent.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeValidation indicates a struct failed field validation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Scenario errors
const (
	// ErrCodeScenarioFailed indicates a scenario could not run to completion.
	ErrCodeScenarioFailed ErrorCode = "SCENARIO_FAILED"
	// ErrCodeResultMismatch indicates a scenario produced a result other than expected.
	ErrCodeResultMismatch ErrorCode = "RESULT_MISMATCH"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit statuses.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitInternal = 3
)

var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidConfig:  ExitUsage,
	ErrCodeValidation:     ExitUsage,
	ErrCodeScenarioFailed: ExitFailure,
	ErrCodeResultMismatch: ExitFailure,
	ErrCodeInternal:       ExitInternal,
}

// ExitCodeFor returns the process exit status for an error code.
// Unknown codes map to ExitInternal.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitInternal
}
