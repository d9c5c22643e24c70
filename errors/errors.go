package errors

import (
	stderrors "errors"
	"fmt"
	"slices"
	"strings"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// ExitCode is the process exit status for this error.
	ExitCode int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError with the exit status derived from code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: ExitCodeFor(code),
	}
}

// --- Common Error Constructors ---

// InvalidConfig creates an AppError for configuration that could not be used.
func InvalidConfig(reason string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: fmt.Sprintf("Invalid configuration: %s", reason),
		ExitCode: ExitUsage, Cause: cause,
	}
}

// Validation creates an AppError for struct validation failures. fields maps
// each offending field to the rule it broke.
func Validation(fields map[string]string) *AppError {
	names := make([]string, 0, len(fields))
	details := make(map[string]any, len(fields))
	for f, rule := range fields {
		names = append(names, f)
		details[f] = rule
	}
	slices.Sort(names)
	return &AppError{
		Code: ErrCodeValidation, Message: fmt.Sprintf("Validation failed for: %s", strings.Join(names, ", ")),
		ExitCode: ExitUsage, Details: details,
	}
}

// ScenarioFailed creates an AppError for a scenario that could not complete.
func ScenarioFailed(scenario string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeScenarioFailed, Message: fmt.Sprintf("Scenario %s failed", scenario),
		ExitCode: ExitFailure, Cause: cause,
		Details: map[string]any{"scenario": scenario},
	}
}

// Mismatch creates an AppError for a scenario whose output differs from the
// expected value.
func Mismatch(scenario string, want, got any) *AppError {
	return &AppError{
		Code: ErrCodeResultMismatch, Message: fmt.Sprintf("Scenario %s: want %v, got %v", scenario, want, got),
		ExitCode: ExitFailure,
		Details:  map[string]any{"scenario": scenario, "want": want, "got": got},
	}
}

// Internal creates an AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		ExitCode: ExitInternal, Cause: cause,
	}
}

// --- Inspection helpers ---

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// CodeOf returns the code of the AppError in err's chain, or ErrCodeInternal
// for any other non-nil error. It returns "" for nil.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ""
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr.ExitCode
	}
	return ExitInternal
}

// Wrap converts err to an AppError, passing existing AppErrors through.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
