// Package errors provides the structured error type used outside the
// generator core. Each AppError carries a machine-readable code and the exit
// status the pushgen command reports for it.
//
// The generator protocol itself has no error path: a stopped run is a normal
// result, not an error.
package errors
