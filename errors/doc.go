// Package errors provides structured error types for the binpack library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: the offending directive character, the
// offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseUnpack, errors.KindArgument).
//		Directive('U').
//		Detail("malformed UTF-8 character").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Range(errors.PhasePack, "value out of range")
//	err := errors.Type(errors.PhasePack, value, "string")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
