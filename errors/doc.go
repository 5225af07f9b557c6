// Package errors provides structured error types for binpack.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// Every Kind maps onto one of the four host error classes reported to callers:
// ArgumentError, RangeError, TypeError and RuntimeError.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseUnpack, errors.KindArgument).
//		Path("#2(U)").
//		Detail("malformed UTF-8 character").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Range(errors.PhasePack, v, "pack(U): value out of range")
//	err := errors.SuffixNotAllowed('<', "sSiIlLqQjJ")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
