// Package errors provides structured error types for the arena-bridge library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes context: the offending Go type, the
// native record key involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseWrap, errors.KindAllocation).
//		Key(key).
//		Detail("wrapper construction failed").
//		Cause(cause).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported(errors.PhaseExtract, "int64")
//	err := errors.AllocationFailed(errors.PhaseAlloc, size)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Only recoverable conditions are expressed as errors: allocation and
// construction failures, unsupported input types, use of a closed state.
// Identity-invariant violations (duplicate cache insert, delete of a missing
// entry, arena double free) panic instead; see the objcache and arena
// packages.
package errors
