// Package errors provides structured error types with stable error codes
// for the calcd service.
//
// Errors carry an ErrorCode for programmatic classification, a
// human-readable message, an optional wrapped cause, and optional context
// for debugging. The HTTP layer maps codes to status codes; the message is
// the only part that crosses the wire.
//
// Usage:
//
//	if math.IsNaN(a) {
//	    return errors.New(errors.ErrCodeInvalidInput, "invalid input: NaN and Infinity not allowed")
//	}
//
// Wrapping preserves errors.Is/errors.As chains:
//
//	return errors.Wrap(errors.ErrCodeInternal, "encode failed", err)
package errors
