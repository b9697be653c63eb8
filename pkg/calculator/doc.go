// Package calculator implements the arithmetic operation engine: three
// pure float64 operations (add, subtract, multiply) behind a shared
// finite-number precondition.
//
// # Validation
//
// Every operation rejects NaN and ±Infinity operands with ErrInvalidInput
// before any arithmetic is performed. Inputs that pass the precondition are
// computed with standard IEEE-754 double-precision semantics: no special
// rounding, no overflow guard. Multiplying two subnormal numbers may
// legitimately underflow to zero; that is a valid result, not an error.
//
// # Usage
//
//	engine := calculator.NewEngine()
//	sum, err := engine.Add(10, 5)
//
// or via the operation kind:
//
//	result, err := engine.Apply(calculator.OperationMultiply, -3, 4)
//
// The engine holds no state, so a single instance may serve any number of
// concurrent callers.
package calculator
