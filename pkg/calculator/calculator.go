// Copyright (c) 2025, Persefoni.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package calculator

import (
	"math"

	"github.com/blakeblackwell-persefoni/calcd/pkg/errors"
)

// InvalidInputMessage is the fixed, user-visible message returned whenever
// an operand fails the finite-number precondition. Clients match on it, so
// it must not change.
const InvalidInputMessage = "invalid input: NaN and Infinity not allowed"

// ErrInvalidInput is the typed failure returned when an operand is NaN or
// ±Infinity. It carries errors.ErrCodeInvalidInput for dispatch mapping.
var ErrInvalidInput = errors.New(errors.ErrCodeInvalidInput, InvalidInputMessage)

// Operation identifies one of the supported arithmetic operations.
type Operation string

// Valid Operation constants.
const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
)

// String returns the string representation of the Operation.
func (o Operation) String() string {
	return string(o)
}

// IsValid checks if the Operation is one of the recognized kinds.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply:
		return true
	default:
		return false
	}
}

// SupportedOperations returns the list of supported operation names.
func SupportedOperations() []string {
	return []string{
		string(OperationAdd),
		string(OperationSubtract),
		string(OperationMultiply),
	}
}

// Engine provides the arithmetic operations. It is stateless: every method
// is pure and deterministic, identical inputs always yield identical
// outputs. Results follow IEEE-754 double-precision semantics, including
// natural under/overflow and signed-zero behavior.
type Engine struct{}

// NewEngine creates a new Engine instance.
func NewEngine() *Engine {
	return &Engine{}
}

// Add returns the sum of two numbers.
func (e *Engine) Add(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}
	return a + b, nil
}

// Subtract returns the difference of two numbers (a - b).
func (e *Engine) Subtract(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}
	return a - b, nil
}

// Multiply returns the product of two numbers.
func (e *Engine) Multiply(a, b float64) (float64, error) {
	if err := validateOperands(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// Apply dispatches to the operation identified by op. Unknown operations
// fail with an INVALID_REQUEST error; operand validation is shared with the
// named methods.
func (e *Engine) Apply(op Operation, a, b float64) (float64, error) {
	switch op {
	case OperationAdd:
		return e.Add(a, b)
	case OperationSubtract:
		return e.Subtract(a, b)
	case OperationMultiply:
		return e.Multiply(a, b)
	default:
		return 0, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unsupported operation", map[string]any{
				"operation": op.String(),
				"supported": SupportedOperations(),
			})
	}
}

// validateOperands enforces the finite-number precondition shared by all
// operations: both operands must be neither NaN nor ±Infinity.
func validateOperands(a, b float64) error {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return ErrInvalidInput
	}
	return nil
}
