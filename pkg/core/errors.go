package core

import "errors"

// Contract-violation errors. These signal programming mistakes in scene
// construction, not recoverable runtime conditions, and should be surfaced
// immediately rather than retried.
var (
	// ErrNonInvertibleMatrix is returned when inverting a matrix whose
	// determinant is zero within Epsilon.
	ErrNonInvertibleMatrix = errors.New("matrix is not invertible")

	// ErrDegenerateVector is returned when normalizing a zero-length vector.
	ErrDegenerateVector = errors.New("cannot normalize a zero-length vector")

	// ErrInvalidOperand is returned when an operation requiring vectors is
	// given a point.
	ErrInvalidOperand = errors.New("operation requires a vector operand")
)
