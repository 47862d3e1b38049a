package matrix

import "errors"

// Sentinel errors returned by this package. Callers match them with
// errors.Is; operations that add context wrap them with %w.
var (
	// ErrInvalidDimension indicates a requested row or column count below 1.
	// Zero-sized matrices are a hard construction error.
	ErrInvalidDimension = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside [0,R)×[0,C).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates operand shapes incompatible with the
	// requested operation (elementwise shapes differ, or inner product
	// dimensions disagree).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidRange indicates a randomization interval with max <= min.
	ErrInvalidRange = errors.New("matrix: max must be greater than min")
)
