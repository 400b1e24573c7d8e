// Package matrix: sentinel error set (unified, consistent).
// Every exported method returns these sentinels rather than panicking on a
// caller-triggered condition; panics remain reserved for programmer errors
// in unexported helpers.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when requested matrix dimensions are
	// non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange is returned by At/Set when a row or column index is
	// outside the valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch is returned by binary operations (Mul, etc.) when
	// operand shapes are incompatible.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare is returned when a square matrix is required but the
	// operand is not square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix is returned when a nil receiver or argument matrix is used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
