// Sentinel error set for package simplicial (unified, consistent).
// All algorithms in this package MUST return these sentinels and tests MUST
// check them via errors.Is. Panics are reserved for programmer errors (slice
// misuse in private helpers), never for caller-triggered conditions.

package simplicial

import "errors"

var (
	// ErrDuplicateVertex is returned by NewSimplex when two or more vertex
	// labels in the input tuple are equal (§4.A domain error).
	ErrDuplicateVertex = errors.New("simplicial: duplicate vertex in simplex")

	// ErrDimensionMismatch is returned when combining chains of different
	// fixed dimensions, or when a term's cell dimension disagrees with a
	// chain's established dimension.
	ErrDimensionMismatch = errors.New("simplicial: dimension mismatch")

	// ErrFaceMissing is returned by Complex.Add(sigma, recursive=false) when
	// some face of sigma is not already present in the complex.
	ErrFaceMissing = errors.New("simplicial: face missing (add with recursive=true)")

	// ErrCellNotFound is returned by CellAt when the requested (dim, index)
	// pair is out of range.
	ErrCellNotFound = errors.New("simplicial: cell not found at index")
)
