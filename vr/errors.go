// Sentinel error set for package vr.

package vr

import "errors"

var (
	// ErrInvalidMaxDim is returned when max_dim <= 0.
	ErrInvalidMaxDim = errors.New("vr: max_dim must be > 0")

	// ErrInvalidEpsilon is returned when the scale parameter is <= 0.
	ErrInvalidEpsilon = errors.New("vr: epsilon must be > 0")

	// ErrInvalidNu is returned when the witness-complex nu parameter is not
	// in {0, 1, 2}.
	ErrInvalidNu = errors.New("vr: nu must be 0, 1, or 2")

	// ErrInvalidMethod is returned for an unrecognized Expansion value.
	ErrInvalidMethod = errors.New("vr: unknown expansion method")

	// ErrNotSquare is returned when the VR distance matrix is not n x n.
	ErrNotSquare = errors.New("vr: distance matrix must be square")

	// ErrAsymmetric is returned when the VR distance matrix fails the
	// symmetry check within the configured tolerance.
	ErrAsymmetric = errors.New("vr: distance matrix must be symmetric")
)
