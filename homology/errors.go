// Sentinel error set for package homology.

package homology

import "errors"

var (
	// ErrSNFFailure is returned when the configured Solver fails to reduce a
	// boundary matrix.
	ErrSNFFailure = errors.New("homology: SNF reduction failed")
)
