// Sentinel error set for package filtration.

package filtration

import "errors"

var (
	// ErrInvalidDivisions is returned by Iterate when divisions < 0.
	ErrInvalidDivisions = errors.New("filtration: divisions must be >= 0")

	// ErrMalformedLine is returned by ReadText when a text-format line does
	// not parse as vertex-labels-followed-by-value.
	ErrMalformedLine = errors.New("filtration: malformed line")
)
