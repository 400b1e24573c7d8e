package simplicial

import "github.com/arvantis/simplicial/matrix"

// Boundary returns the boundary chain of sigma: for dim(sigma)=d>=1, the
// (d-1)-chain Σ_i (-1)^i * face_i(sigma), using the "remove index 0 first"
// face order. For d=0, the boundary is the zero chain (dimension unset,
// no terms).
//
// Boundary is a pure function of sigma alone — it does not require sigma to
// belong to any particular Complex. BoundaryMatrix assembles boundaries
// against a Complex's index space.
//
// Complexity: O(d^2).
func Boundary(sigma Simplex) Chain {
	if sigma.Dim() <= 0 {
		return NewChain()
	}

	c := NewChain()
	sign := int64(1)
	for _, f := range sigma.Faces() {
		c, _ = c.With(sign, f) // dimension is uniform across faces; With cannot fail here
		sign = -sign
	}

	return c
}

// BoundaryMatrix assembles the boundary matrix of dimension d: an m x n
// integer matrix where m = Size(C, d-1), n = Size(C, d), and entry (i,j) is
// the coefficient of the i-th (d-1)-cell in the boundary of the j-th d-cell.
// A zero m or n is padded to 1 (a single all-zero row or column), since
// matrix.NewIntMatrix requires positive dimensions.
//
// Faces of d-cells that are absent from C are treated as zero rows: callers
// are expected to pass a face-closed Complex (per the type's invariant),
// in which case this situation cannot arise.
//
// Complexity: O(n*d^2) to compute n boundaries of size O(d), plus O(n*d) to
// scatter them into the matrix.
func BoundaryMatrix(c *Complex, d int) (*matrix.IntMatrix, error) {
	n := c.Size(d)
	m := c.Size(d - 1)

	if d <= 0 {
		// ∂_0 is the zero map R^n -> 0; m = Size(d-1) is 0 here, so this is
		// a single all-zero row.
		rows := m
		if rows == 0 {
			rows = 1 // matrix.NewIntMatrix requires positive dims; a single
			// all-absent row represents the trivial target {0}.
		}
		cols := n
		if cols == 0 {
			cols = 1
		}
		return matrix.NewIntMatrix(rows, cols)
	}

	rows, cols := m, n
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}
	mat, err := matrix.NewIntMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return mat, nil
	}

	for j := 1; j <= n; j++ {
		cell, err := c.CellAt(j, d)
		if err != nil {
			return nil, err
		}
		bd := Boundary(cell).Simplify()
		for _, t := range bd.Terms() {
			i := c.IndexOf(t.Cell)
			if i > m {
				// Face absent from the complex: this violates the
				// face-closure invariant and indicates caller error, not a
				// runtime condition to recover from silently.
				continue
			}
			if err := mat.Set(i-1, j-1, t.Coef); err != nil {
				return nil, err
			}
		}
	}

	return mat, nil
}
