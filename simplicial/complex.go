// SPDX-License-Identifier: MIT
//
// complex.go - the simplicial Complex type: a face-closed collection of
// simplices indexed per dimension, and incremental construction.
//
// Design mirrors the donor core.Graph: a small struct holding dimension-
// partitioned storage plus a lookup index, with one orchestrating public
// method (Add) and thin read-only accessors (Size/Cells/IndexOf/CellAt).
// Unlike core.Graph, Complex is not internally synchronized — construction
// here is single-threaded and synchronous.
package simplicial

// Complex is a collection of simplices closed under the face relation: if
// sigma is in the complex, every face of sigma is too. Cells are partitioned
// by dimension into index-ordered lists; each cell's 1-based index within
// its dimension is assigned at insertion and never changes.
type Complex struct {
	byDim []([]Simplex) // byDim[d] holds the d-cells in insertion (index) order
	index map[string]int
}

// NewComplex returns an empty complex.
func NewComplex() *Complex {
	return &Complex{index: make(map[string]int)}
}

// ensureDim grows byDim so that byDim[d] is addressable.
func (c *Complex) ensureDim(d int) {
	for len(c.byDim) <= d {
		c.byDim = append(c.byDim, nil)
	}
}

// Dim returns the dimension of the complex: the largest d with Size(d) > 0,
// or -1 for the empty complex.
// Complexity: O(D) where D is the number of dimension buckets.
func (c *Complex) Dim() int {
	for d := len(c.byDim) - 1; d >= 0; d-- {
		if len(c.byDim[d]) > 0 {
			return d
		}
	}

	return -1
}

// Size returns the number of d-cells currently in the complex.
// Complexity: O(1).
func (c *Complex) Size(d int) int {
	if d < 0 || d >= len(c.byDim) {
		return 0
	}

	return len(c.byDim[d])
}

// Cells returns the d-cells in index order (index 1 first). The returned
// slice is a defensive copy; mutating it does not affect the complex.
// Complexity: O(Size(d)).
func (c *Complex) Cells(d int) []Simplex {
	if d < 0 || d >= len(c.byDim) {
		return nil
	}
	out := make([]Simplex, len(c.byDim[d]))
	copy(out, c.byDim[d])

	return out
}

// IndexOf returns the 1-based index of sigma within its dimension's list, or
// Size(dim(sigma))+1 (a sentinel strictly greater than any valid index) if
// sigma is absent.
// Complexity: O(1).
func (c *Complex) IndexOf(sigma Simplex) int {
	if idx, ok := c.index[sigma.Key()]; ok {
		return idx
	}

	return c.Size(sigma.Dim()) + 1
}

// CellAt returns the i-th (1-based) cell of dimension d, or ErrCellNotFound
// if i is out of [1, Size(d)].
// Complexity: O(1).
func (c *Complex) CellAt(i, d int) (Simplex, error) {
	if d < 0 || d >= len(c.byDim) || i < 1 || i > len(c.byDim[d]) {
		return Simplex{}, ErrCellNotFound
	}

	return c.byDim[d][i-1], nil
}

// Has reports whether sigma is already present in the complex.
func (c *Complex) Has(sigma Simplex) bool {
	_, ok := c.index[sigma.Key()]

	return ok
}

// Add inserts sigma into the complex. If recursive is true, any missing
// face of sigma is inserted first (recursively, so every face is inserted
// before any cell that has it as a face), then sigma itself. If recursive is false and any face of sigma
// is absent, Add fails with ErrFaceMissing and the complex is left
// unchanged. If sigma is already present, Add is a no-op and returns an
// empty slice.
//
// Returns the list of cells newly inserted by this call, in insertion
// order (faces before the cell that required them).
//
// Complexity: O(size of sigma's closure) in the worst case (recursive),
// O(d) to check face presence otherwise.
func (c *Complex) Add(sigma Simplex, recursive bool) ([]Simplex, error) {
	if c.Has(sigma) {
		return nil, nil
	}

	d := sigma.Dim()
	if d > 0 {
		faces := sigma.Faces()
		if !recursive {
			for _, f := range faces {
				if !c.Has(f) {
					return nil, ErrFaceMissing
				}
			}
		} else {
			var inserted []Simplex
			for _, f := range faces {
				if c.Has(f) {
					continue
				}
				sub, err := c.Add(f, true)
				if err != nil {
					return inserted, err
				}
				inserted = append(inserted, sub...)
			}
			inserted = append(inserted, c.insert(sigma))

			return inserted, nil
		}
	}

	return []Simplex{c.insert(sigma)}, nil
}

// insert appends sigma to its dimension bucket and records its 1-based
// index. Caller must have already verified sigma is absent.
func (c *Complex) insert(sigma Simplex) Simplex {
	d := sigma.Dim()
	c.ensureDim(d)
	c.byDim[d] = append(c.byDim[d], sigma)
	c.index[sigma.Key()] = len(c.byDim[d])

	return sigma
}
