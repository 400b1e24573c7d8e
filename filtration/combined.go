package filtration

import "sort"

// Column is one sparse column of the combined boundary matrix: the
// T-positions (0-based, into the output column list — see
// CombinedBoundaryMatrix) of the faces of one cell, ascending.
type Column struct {
	Dim   int // -1 marks the reduced-homology augmentation column
	Faces []int
}

// CombinedBoundaryMatrix assembles one sparse column per cell of f.T, in T
// order, each holding the column-indices of its faces (also in T order). If
// reduced is true, a leading augmentation column (dim -1, no faces of its
// own) is prepended, and every 0-cell's column gains that augmentation
// column as its sole face — realizing reduced homology's convention that
// H_{-1} of a nonempty complex vanishes by treating every vertex as bounding
// the empty simplex.
//
// This is the combined matrix consumed by persistent-homology algorithms;
// reduction/factorization of it is out of this package's scope.
func CombinedBoundaryMatrix(f *Filtration, reduced bool) []Column {
	base := 0
	if reduced {
		base = 1
	}

	posOf := make(map[string]int, len(f.t))
	for i, e := range f.t {
		cell, err := f.complex.CellAt(e.Index, e.Dim)
		if err != nil {
			continue
		}
		posOf[cell.Key()] = base + i
	}

	cols := make([]Column, 0, len(f.t)+base)
	if reduced {
		cols = append(cols, Column{Dim: -1})
	}

	for _, e := range f.t {
		cell, err := f.complex.CellAt(e.Index, e.Dim)
		if err != nil {
			cols = append(cols, Column{Dim: e.Dim})
			continue
		}

		var faces []int
		if e.Dim == 0 {
			if reduced {
				faces = []int{0}
			}
		} else {
			for _, face := range cell.Faces() {
				if p, ok := posOf[face.Key()]; ok {
					faces = append(faces, p)
				}
			}
			sort.Ints(faces)
		}
		cols = append(cols, Column{Dim: e.Dim, Faces: faces})
	}

	return cols
}
