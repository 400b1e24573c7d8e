package simplicial

import (
	"fmt"
	"sort"
	"strings"
)

// Simplex is an immutable d-simplex: an ordered tuple of d+1 distinct vertex
// labels, stored in ascending canonical order. Equality, hashing, and
// ordering are all defined over this canonical vertex tuple.
//
// Complexity: construction is O(d log d) for the sort; all accessors are
// O(1) or O(d) for a defensive copy.
type Simplex struct {
	vertices []int // canonical ascending order, length == dim+1
}

// NewSimplex constructs a d-simplex from the given vertex labels.
// Duplicate labels are rejected with ErrDuplicateVertex. The input order is
// irrelevant: the result always stores vertices in ascending order.
//
// Complexity: O(d log d).
func NewSimplex(vs ...int) (Simplex, error) {
	// Defensive copy so later caller mutation of vs cannot alias our storage.
	cp := make([]int, len(vs))
	copy(cp, vs)
	sort.Ints(cp)

	// Ascending order means any duplicate is adjacent.
	for i := 1; i < len(cp); i++ {
		if cp[i] == cp[i-1] {
			return Simplex{}, fmt.Errorf("NewSimplex(%v): %w", vs, ErrDuplicateVertex)
		}
	}

	return Simplex{vertices: cp}, nil
}

// mustSimplex is an internal helper for call sites that already know the
// input is duplicate-free (e.g. faces(), which removes one vertex from an
// already-canonical tuple).
func mustSimplex(vs []int) Simplex {
	return Simplex{vertices: vs}
}

// Dim returns the dimension of sigma: len(vertices)-1.
// Complexity: O(1).
func (s Simplex) Dim() int {
	return len(s.vertices) - 1
}

// Vertices returns a defensive copy of the canonical (ascending) vertex
// tuple. Mutating the returned slice does not affect s.
// Complexity: O(d).
func (s Simplex) Vertices() []int {
	cp := make([]int, len(s.vertices))
	copy(cp, s.vertices)

	return cp
}

// Faces returns the d+1 faces of sigma, each of dimension d-1, obtained by
// removing one vertex in turn. Order is "remove index 0 first": face i omits
// the vertex at position i of the canonical tuple. This order is load-bearing
// — it fixes the sign convention used by the boundary operator.
// A 0-cell (d=0) has no faces.
//
// Complexity: O(d^2) total (d faces, each an O(d) copy).
func (s Simplex) Faces() []Simplex {
	d := s.Dim()
	if d <= 0 {
		return nil
	}
	faces := make([]Simplex, 0, d+1)
	for i := range s.vertices {
		face := make([]int, 0, d)
		face = append(face, s.vertices[:i]...)
		face = append(face, s.vertices[i+1:]...)
		faces = append(faces, mustSimplex(face))
	}

	return faces
}

// Equal reports whether s and other have the same canonical vertex tuple.
// Complexity: O(d).
func (s Simplex) Equal(other Simplex) bool {
	if len(s.vertices) != len(other.vertices) {
		return false
	}
	for i, v := range s.vertices {
		if v != other.vertices[i] {
			return false
		}
	}

	return true
}

// Less defines the total order over simplices used for canonical sorting:
// lexicographic comparison of the vertex tuples, shorter-is-less on a
// shared prefix.
// Complexity: O(d).
func (s Simplex) Less(other Simplex) bool {
	n := len(s.vertices)
	if len(other.vertices) < n {
		n = len(other.vertices)
	}
	for i := 0; i < n; i++ {
		if s.vertices[i] != other.vertices[i] {
			return s.vertices[i] < other.vertices[i]
		}
	}

	return len(s.vertices) < len(other.vertices)
}

// Key returns a string uniquely identifying s by its canonical vertex tuple,
// for use as a map key (sentinel-free internal helper, not part of the
// public surface but exported for use by sibling packages that need a
// cheap hashable form, e.g. filtration's face-position lookup).
// Complexity: O(d).
func (s Simplex) Key() string {
	var sb strings.Builder
	for i, v := range s.vertices {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", v)
	}

	return sb.String()
}

// String implements fmt.Stringer for debugging output, e.g. "<1,2,3>".
func (s Simplex) String() string {
	return "<" + s.Key() + ">"
}
