package simplicial

import "sort"

// term is one (cell, coefficient) pair of a Chain. Coefficients live in the
// integer coefficient ring ℤ; generalizing to an arbitrary PID is left to a
// future coefficient type parameter.
type term struct {
	cell Simplex
	coef int64
}

// Chain is a finite formal linear combination of simplices of a single fixed
// dimension, coefficients in ℤ. NewChain returns the empty chain with no
// established dimension yet; its dimension is fixed by the first term added.
// The zero value Chain{} instead has dimension 0 and accepts only 0-cells.
//
// Representation is logical, not necessarily simplified: With and Plus may leave
// duplicate cell entries or zero coefficients present. Call Simplify to
// obtain the canonical form (sorted, zero-free, duplicate-free).
type Chain struct {
	dim   int // -1 until the first term is added
	terms []term
}

// NewChain returns the zero chain (no terms, dimension unset).
func NewChain() Chain {
	return Chain{dim: -1}
}

// Dim returns the chain's fixed dimension, or -1 if it has no terms.
func (c Chain) Dim() int {
	return c.dim
}

// Len returns the number of terms currently stored (pre-Simplify count may
// include duplicates/zeros).
func (c Chain) Len() int {
	return len(c.terms)
}

// With returns a new chain equal to c plus the single term (coef, cell).
// Returns ErrDimensionMismatch if c already has terms of a different
// dimension than cell.
//
// Complexity: O(len(c)), since the existing terms are copied into the new
// chain; the result is not simplified.
func (c Chain) With(coef int64, cell Simplex) (Chain, error) {
	if c.dim != -1 && cell.Dim() != c.dim {
		return c, ErrDimensionMismatch
	}
	out := Chain{dim: cell.Dim(), terms: make([]term, len(c.terms), len(c.terms)+1)}
	copy(out.terms, c.terms)
	out.terms = append(out.terms, term{cell: cell, coef: coef})

	return out, nil
}

// Plus returns c + other. If either chain is empty (dim == -1) the result
// takes the other's dimension. Returns ErrDimensionMismatch if both chains
// have terms and disagree on dimension.
//
// Complexity: O(len(c)+len(other)) to concatenate; not simplified.
func (c Chain) Plus(other Chain) (Chain, error) {
	if c.dim != -1 && other.dim != -1 && c.dim != other.dim {
		return Chain{}, ErrDimensionMismatch
	}
	dim := c.dim
	if dim == -1 {
		dim = other.dim
	}
	out := Chain{dim: dim, terms: make([]term, 0, len(c.terms)+len(other.terms))}
	out.terms = append(out.terms, c.terms...)
	out.terms = append(out.terms, other.terms...)

	return out, nil
}

// Scale returns alpha*c: every coefficient multiplied by alpha.
// Complexity: O(len(c)).
func (c Chain) Scale(alpha int64) Chain {
	out := Chain{dim: c.dim, terms: make([]term, len(c.terms))}
	for i, t := range c.terms {
		out.terms[i] = term{cell: t.cell, coef: alpha * t.coef}
	}

	return out
}

// Neg returns -c.
func (c Chain) Neg() Chain {
	return c.Scale(-1)
}

// Simplify returns the canonical form of c: terms merged by cell (summing
// coefficients), zero-coefficient terms dropped, and the remainder sorted by
// Simplex.Less. Idempotent: Simplify(Simplify(c)) == Simplify(c) (§8 inv. 4).
//
// Complexity: O(n log n) for the sort, n = len(c.terms).
func (c Chain) Simplify() Chain {
	merged := make(map[string]term, len(c.terms))
	order := make([]string, 0, len(c.terms))
	for _, t := range c.terms {
		key := t.cell.Key()
		if existing, ok := merged[key]; ok {
			existing.coef += t.coef
			merged[key] = existing
		} else {
			merged[key] = t
			order = append(order, key)
		}
	}

	out := make([]term, 0, len(order))
	for _, key := range order {
		t := merged[key]
		if t.coef != 0 {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].cell.Less(out[j].cell) })

	return Chain{dim: c.dim, terms: out}
}

// Equal reports whether c and other represent the same chain after
// simplification.
func (c Chain) Equal(other Chain) bool {
	a, b := c.Simplify(), other.Simplify()
	if a.dim != b.dim || len(a.terms) != len(b.terms) {
		return false
	}
	for i := range a.terms {
		if a.terms[i].coef != b.terms[i].coef || !a.terms[i].cell.Equal(b.terms[i].cell) {
			return false
		}
	}

	return true
}

// Terms returns a defensive copy of c's (cell, coef) pairs in stored order;
// it does not simplify. Callers should call Simplify first to get canonical
// order and to drop duplicate or zero terms.
func (c Chain) Terms() []struct {
	Cell Simplex
	Coef int64
} {
	out := make([]struct {
		Cell Simplex
		Coef int64
	}, len(c.terms))
	for i, t := range c.terms {
		out[i].Cell = t.cell
		out[i].Coef = t.coef
	}

	return out
}

// IsZero reports whether the simplified chain has no terms.
func (c Chain) IsZero() bool {
	return len(c.Simplify().terms) == 0
}
