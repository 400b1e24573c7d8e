// SPDX-License-Identifier: MIT
//
// snf.go - Smith Normal Form over integer matrices.
//
// Stage 1: Validate — caller passes any m x n IntMatrix.
// Stage 2: Prepare — clone the input and start U, V, Uinv, Vinv at identity.
// Stage 3: Execute — diagonalize pivot by pivot via gcd-based row/column
//          elimination (Bezout combination), then enforce the divisibility
//          chain d_1 | d_2 | ... by folding any non-dividing remainder back
//          into the pivot column and re-eliminating.
// Stage 4: Finalize — flip signs so the diagonal is non-negative and return
//          (U, S, V, Uinv, Vinv) with U*B*V = S.
//
// This generalizes the staged Doolittle LU elimination style from float
// Gaussian elimination to integer unimodular row/column operations.
package ops

import (
	"github.com/arvantis/simplicial/matrix"
)

// Solver is the external SNF collaborator contract: given an
// integer matrix B, it returns unimodular U, V and diagonal S with
// U*B*V = S, plus the corresponding inverses.
type Solver func(b *matrix.IntMatrix) (u, s, v, uInv, vInv *matrix.IntMatrix, err error)

// SmithNormalForm is the library-bundled default Solver.
// Complexity: pivot loop is O(min(m,n)) outer iterations; each iteration's
// elimination and divisibility fix-up is bounded by O((m+n)) gcd-combine
// steps, each O(m+n) to apply — O(min(m,n)*(m+n)^2) overall in the worst
// case.
func SmithNormalForm(b *matrix.IntMatrix) (u, s, v, uInv, vInv *matrix.IntMatrix, err error) {
	if b == nil {
		return nil, nil, nil, nil, nil, matrix.ErrNilMatrix
	}

	m, n := b.Rows(), b.Cols()
	a := b.Clone()
	u, err = matrix.Identity(m)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	uInv, err = matrix.Identity(m)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	v, err = matrix.Identity(n)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}
	vInv, err = matrix.Identity(n)
	if err != nil {
		return nil, nil, nil, nil, nil, err
	}

	lim := min(m, n)
	for k := 0; k < lim; k++ {
		for {
			pi, pj, found := findPivot(a, k)
			if !found {
				// Remaining submatrix is all zero: diagonalization complete.
				goto doneDiag
			}
			if pi != k {
				if err = swapRows(a, u, uInv, k, pi); err != nil {
					return nil, nil, nil, nil, nil, err
				}
			}
			if pj != k {
				if err = swapCols(a, v, vInv, k, pj); err != nil {
					return nil, nil, nil, nil, nil, err
				}
			}

			for i := k + 1; i < m; i++ {
				val, _ := a.At(i, k)
				if val != 0 {
					if err = rowCombine(a, u, uInv, k, i); err != nil {
						return nil, nil, nil, nil, nil, err
					}
				}
			}
			for j := k + 1; j < n; j++ {
				val, _ := a.At(k, j)
				if val != 0 {
					if err = colCombine(a, v, vInv, k, j); err != nil {
						return nil, nil, nil, nil, nil, err
					}
				}
			}

			if !allZeroBelow(a, k) || !allZeroRight(a, k) {
				// Column clearing can reintroduce nonzero entries into
				// column k (it mixes column k with column j); re-run the
				// clearing passes until both directions are simultaneously
				// clear.
				continue
			}

			pivot, _ := a.At(k, k)
			if pivot == 0 {
				goto doneDiag
			}
			bi, bj, hasBad := findNonDivisible(a, k, pivot)
			if !hasBad {
				break // pivot k finalized; advance to k+1
			}
			// Fold the non-dividing entry's column into the pivot column
			// and re-eliminate; this strictly decreases |pivot|, so the
			// loop terminates.
			_ = bi
			if err = addCol(a, v, vInv, k, bj, 1); err != nil {
				return nil, nil, nil, nil, nil, err
			}
		}
	}
doneDiag:

	for k := 0; k < lim; k++ {
		val, _ := a.At(k, k)
		if val < 0 {
			if err = negateRow(a, u, uInv, k); err != nil {
				return nil, nil, nil, nil, nil, err
			}
		}
	}

	return u, a, v, uInv, vInv, nil
}

// findPivot returns the position of the smallest-magnitude nonzero entry in
// the submatrix a[k:, k:], preferring small pivots to limit coefficient
// growth during elimination.
func findPivot(a *matrix.IntMatrix, k int) (i, j int, found bool) {
	best := int64(0)
	for r := k; r < a.Rows(); r++ {
		for c := k; c < a.Cols(); c++ {
			val, _ := a.At(r, c)
			if val == 0 {
				continue
			}
			mag := abs64(val)
			if !found || mag < best {
				i, j, found, best = r, c, true, mag
			}
		}
	}

	return i, j, found
}

func allZeroBelow(a *matrix.IntMatrix, k int) bool {
	for i := k + 1; i < a.Rows(); i++ {
		if v, _ := a.At(i, k); v != 0 {
			return false
		}
	}

	return true
}

func allZeroRight(a *matrix.IntMatrix, k int) bool {
	for j := k + 1; j < a.Cols(); j++ {
		if v, _ := a.At(k, j); v != 0 {
			return false
		}
	}

	return true
}

// findNonDivisible scans a[k+1:, k+1:] for an entry not evenly divided by
// pivot; these are the entries that must still be folded into the pivot
// before moving to the next dimension.
func findNonDivisible(a *matrix.IntMatrix, k int, pivot int64) (i, j int, found bool) {
	for r := k + 1; r < a.Rows(); r++ {
		for c := k + 1; c < a.Cols(); c++ {
			val, _ := a.At(r, c)
			if val != 0 && val%pivot != 0 {
				return r, c, true
			}
		}
	}

	return 0, 0, false
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}

// InvariantFactors extracts the nonzero diagonal entries of S (the
// invariant factors d_1 | d_2 | ... | d_r) in ascending order, plus the
// rank r.
func InvariantFactors(s *matrix.IntMatrix) (factors []int64, rank int) {
	lim := min(s.Rows(), s.Cols())
	for k := 0; k < lim; k++ {
		v, _ := s.At(k, k)
		if v != 0 {
			factors = append(factors, v)
			rank++
		}
	}

	return factors, rank
}
