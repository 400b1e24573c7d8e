// SPDX-License-Identifier: MIT
//
// elementary.go - unimodular row/column transforms shared by snf.go, and
// their companion updates to the tracked inverse matrices (Uinv, Vinv).
//
// Every transform here is applied identically to A and to the matrix that
// accumulates it (U for row transforms, V for column transforms); the
// inverse-tracking matrix receives the inverse (adjugate) companion
// transform: a 2x2 unimodular transform (p,q,s,t) on rows/cols
// (r1,r2) of A/U pairs with the transform (t,-s,-q,p) on columns/rows
// (r1,r2) of Uinv, and symmetrically for V/Vinv.
package ops

import "github.com/arvantis/simplicial/matrix"

// extgcd returns g = gcd(|a|,|b|) (g >= 0) and Bezout coefficients x, y with
// x*a + y*b = g.
func extgcd(a, b int64) (g, x, y int64) {
	if b == 0 {
		if a < 0 {
			return -a, -1, 0
		}

		return a, 1, 0
	}
	g, x1, y1 := extgcd(b, a%b)

	return g, y1, x1 - (a/b)*y1
}

// apply2x2Row replaces rows r1,r2 of mat with the linear combination
// newR1 = p*r1 + q*r2, newR2 = s*r1 + t*r2, computed from the original
// values (no aliasing).
func apply2x2Row(mat *matrix.IntMatrix, r1, r2 int, p, q, s, t int64) error {
	for col := 0; col < mat.Cols(); col++ {
		v1, err := mat.At(r1, col)
		if err != nil {
			return err
		}
		v2, err := mat.At(r2, col)
		if err != nil {
			return err
		}
		if err := mat.Set(r1, col, p*v1+q*v2); err != nil {
			return err
		}
		if err := mat.Set(r2, col, s*v1+t*v2); err != nil {
			return err
		}
	}

	return nil
}

// apply2x2Col is the column-wise dual of apply2x2Row.
func apply2x2Col(mat *matrix.IntMatrix, c1, c2 int, p, q, s, t int64) error {
	for row := 0; row < mat.Rows(); row++ {
		v1, err := mat.At(row, c1)
		if err != nil {
			return err
		}
		v2, err := mat.At(row, c2)
		if err != nil {
			return err
		}
		if err := mat.Set(row, c1, p*v1+q*v2); err != nil {
			return err
		}
		if err := mat.Set(row, c2, s*v1+t*v2); err != nil {
			return err
		}
	}

	return nil
}

// rowCombine eliminates A[i][k] against the pivot A[k][k] using an extended-
// gcd Bezout combination of rows k and i, applying the same transform to U
// and the companion transform to Uinv.
func rowCombine(a, u, uInv *matrix.IntMatrix, k, i int) error {
	pivot, _ := a.At(k, k)
	below, _ := a.At(i, k)
	g, x, y := extgcd(pivot, below)
	if g == 0 {
		return nil
	}
	p, q, s, t := x, y, -(below / g), pivot/g
	if pivot != 0 && below%pivot == 0 {
		// The pivot already divides the entry: subtract a multiple of row k
		// so that row k itself is left unchanged.
		p, q, s, t = 1, 0, -(below / pivot), 1
	}
	if err := apply2x2Row(a, k, i, p, q, s, t); err != nil {
		return err
	}
	if err := apply2x2Row(u, k, i, p, q, s, t); err != nil {
		return err
	}

	return apply2x2Col(uInv, k, i, t, -s, -q, p)
}

// colCombine is the column-wise dual of rowCombine, eliminating A[k][j]
// against the pivot A[k][k].
func colCombine(a, v, vInv *matrix.IntMatrix, k, j int) error {
	pivot, _ := a.At(k, k)
	right, _ := a.At(k, j)
	g, x, y := extgcd(pivot, right)
	if g == 0 {
		return nil
	}
	p, q, s, t := x, y, -(right / g), pivot/g
	if pivot != 0 && right%pivot == 0 {
		// Column-wise dual of the divisible case in rowCombine.
		p, q, s, t = 1, 0, -(right / pivot), 1
	}
	if err := apply2x2Col(a, k, j, p, q, s, t); err != nil {
		return err
	}
	if err := apply2x2Col(v, k, j, p, q, s, t); err != nil {
		return err
	}

	return apply2x2Row(vInv, k, j, t, -s, -q, p)
}

// addCol performs C_dst += coef*C_src on A and V, with the companion update
// on Vinv. Used by the divisibility fix-up pass in snf.go.
func addCol(a, v, vInv *matrix.IntMatrix, dst, src int, coef int64) error {
	if err := apply2x2Col(a, src, dst, 1, 0, coef, 1); err != nil {
		return err
	}
	if err := apply2x2Col(v, src, dst, 1, 0, coef, 1); err != nil {
		return err
	}

	return apply2x2Row(vInv, src, dst, 1, -coef, 0, 1)
}

func swapRows(a, u, uInv *matrix.IntMatrix, i, j int) error {
	if err := swapRowsIn(a, i, j); err != nil {
		return err
	}
	if err := swapRowsIn(u, i, j); err != nil {
		return err
	}

	return swapColsIn(uInv, i, j)
}

func swapCols(a, v, vInv *matrix.IntMatrix, i, j int) error {
	if err := swapColsIn(a, i, j); err != nil {
		return err
	}
	if err := swapColsIn(v, i, j); err != nil {
		return err
	}

	return swapRowsIn(vInv, i, j)
}

func negateRow(a, u, uInv *matrix.IntMatrix, i int) error {
	if err := negateRowIn(a, i); err != nil {
		return err
	}
	if err := negateRowIn(u, i); err != nil {
		return err
	}

	return negateColIn(uInv, i)
}

func swapRowsIn(mat *matrix.IntMatrix, i, j int) error {
	if i == j {
		return nil
	}
	for col := 0; col < mat.Cols(); col++ {
		v1, err := mat.At(i, col)
		if err != nil {
			return err
		}
		v2, err := mat.At(j, col)
		if err != nil {
			return err
		}
		if err := mat.Set(i, col, v2); err != nil {
			return err
		}
		if err := mat.Set(j, col, v1); err != nil {
			return err
		}
	}

	return nil
}

func swapColsIn(mat *matrix.IntMatrix, i, j int) error {
	if i == j {
		return nil
	}
	for row := 0; row < mat.Rows(); row++ {
		v1, err := mat.At(row, i)
		if err != nil {
			return err
		}
		v2, err := mat.At(row, j)
		if err != nil {
			return err
		}
		if err := mat.Set(row, i, v2); err != nil {
			return err
		}
		if err := mat.Set(row, j, v1); err != nil {
			return err
		}
	}

	return nil
}

func negateRowIn(mat *matrix.IntMatrix, i int) error {
	for col := 0; col < mat.Cols(); col++ {
		v, err := mat.At(i, col)
		if err != nil {
			return err
		}
		if err := mat.Set(i, col, -v); err != nil {
			return err
		}
	}

	return nil
}

func negateColIn(mat *matrix.IntMatrix, j int) error {
	for row := 0; row < mat.Rows(); row++ {
		v, err := mat.At(row, j)
		if err != nil {
			return err
		}
		if err := mat.Set(row, j, -v); err != nil {
			return err
		}
	}

	return nil
}
