// SPDX-License-Identifier: MIT
//
// generators.go - explicit generator-chain extraction.
//
// A kernel basis alone (the last n_k - r_k columns of V_k) is not yet a
// homology basis: the image of ∂_{k+1} sits inside that kernel and must be
// quotiented out. This file expresses the scaled image basis (columns of
// U_{k+1}^-1) in the kernel's own coordinates — via V_k^-1, which maps any
// ambient k-chain to its V_k-basis coordinates — then runs a second Smith
// reduction on that coordinate matrix. The resulting invariant factors are
// the same torsion orders engine.go already derives directly from B_{k+1};
// the point of the second reduction here is solely to recover a compatible
// basis change so that generator chains can be written down explicitly.
package homology

import (
	"github.com/arvantis/simplicial/matrix"
	"github.com/arvantis/simplicial/matrix/ops"
	"github.com/arvantis/simplicial/simplicial"
)

// columns returns the submatrix formed by src's columns [start, start+count).
func columns(src *matrix.IntMatrix, start, count int) (*matrix.IntMatrix, error) {
	out, err := matrix.NewIntMatrix(src.Rows(), count)
	if err != nil {
		return nil, err
	}
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < count; j++ {
			v, err := src.At(i, start+j)
			if err != nil {
				return nil, err
			}
			if err := out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// scaleColumns multiplies column j of src by scales[j].
func scaleColumns(src *matrix.IntMatrix, scales []int64) error {
	for j, s := range scales {
		for i := 0; i < src.Rows(); i++ {
			v, err := src.At(i, j)
			if err != nil {
				return err
			}
			if err := src.Set(i, j, v*s); err != nil {
				return err
			}
		}
	}

	return nil
}

// rowsBelow returns the submatrix formed by src's rows [start, src.Rows()).
func rowsBelow(src *matrix.IntMatrix, start int) (*matrix.IntMatrix, error) {
	rows := src.Rows() - start
	out, err := matrix.NewIntMatrix(rows, src.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < src.Cols(); j++ {
			v, err := src.At(start+i, j)
			if err != nil {
				return nil, err
			}
			if err := out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// chainFromColumn builds the k-chain whose coefficients over c's k-cells are
// column j of basis (an n_k x * matrix).
func chainFromColumn(c *simplicial.Complex, k int, basis *matrix.IntMatrix, j int) (simplicial.Chain, error) {
	ch := simplicial.NewChain()
	for i := 0; i < basis.Rows(); i++ {
		coef, err := basis.At(i, j)
		if err != nil {
			return ch, err
		}
		if coef == 0 {
			continue
		}
		cell, err := c.CellAt(i+1, k)
		if err != nil {
			return ch, err
		}
		ch, err = ch.With(coef, cell)
		if err != nil {
			return ch, err
		}
	}

	return ch.Simplify(), nil
}

// buildGenerators extracts explicit generator chains for H_k. vk/vkInv are
// dimension k's SNF V and V^-1; uk1Inv/factorsK1/rk1 are dimension k+1's
// U^-1, invariant factors, and rank.
func buildGenerators(c *simplicial.Complex, k, nk, rk int, vk, vkInv, uk1Inv *matrix.IntMatrix, factorsK1 []int64, rk1 int, solver Solver) ([]Generator, error) {
	kerDim := nk - rk
	if kerDim == 0 {
		return nil, nil
	}

	z, err := columns(vk, rk, kerDim) // last kerDim columns of V_k
	if err != nil {
		return nil, err
	}

	if rk1 == 0 {
		gens := make([]Generator, kerDim)
		for j := 0; j < kerDim; j++ {
			ch, err := chainFromColumn(c, k, z, j)
			if err != nil {
				return nil, err
			}
			gens[j] = Generator{Chain: ch, Torsion: 0}
		}

		return gens, nil
	}

	im, err := columns(uk1Inv, 0, rk1) // first rk1 columns of U_{k+1}^-1
	if err != nil {
		return nil, err
	}
	if err := scaleColumns(im, factorsK1[:rk1]); err != nil {
		return nil, err
	}

	coordsFull, err := vkInv.Mul(im) // nk x rk1: V_k^-1 * image basis
	if err != nil {
		return nil, err
	}
	x, err := rowsBelow(coordsFull, rk) // kerDim x rk1: Z-basis coordinates
	if err != nil {
		return nil, err
	}

	_, s2, _, u2Inv, _, err := solver(x)
	if err != nil {
		return nil, err
	}
	factors2, rank2 := ops.InvariantFactors(s2)

	genBasis, err := z.Mul(u2Inv) // nk x kerDim: chains over k-cells
	if err != nil {
		return nil, err
	}

	// The first rank2 columns of genBasis, scaled by factors2, span the image
	// of ∂_{k+1}; the remaining kerDim-rank2 columns are the free generators.
	var gens []Generator
	for j := rank2; j < kerDim; j++ {
		ch, err := chainFromColumn(c, k, genBasis, j)
		if err != nil {
			return nil, err
		}
		gens = append(gens, Generator{Chain: ch, Torsion: 0})
	}
	for idx, f := range factors2 {
		if f <= 1 {
			continue
		}
		ch, err := chainFromColumn(c, k, genBasis, idx)
		if err != nil {
			return nil, err
		}
		gens = append(gens, Generator{Chain: ch, Torsion: f})
	}

	return gens, nil
}
