package homology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvantis/simplicial/homology"
	"github.com/arvantis/simplicial/matrix"
	"github.com/arvantis/simplicial/matrix/ops"
	"github.com/arvantis/simplicial/simplicial"
)

func addSimplex(t *testing.T, c *simplicial.Complex, vs ...int) {
	t.Helper()
	s, err := simplicial.NewSimplex(vs...)
	require.NoError(t, err)
	_, err = c.Add(s, true)
	require.NoError(t, err)
}

// TestTriangleBoundary reproduces S3: three edges forming a triangle
// boundary with no filling 2-cell. β = [1, 1].
func TestTriangleBoundary(t *testing.T) {
	c := simplicial.NewComplex()
	addSimplex(t, c, 1, 2)
	addSimplex(t, c, 2, 3)
	addSimplex(t, c, 3, 1)

	res, err := homology.Compute(c)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, res.Betti())
	require.Equal(t, 0, res.Euler())
}

// TestTextbookMixedComplex reproduces S1: a filled triangle plus a pendant
// 4-cycle plus an isolated vertex. β = [2, 1, 0], Euler = 1.
func TestTextbookMixedComplex(t *testing.T) {
	c := simplicial.NewComplex()
	addSimplex(t, c, 1, 2, 3)
	addSimplex(t, c, 2, 4)
	addSimplex(t, c, 3, 4)
	addSimplex(t, c, 5, 4)
	addSimplex(t, c, 6)

	res, err := homology.Compute(c)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, res.Betti())
	require.Equal(t, 1, res.Euler())

	require.NoError(t, homology.Sanity(c, res))
}

// TestEulerPoincare checks invariant 7 on a filled triangle with an attached
// hollow loop: Σ_k (-1)^k size(C,k) == Σ_k (-1)^k β_k.
func TestEulerPoincare(t *testing.T) {
	build := func() *simplicial.Complex {
		c := simplicial.NewComplex()
		addSimplex(t, c, 1, 2, 3)
		addSimplex(t, c, 2, 4)
		addSimplex(t, c, 3, 4)

		return c
	}

	c := build()
	res, err := homology.Compute(c)
	require.NoError(t, err)

	cellEuler := 0
	for k := 0; k <= c.Dim(); k++ {
		if k%2 == 0 {
			cellEuler += c.Size(k)
		} else {
			cellEuler -= c.Size(k)
		}
	}
	require.Equal(t, cellEuler, res.Euler())
}

// TestBoundarySquaredIsZero checks invariant 1 directly on the
// boundary matrices: ∂_{k-1} * ∂_k = 0 for every k >= 2.
func TestBoundarySquaredIsZero(t *testing.T) {
	c := simplicial.NewComplex()
	addSimplex(t, c, 1, 2, 3)
	addSimplex(t, c, 2, 4)
	addSimplex(t, c, 3, 4)

	for k := 2; k <= c.Dim(); k++ {
		bk, err := simplicial.BoundaryMatrix(c, k)
		require.NoError(t, err)
		bk1, err := simplicial.BoundaryMatrix(c, k-1)
		require.NoError(t, err)
		prod, err := bk1.Mul(bk)
		require.NoError(t, err)
		require.True(t, prod.IsZero())
	}
}

// TestEmptyComplex checks that an empty complex produces an empty result
// without error.
func TestEmptyComplex(t *testing.T) {
	c := simplicial.NewComplex()
	res, err := homology.Compute(c)
	require.NoError(t, err)
	require.Empty(t, res.Betti())
	require.Equal(t, 0, res.Euler())
}

// TestGeneratorsFreeRankMatchesBetti checks that WithGenerators produces
// exactly β_k free generators (Torsion == 0) per dimension, for a complex
// with both free and (by construction) no torsion part.
func TestGeneratorsFreeRankMatchesBetti(t *testing.T) {
	c := simplicial.NewComplex()
	addSimplex(t, c, 1, 2)
	addSimplex(t, c, 2, 3)
	addSimplex(t, c, 3, 1)

	res, err := homology.Compute(c, homology.WithGenerators())
	require.NoError(t, err)

	for _, dim := range res.Dimensions() {
		free := 0
		for _, g := range dim.Generators {
			if g.Torsion == 0 {
				free++
			}
			require.Equal(t, dim.K, g.Chain.Dim())
		}
		require.Equal(t, dim.Betti, free)
	}
}

// TestWithSolverOverride checks that WithSolver routes every boundary-matrix
// reduction through the supplied function, and that it leaves the
// process-wide default solver untouched.
func TestWithSolverOverride(t *testing.T) {
	c := simplicial.NewComplex()
	addSimplex(t, c, 1, 2)
	addSimplex(t, c, 2, 3)
	addSimplex(t, c, 3, 1)

	calls := 0
	spy := func(b *matrix.IntMatrix) (u, s, v, uInv, vInv *matrix.IntMatrix, err error) {
		calls++

		return ops.SmithNormalForm(b)
	}

	res, err := homology.Compute(c, homology.WithSolver(spy))
	require.NoError(t, err)
	require.Equal(t, []int{1, 1}, res.Betti())
	require.Equal(t, c.Dim()+2, calls)

	other, err := homology.Compute(c)
	require.NoError(t, err)
	require.Equal(t, res.Betti(), other.Betti())
}
