package simplicial_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvantis/simplicial/simplicial"
)

func TestBoundaryOfTriangle(t *testing.T) {
	tri, _ := simplicial.NewSimplex(1, 2, 3)
	bd := simplicial.Boundary(tri).Simplify()

	require.Equal(t, 3, bd.Len())
	for _, term := range bd.Terms() {
		require.Equal(t, 1, term.Cell.Dim())
	}
}

func TestBoundaryOfVertexIsZero(t *testing.T) {
	v, _ := simplicial.NewSimplex(7)
	require.True(t, simplicial.Boundary(v).IsZero())
}

func TestBoundaryMatrixShapeAndEntries(t *testing.T) {
	c := simplicial.NewComplex()
	tri, _ := simplicial.NewSimplex(1, 2, 3)
	_, err := c.Add(tri, true)
	require.NoError(t, err)

	b2, err := simplicial.BoundaryMatrix(c, 2)
	require.NoError(t, err)
	require.Equal(t, 3, b2.Rows()) // 3 edges
	require.Equal(t, 1, b2.Cols()) // 1 triangle

	colSum := int64(0)
	for i := 0; i < b2.Rows(); i++ {
		v, err := b2.At(i, 0)
		require.NoError(t, err)
		colSum += v
	}
	require.Equal(t, int64(1), colSum) // alternating sum +1-1+1
}

// TestBoundarySquaredZero checks invariant 1 for a filled triangle.
func TestBoundarySquaredZero(t *testing.T) {
	c := simplicial.NewComplex()
	tri, _ := simplicial.NewSimplex(1, 2, 3)
	_, err := c.Add(tri, true)
	require.NoError(t, err)

	b1, err := simplicial.BoundaryMatrix(c, 1)
	require.NoError(t, err)
	b2, err := simplicial.BoundaryMatrix(c, 2)
	require.NoError(t, err)

	prod, err := b1.Mul(b2)
	require.NoError(t, err)
	require.True(t, prod.IsZero())
}
