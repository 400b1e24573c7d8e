package homology_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arvantis/simplicial/homology"
	"github.com/arvantis/simplicial/vr"
)

// TestAnnulusBetti builds the Vietoris-Rips complex of a 3x3 grid with its
// center point removed (8 points) at epsilon=sqrt(2): the outer grid boundary
// and the chorded inner diamond form an annulus, so H_1 carries the loop
// around the missing center.
func TestAnnulusBetti(t *testing.T) {
	pts := [][2]float64{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}
	n := len(pts)
	raw := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			raw[i*n+j] = math.Hypot(dx, dy)
		}
	}
	d := mat.NewDense(n, n, raw)

	c, _, err := vr.Build(d, math.Sqrt2)
	require.NoError(t, err)
	require.Equal(t, 2, c.Dim())
	require.Equal(t, 8, c.Size(0))
	require.Equal(t, 12, c.Size(1))
	require.Equal(t, 4, c.Size(2))

	res, err := homology.Compute(c)
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 0}, res.Betti())
	require.Equal(t, 0, res.Euler())

	require.NoError(t, homology.Sanity(c, res))
}

// cubeVertices returns the 8 unit-cube corners {0,1}^3 and their pairwise
// Euclidean distance matrix. Every pairwise distance lies in
// {1, sqrt(2), sqrt(3)}, so at epsilon = sqrt(3) (the cube's space diagonal)
// every pair is admitted: the 1-skeleton is the complete graph on 8 vertices.
func cubeVertices() (pts [][3]float64, d *mat.Dense) {
	pts = make([][3]float64, 0, 8)
	for x := 0.0; x <= 1; x++ {
		for y := 0.0; y <= 1; y++ {
			for z := 0.0; z <= 1; z++ {
				pts = append(pts, [3]float64{x, y, z})
			}
		}
	}
	n := len(pts)
	raw := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dx := pts[i][0] - pts[j][0]
			dy := pts[i][1] - pts[j][1]
			dz := pts[i][2] - pts[j][2]
			raw[i*n+j] = math.Sqrt(dx*dx + dy*dy + dz*dz)
		}
	}

	return pts, mat.NewDense(n, n, raw)
}

// TestCubeFullComplexAtDiagonalScale builds the Vietoris-Rips complex of the
// 8 unit-cube vertices at epsilon = sqrt(3), the cube's space diagonal: every
// pair is within range, so with max_dim=3 the complex is the full 3-skeleton
// of the 7-simplex on 8 vertices (8 vertices, 28 edges, 56 triangles, 70
// tetrahedra) rather than stopping at some lower-dimensional shape.
//
// A witness complex built over the same 8 points as both landmarks and
// witnesses (nu=0) admits exactly the same edges: for any pair a,b, using a
// or b itself as the witness gives cost D[a][b] <= sqrt(3) (the largest
// distance in the cloud), and the minimum over all witnesses can only be
// lower, so every pair is within epsilon=sqrt(3). So VR and witness agree on the full
// complex here, which this test checks directly.
//
// The k-skeleton (k<n) of an n-simplex is homotopy equivalent to a wedge of
// C(n, k+1) k-spheres; for n=7, k=3 that is C(7,4)=35 3-spheres, giving
// Betti numbers [1, 0, 0, 35]. The Euler-Poincare check confirms this
// independently of that combinatorial fact: size-alternating-sum
// 8-28+56-70 = -34 equals 1-0+0-35 = -34.
func TestCubeFullComplexAtDiagonalScale(t *testing.T) {
	_, d := cubeVertices()

	c, _, err := vr.Build(d, math.Sqrt(3), vr.WithMaxDim(3))
	require.NoError(t, err)
	require.Equal(t, 3, c.Dim())
	require.Equal(t, 8, c.Size(0))
	require.Equal(t, 28, c.Size(1))
	require.Equal(t, 56, c.Size(2))
	require.Equal(t, 70, c.Size(3))

	wc, _, err := vr.Witness(d, math.Sqrt(3), 0, vr.WithMaxDim(3))
	require.NoError(t, err)
	require.Equal(t, c.Dim(), wc.Dim())
	for dim := 0; dim <= c.Dim(); dim++ {
		require.Equal(t, c.Size(dim), wc.Size(dim))
	}

	res, err := homology.Compute(c)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 0, 35}, res.Betti())
	require.Equal(t, -34, res.Euler())

	require.NoError(t, homology.Sanity(c, res))
}
