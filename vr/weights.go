package vr

import (
	"gonum.org/v1/gonum/floats"

	"github.com/arvantis/simplicial/simplicial"
)

// Weights holds per-dimension filtration values, indexed by a cell's 1-based
// Complex index within its dimension: Weights[d][i-1] is the weight of the
// i-th d-cell.
type Weights map[int][]float64

// At returns the weight of sigma, given its complex c. Returns 0 and false
// if sigma or its dimension is not tracked.
func (w Weights) At(c *simplicial.Complex, sigma simplicial.Simplex) (float64, bool) {
	d := sigma.Dim()
	vec, ok := w[d]
	if !ok {
		return 0, false
	}
	idx := c.IndexOf(sigma)
	if idx < 1 || idx > len(vec) {
		return 0, false
	}

	return vec[idx-1], true
}

func (w Weights) set(d, idx1 int, v float64) {
	vec := w[d]
	for len(vec) < idx1 {
		vec = append(vec, 0)
	}
	vec[idx1-1] = v
	w[d] = vec
}

// assignWeights fills in Weights per step 5: w[0] = 0, w[1][e] =
// the edge's distance, and for d >= 2, w[d][sigma] = max over (d-1)-faces
// tau of sigma of w[d-1][tau]. This realizes the VR filtration value: a
// simplex enters at the scale equal to its longest pairwise vertex
// distance.
func assignWeights(c *simplicial.Complex, edgeWeight func(u, v int) float64) Weights {
	w := make(Weights)
	n0 := c.Size(0)
	if n0 > 0 {
		w[0] = make([]float64, n0) // all zero
	}

	for _, e := range c.Cells(1) {
		vs := e.Vertices()
		val := edgeWeight(vs[0], vs[1])
		w.set(1, c.IndexOf(e), val)
	}

	for d := 2; d <= c.Dim(); d++ {
		for _, sigma := range c.Cells(d) {
			faces := sigma.Faces()
			vals := make([]float64, len(faces))
			for i, face := range faces {
				vals[i], _ = w.At(c, face)
			}
			best, _ := floats.Max(vals)
			w.set(d, c.IndexOf(sigma), best)
		}
	}

	return w
}
