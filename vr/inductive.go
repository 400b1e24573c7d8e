package vr

import "github.com/arvantis/simplicial/simplicial"

// expandInductive implements the Inductive nerve-expansion algorithm: for
// d = 1..kMax-1, for each existing d-simplex tau, compute
// N(tau) = the intersection of lower_nbrs(u) over vertices u of tau, and
// insert tau U {v} for every v in N(tau).
//
// Complexity: O(sum over d-simplices of (d * avg-degree)) for the
// intersections, plus complex-insertion cost.
func expandInductive(c *simplicial.Complex, adj *adjacency, kMax int) error {
	for d := 1; d < kMax; d++ {
		cells := c.Cells(d) // snapshot: this pass only adds (d+1)-cells
		for _, tau := range cells {
			vs := tau.Vertices()
			var nbrs []int
			for i, u := range vs {
				ln := adj.lowerNeighbors(u)
				if i == 0 {
					nbrs = ln
				} else {
					nbrs = intersectSorted(nbrs, ln)
				}
			}
			for _, v := range nbrs {
				newVerts := append(append([]int{}, vs...), v)
				sigma, err := simplicial.NewSimplex(newVerts...)
				if err != nil {
					return err
				}
				if _, err := c.Add(sigma, true); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
