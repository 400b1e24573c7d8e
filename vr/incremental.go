package vr

import "github.com/arvantis/simplicial/simplicial"

// expandIncremental implements the Incremental nerve-expansion algorithm:
// for each vertex u, recursively extend the running simplex
// tau (initially {u}) by each candidate v in its current lower-neighbor
// set, narrowing the candidate set to N ∩ lower_nbrs(v) at each step, and
// stopping once tau reaches dimension kMax.
func expandIncremental(c *simplicial.Complex, adj *adjacency, kMax int) error {
	for u := 0; u < adj.n; u++ {
		seed, err := simplicial.NewSimplex(u)
		if err != nil {
			return err
		}
		if err := extend(c, adj, seed.Vertices(), adj.lowerNeighbors(u), kMax); err != nil {
			return err
		}
	}

	return nil
}

// extend grows tau (a slice of vertex labels, already in the complex) by
// each vertex in candidates, inserting the resulting simplex and recursing
// with a narrowed candidate set, until tau's dimension reaches kMax.
func extend(c *simplicial.Complex, adj *adjacency, tau []int, candidates []int, kMax int) error {
	if len(tau)-1 >= kMax {
		return nil
	}
	for _, v := range candidates {
		newTau := append(append([]int{}, tau...), v)
		sigma, err := simplicial.NewSimplex(newTau...)
		if err != nil {
			return err
		}
		if _, err := c.Add(sigma, true); err != nil {
			return err
		}
		newCandidates := intersectSorted(candidates, adj.lowerNeighbors(v))
		if err := extend(c, adj, newTau, newCandidates, kMax); err != nil {
			return err
		}
	}

	return nil
}
