// SPDX-License-Identifier: MIT
//
// sanity.go - an independent cross-check of β_0 against the connected
// components of the 1-skeleton.
//
// Rather than re-deriving connectivity with a hand-rolled traversal sharing
// code with the SNF-based engine, this walks the complex's vertices and
// edges into a gonum graph.Undirected and asks graph/topo for its connected
// components — a differently-implemented check of the same invariant.
package homology

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/arvantis/simplicial/simplicial"
)

// ErrBettiZeroMismatch is returned by Sanity when the engine's β_0 disagrees
// with the independently computed component count.
var ErrBettiZeroMismatch = fmt.Errorf("homology: beta_0 does not match component count")

// Sanity cross-checks r's β_0 against the number of connected components of
// c's 1-skeleton, computed independently via gonum's graph/topo. Returns
// ErrBettiZeroMismatch (wrapped with both values) if they disagree.
func Sanity(c *simplicial.Complex, r *Result) error {
	g := simple.NewUndirectedGraph()
	for i := 1; i <= c.Size(0); i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	for _, e := range c.Cells(1) {
		vs := e.Vertices()
		uv, _ := simplicial.NewSimplex(vs[0])
		vv, _ := simplicial.NewSimplex(vs[1])
		u := simple.Node(int64(c.IndexOf(uv)))
		v := simple.Node(int64(c.IndexOf(vv)))
		g.SetEdge(simple.Edge{F: u, T: v})
	}

	components := topo.ConnectedComponents(g)

	dims := r.Dimensions()
	if len(dims) == 0 {
		if c.Size(0) != 0 {
			return fmt.Errorf("homology.Sanity: empty result for nonempty complex: %w", ErrBettiZeroMismatch)
		}

		return nil
	}

	if dims[0].Betti != len(components) {
		return fmt.Errorf("homology.Sanity: beta_0=%d, components=%d: %w", dims[0].Betti, len(components), ErrBettiZeroMismatch)
	}

	return nil
}
