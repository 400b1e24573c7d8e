// SPDX-License-Identifier: MIT
//
// engine.go - the per-dimension homology computation.
//
// Stage 1: Validate — none beyond what BoundaryMatrix itself enforces.
// Stage 2: Prepare — assemble and reduce every boundary matrix B_0..B_{D+1}
//          once, up front, since each B_k's rank feeds both dimension k-1
//          (as r_{k+1}) and dimension k (as r_k).
// Stage 3: Execute — derive β_k, torsion, and (optionally) generators per
//          dimension from the cached reductions.
// Stage 4: Finalize — return the ordered per-dimension Result.
package homology

import (
	"fmt"

	"github.com/arvantis/simplicial/matrix"
	"github.com/arvantis/simplicial/matrix/ops"
	"github.com/arvantis/simplicial/simplicial"
)

// reduction caches one dimension's boundary-matrix SNF, since both
// neighboring dimensions in the chain complex consult it.
type reduction struct {
	rank    int
	factors []int64
	v       *matrix.IntMatrix
	vInv    *matrix.IntMatrix
	uInv    *matrix.IntMatrix
}

// Dimension is one homology group H_k's computed invariants.
type Dimension struct {
	K          int
	Betti      int
	Torsion    []int64 // invariant factors d > 1, ascending; empty if H_k is free
	Generators []Generator
}

// Generator is one generator chain of a homology group: Torsion == 0 marks a
// free generator, Torsion == d > 1 marks a Z/d torsion generator.
type Generator struct {
	Chain   simplicial.Chain
	Torsion int64
}

// Result holds the ordered (k = 0..dim(C)) homology computation.
type Result struct {
	dims []Dimension
}

// Dimensions returns the per-dimension results in k-ascending order.
func (r *Result) Dimensions() []Dimension {
	out := make([]Dimension, len(r.dims))
	copy(out, r.dims)

	return out
}

// Compute assembles and reduces the boundary matrices of c dimension by
// dimension, returning Betti numbers, torsion coefficients, and (with
// WithGenerators) explicit generator chains for each H_k, k = 0..dim(C).
//
// Complexity: dominated by D+2 Solver calls, D = dim(C), each on an
// n_{k-1} x n_k integer matrix.
func Compute(c *simplicial.Complex, opts ...Option) (*Result, error) {
	cfg := newConfig(opts...)

	d := c.Dim()
	if d < 0 {
		return &Result{}, nil
	}

	reds := make([]reduction, d+2) // reds[k] reduces B_k, k = 0..d+1
	for k := 0; k <= d+1; k++ {
		bk, err := simplicial.BoundaryMatrix(c, k)
		if err != nil {
			return nil, fmt.Errorf("homology.Compute: boundary matrix dim %d: %w", k, err)
		}
		_, s, v, uInv, vInv, err := cfg.solver(bk)
		if err != nil {
			return nil, fmt.Errorf("homology.Compute: dim %d: %w: %v", k, ErrSNFFailure, err)
		}
		factors, rank := ops.InvariantFactors(s)
		reds[k] = reduction{rank: rank, factors: factors, v: v, vInv: vInv, uInv: uInv}
	}

	dims := make([]Dimension, d+1)
	for k := 0; k <= d; k++ {
		nk := c.Size(k)
		rk := reds[k].rank
		rk1 := reds[k+1].rank

		var torsion []int64
		for _, f := range reds[k+1].factors {
			if f > 1 {
				torsion = append(torsion, f)
			}
		}

		dim := Dimension{
			K:       k,
			Betti:   (nk - rk) - rk1,
			Torsion: torsion,
		}

		if cfg.generators {
			gens, err := buildGenerators(c, k, nk, rk, reds[k].v, reds[k].vInv, reds[k+1].uInv, reds[k+1].factors, rk1, cfg.solver)
			if err != nil {
				return nil, fmt.Errorf("homology.Compute: generators dim %d: %w", k, err)
			}
			dim.Generators = gens
		}

		dims[k] = dim
	}

	return &Result{dims: dims}, nil
}
