// SPDX-License-Identifier: MIT
package vr

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arvantis/simplicial/simplicial"
)

const symmetryTolerance = 1e-9

func validateConfig(cfg config) error {
	if cfg.maxDim <= 0 {
		return ErrInvalidMaxDim
	}
	if cfg.expansion != Inductive && cfg.expansion != Incremental {
		return ErrInvalidMethod
	}

	return nil
}

func checkSymmetric(dist mat.Matrix, n int) error {
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(dist.At(i, j)-dist.At(j, i)) > symmetryTolerance {
				return fmt.Errorf("vr: D[%d][%d]=%g != D[%d][%d]=%g: %w", i, j, dist.At(i, j), j, i, dist.At(j, i), ErrAsymmetric)
			}
		}
	}

	return nil
}

// Build constructs a Vietoris-Rips complex from an n x n symmetric,
// zero-diagonal pairwise distance matrix and scale epsilon.
// Returns the complex and, if WithWeights was supplied, its filtration
// weights (the VR entry value of each simplex: the longest pairwise
// distance among its vertices).
//
// Complexity: O(n^2) for the 1-skeleton, plus the expansion algorithm's
// cost (see expandInductive/expandIncremental).
func Build(dist mat.Matrix, epsilon float64, opts ...Option) (*simplicial.Complex, Weights, error) {
	cfg := newConfig(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, nil, err
	}
	if epsilon <= 0 {
		return nil, nil, ErrInvalidEpsilon
	}

	r, c := dist.Dims()
	if r != c {
		return nil, nil, ErrNotSquare
	}
	n := r
	if err := checkSymmetric(dist, n); err != nil {
		return nil, nil, err
	}

	cx := simplicial.NewComplex()
	adj := newAdjacency(n)
	for i := 0; i < n; i++ {
		v, err := simplicial.NewSimplex(i)
		if err != nil {
			return nil, nil, err
		}
		if _, err := cx.Add(v, true); err != nil {
			return nil, nil, err
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := dist.At(i, j)
			if d > 0 && d <= epsilon {
				adj.set(i, j)
				e, err := simplicial.NewSimplex(i, j)
				if err != nil {
					return nil, nil, err
				}
				if _, err := cx.Add(e, true); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	kMax := cfg.maxDim
	if md := adj.maxDegree(); md < kMax {
		kMax = md
	}

	var err error
	switch cfg.expansion {
	case Inductive:
		err = expandInductive(cx, adj, kMax)
	case Incremental:
		err = expandIncremental(cx, adj, kMax)
	}
	if err != nil {
		return nil, nil, err
	}

	var w Weights
	if cfg.weights {
		w = assignWeights(cx, func(u, v int) float64 { return dist.At(u, v) })
	}

	return cx, w, nil
}
