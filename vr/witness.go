// SPDX-License-Identifier: MIT
package vr

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/arvantis/simplicial/simplicial"
)

// witnessEdge keys a candidate landmark edge by its sorted landmark pair.
type witnessEdge [2]int

func sortedPair(a, b int) witnessEdge {
	if a > b {
		a, b = b, a
	}

	return witnessEdge{a, b}
}

// Witness constructs a witness complex over nLandmarks landmarks from an
// nLandmarks x nWitnesses landmark-to-witness distance matrix. nu selects the correction term: nu=0 disables it, nu=k
// uses the k-th smallest distance in each witness's column as m_i.
//
// Edge admission rule: landmarks a, b are joined (and receive weight
// max(best, 0)) where best = min over witnesses i of
// (max(D[a][i], D[b][i]) - m_i), provided best <= epsilon.
//
// Higher-dimensional simplices are then added by the same nerve-expansion
// algorithms used for the ordinary Rips complex, applied to the landmark
// adjacency graph.
func Witness(landmarkDist mat.Matrix, epsilon float64, nu int, opts ...Option) (*simplicial.Complex, Weights, error) {
	cfg := newConfig(opts...)
	if err := validateConfig(cfg); err != nil {
		return nil, nil, err
	}
	if epsilon <= 0 {
		return nil, nil, ErrInvalidEpsilon
	}
	if nu < 0 || nu > 2 {
		return nil, nil, ErrInvalidNu
	}

	nLandmarks, nWitnesses := landmarkDist.Dims()

	m := make([]float64, nWitnesses)
	if nu > 0 {
		col := make([]float64, nLandmarks)
		for j := 0; j < nWitnesses; j++ {
			for i := 0; i < nLandmarks; i++ {
				col[i] = landmarkDist.At(i, j)
			}
			sorted := append([]float64{}, col...)
			sort.Float64s(sorted)
			if nu-1 < len(sorted) {
				m[j] = sorted[nu-1]
			}
		}
	}

	cx := simplicial.NewComplex()
	adj := newAdjacency(nLandmarks)
	edgeW := make(map[witnessEdge]float64)
	for a := 0; a < nLandmarks; a++ {
		v, err := simplicial.NewSimplex(a)
		if err != nil {
			return nil, nil, err
		}
		if _, err := cx.Add(v, true); err != nil {
			return nil, nil, err
		}
	}

	cands := make([]float64, nWitnesses)
	for a := 0; a < nLandmarks; a++ {
		for b := a + 1; b < nLandmarks; b++ {
			for i := 0; i < nWitnesses; i++ {
				da, db := landmarkDist.At(a, i), landmarkDist.At(b, i)
				cands[i] = max(da, db) - m[i]
			}
			best, _ := floats.Min(cands)
			if best <= epsilon {
				adj.set(a, b)
				e, err := simplicial.NewSimplex(a, b)
				if err != nil {
					return nil, nil, err
				}
				if _, err := cx.Add(e, true); err != nil {
					return nil, nil, err
				}
				w := best
				if w < 0 {
					w = 0
				}
				edgeW[sortedPair(a, b)] = w
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
		w = assignWeights(cx, func(u, v int) float64 { return edgeW[sortedPair(u, v)] })
	}

	return cx, w, nil
}
