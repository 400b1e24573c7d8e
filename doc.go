// Package simplicial computes the homology of finite simplicial complexes
// built from point-cloud data.
//
// A Vietoris-Rips or witness complex is assembled from a pairwise distance
// matrix and a scale parameter (package vr), optionally ordered into a
// filtration across a range of scales (package filtration), and reduced to
// Betti numbers, torsion coefficients, and generator chains via Smith Normal
// Form (package homology).
//
// Subpackages:
//
//	simplicial/  Simplex, Chain, Complex, and the boundary operator
//	matrix/      IntMatrix, the exact-arithmetic backing store for boundary matrices
//	matrix/ops/  Smith Normal Form elimination and invariant factor extraction
//	vr/          Vietoris-Rips and witness complex construction
//	filtration/  ordered cell sequences, text I/O, combined boundary matrices
//	homology/    the homology engine: Betti numbers, torsion, generators
package simplicial
