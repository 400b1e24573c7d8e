// Package vr builds Vietoris-Rips and witness simplicial complexes from a
// distance matrix and a scale parameter. Construction proceeds in two stages
// common to both variants: build the 1-skeleton (vertices + admissible
// edges), then expand it to higher dimensions via one of two nerve-expansion
// algorithms, Inductive or Incremental.
//
// Pairwise distances are typed as gonum.org/v1/gonum/mat.Matrix: callers
// already holding a gonum distance or Gram matrix pass it directly; this
// package only reads it, never computes distances itself.
package vr
