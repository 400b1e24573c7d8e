// SPDX-License-Identifier: MIT
//
// Package homology computes the homology groups of a simplicial.Complex over
// the integer coefficient ring: Betti numbers, torsion coefficients, the
// Euler characteristic, and (optionally) explicit generator chains.
//
// Each boundary matrix is reduced to Smith Normal Form by a pluggable Solver
// (matrix/ops.SmithNormalForm by default), configurable either through a
// process-wide slot (SetDefaultSolver) or an explicit per-call option
// (WithSolver) — mirroring the donor's staged numeric-pipeline packages
// (matrix/ops/lu.go, matrix/ops/qr.go) generalized to an external, swappable
// reduction step.
package homology
