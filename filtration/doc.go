// SPDX-License-Identifier: MIT
//
// Package filtration assembles a simplicial.Complex's cells into a single
// totally ordered sequence T, keyed by (value, dimension), and supports
// incremental growth (Push) and staged iteration over T for consumption by
// persistent-homology algorithms.
//
// Design mirrors the donor builder package's single-orchestrator style: one
// constructor (New) assembles T from a complex plus an optional weight
// lookup, and Push is the sole mutator, splicing newly inserted cells into
// the existing order rather than re-sorting from scratch.
package filtration
