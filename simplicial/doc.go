// Package simplicial defines the combinatorial atoms of the library: Simplex
// (an ordered tuple of distinct vertex labels), Chain (a formal linear
// combination of same-dimension simplices over an integer coefficient ring),
// and Complex (a face-closed collection of simplices indexed per dimension).
//
// All three types are immutable or single-owner: a Complex owns its cells
// exclusively and exposes them only by value or by stable (dimension, index)
// pairs, never by pointer, so there is no cyclic ownership between a cell and
// its faces.
//
// The package is synchronous and not safe for concurrent mutation of a single
// Complex — callers needing concurrent access must serialize Add calls
// themselves.
package simplicial
