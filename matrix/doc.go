// Package matrix provides the integer matrix type consumed and produced by
// boundary-operator assembly and Smith Normal Form reduction (package
// matrix/ops) and the homology engine (package homology).
//
// IntMatrix is the integer analogue of a conventional dense float matrix:
// row-major int64 storage with bounds-checked At/Set and an error-first
// contract (no panics on caller-triggered misuse).
package matrix
