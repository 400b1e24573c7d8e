// SPDX-License-Identifier: MIT
//
// solver.go - the external Smith Normal Form collaborator.
//
// Two configuration paths are offered, per the source's own design note that
// both a synchronized global slot and an explicit threaded argument are
// valid strategies: SetDefaultSolver mutates a process-wide, mutex-guarded
// slot consulted by Compute unless overridden; WithSolver supplies an
// explicit per-call override that never touches the shared slot.
package homology

import (
	"sync"

	"github.com/arvantis/simplicial/matrix/ops"
)

// Solver reduces an integer boundary matrix to Smith Normal Form: given B, it
// returns unimodular U, V and diagonal S with U*B*V = S, plus U^-1 and V^-1.
type Solver = ops.Solver

var (
	defaultSolverMu sync.RWMutex
	defaultSolver   Solver = ops.SmithNormalForm
)

// SetDefaultSolver replaces the process-wide default Solver consulted by
// Compute calls that do not supply WithSolver. Passing nil restores the
// library-bundled implementation.
//
// Callers must not call SetDefaultSolver concurrently with Compute:
// it is intended for one-time registration during initialization.
func SetDefaultSolver(fn Solver) {
	defaultSolverMu.Lock()
	defer defaultSolverMu.Unlock()
	if fn == nil {
		fn = ops.SmithNormalForm
	}
	defaultSolver = fn
}

func currentDefaultSolver() Solver {
	defaultSolverMu.RLock()
	defer defaultSolverMu.RUnlock()

	return defaultSolver
}
