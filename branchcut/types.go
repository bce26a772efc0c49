// Package branchcut - result type and strict sentinels.
package branchcut

import (
	"errors"

	"github.com/optivar/tspcut/instance"
)

// Result is the controller's report: the optimal closed tour plus how many
// subtour-elimination cuts the search needed.
type Result struct {
	// Solution is the proven-optimal closed tour with its recomputed cost.
	Solution instance.Solution

	// Cuts counts the lazy cutset inequalities submitted during the search.
	Cuts int
}

var (
	// ErrSolve reports an engine termination other than proven optimality;
	// the wrapped message carries the engine status.
	ErrSolve = errors.New("branchcut: engine failed to prove optimality")

	// ErrNilInput reports a nil instance or (for n > 1) a nil engine.
	ErrNilInput = errors.New("branchcut: nil instance or engine")

	// ErrBrokenIncumbent reports a final incumbent that is not a single
	// Hamiltonian cycle — an engine contract violation, since every
	// subtour-bearing candidate was cut during the search.
	ErrBrokenIncumbent = errors.New("branchcut: final incumbent is not a Hamiltonian tour")
)
