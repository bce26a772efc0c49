package subtour

import (
	"github.com/optivar/tspcut/instance"
	"github.com/optivar/tspcut/milp"
)

// Subtours partitions the vertex set of an integral candidate into its
// selected-arc cycles and reports the violating ones.
//
// Returns nil (no error) when the first cycle already covers every vertex:
// the candidate is a Hamiltonian tour and nothing needs separating.
// Otherwise every cycle of the partition is returned, each a proper
// subtour; the caller derives one cutset inequality per cycle.
//
// Stage 1: trace the cycle through the smallest unvisited vertex.
// Stage 2: repeat until the whole vertex set is covered.
//
// Contract: the candidate must be degree-valid; a cycle that touches an
// already-covered vertex means overlapping cycles and is reported as
// ErrDegreeViolated.
//
// Complexity: O(n²) arc reads in total (each vertex's successor scan is
// O(n) and runs once).
func Subtours(vals ArcValues, phase milp.Phase) ([][]int, error) {
	n := vals.Order()
	if n <= 0 {
		return nil, ErrEmptyView
	}

	var (
		covered = make([]bool, n)
		cycles  [][]int
		left    = n
		start   int
	)
	for left > 0 {
		// Stage 1: smallest uncovered vertex anchors the next trace.
		for covered[start] {
			start++
		}

		cycle, err := Trace(vals, phase, start)
		if err != nil {
			return nil, err
		}

		// A full-length first cycle is a Hamiltonian tour: feasible.
		if len(cycle) == n {
			return nil, nil
		}

		for _, v := range cycle {
			if covered[v] {
				return nil, ErrDegreeViolated // cycles overlap
			}
			covered[v] = true
		}
		left -= len(cycle)
		cycles = append(cycles, cycle)
	}

	return cycles, nil
}

// CrossingArcs returns every ordered arc (i, j) with i inside the subtour
// and j outside, in row-major order. Any tour must select at least one of
// them, which is exactly the cutset inequality the controller submits.
//
// Contract: 0 < len(sub) < n and every vertex of sub in [0, n); otherwise
// ErrDegreeViolated (a full or empty "subtour" admits no crossing arc).
func CrossingArcs(sub []int, n int) ([]instance.Arc, error) {
	if len(sub) == 0 || len(sub) >= n {
		return nil, ErrDegreeViolated
	}

	inside := make([]bool, n)
	for _, v := range sub {
		if v < 0 || v >= n {
			return nil, ErrStartOutOfRange
		}
		inside[v] = true
	}

	var (
		arcs = make([]instance.Arc, 0, len(sub)*(n-len(sub)))
		i, j int
	)
	for i = 0; i < n; i++ {
		if !inside[i] {
			continue
		}
		for j = 0; j < n; j++ {
			if inside[j] {
				continue
			}
			arcs = append(arcs, instance.Arc{From: i, To: j})
		}
	}

	return arcs, nil
}
