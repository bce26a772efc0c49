package instance

import "math"

// Solution is a validated closed tour together with its cost.
// The cost is always the value recomputed from the instance's cost table,
// stabilized to 1e-9; it is never the raw engine objective.
type Solution struct {
	// Tour is the closed vertex sequence: len(Tour) == n+1 and
	// Tour[0] == Tour[n].
	Tour []int

	// Cost is the total cycle cost recomputed from the instance.
	Cost float64
}

// NewSolution validates tour against in, recomputes its cost and
// cross-checks the externally supplied objective.
//
// Contract:
//   - tour must be a closed Hamiltonian tour of in starting at tour[0].
//   - |objective − recomputed| ≤ CostTol; a larger gap means the engine and
//     the instance disagree about the same cycle, which is an internal
//     consistency failure (ErrCostMismatch), not a condition to paper over.
//   - Callers that have no external objective pass the recomputed value
//     (e.g. from TourCost) so the check degenerates to equality.
//
// The tour slice is copied; the Solution does not alias caller memory.
//
// Complexity: O(n).
func NewSolution(in *Instance, tour []int, objective float64) (Solution, error) {
	if in == nil {
		return Solution{}, ErrDimensionMismatch
	}
	if len(tour) == 0 {
		return Solution{}, ErrInvalidTour
	}
	if err := ValidateTour(tour, in.n, tour[0]); err != nil {
		return Solution{}, err
	}

	cost, err := in.TourCost(tour)
	if err != nil {
		return Solution{}, err
	}
	if math.IsNaN(objective) || math.Abs(objective-cost) > CostTol {
		return Solution{}, ErrCostMismatch
	}

	out := make([]int, len(tour))
	copy(out, tour)

	return Solution{Tour: out, Cost: cost}, nil
}
