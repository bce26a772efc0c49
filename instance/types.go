// Package instance - sentinel errors and shared numeric policy.
//
// All failure modes surface as one of the strict sentinels below; callers
// match them with errors.Is. No error here is used for ordinary control flow.
package instance

import "errors"

// CostTol is the absolute tolerance used when an externally supplied
// objective value is cross-checked against the cost recomputed from the
// instance. Divergence beyond CostTol is ErrCostMismatch, never silently
// resolved in favour of the external number.
const CostTol = 1e-6

// roundScale controls final cost stabilization precision (1e-9).
// Avoids tiny FP drifts across platforms without affecting optimality.
const roundScale = 1e9

var (
	// ErrDimensionMismatch reports malformed input shape: coordinate slices
	// of different lengths, an empty instance, or a non-positive span.
	ErrDimensionMismatch = errors.New("instance: dimension mismatch")

	// ErrVertexOutOfRange reports a vertex index outside [0..n-1].
	ErrVertexOutOfRange = errors.New("instance: vertex out of range")

	// ErrInvalidTour reports a sequence that is not a closed Hamiltonian
	// tour: wrong length, unclosed, out-of-range or duplicated vertices.
	ErrInvalidTour = errors.New("instance: invalid tour")

	// ErrCostMismatch reports an externally supplied objective that differs
	// from the recomputed tour cost by more than CostTol.
	ErrCostMismatch = errors.New("instance: cost mismatch")
)
