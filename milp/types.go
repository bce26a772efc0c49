// Package milp - engine contract types and strict sentinels.
package milp

import "errors"

// Phase selects which reading of a column a value query refers to.
type Phase uint8

const (
	// Search reads the engine's current integral candidate; valid only
	// inside an active candidate callback.
	Search Phase = iota

	// Final reads the optimal incumbent; valid only after Optimize has
	// terminated with StatusOptimal.
	Final
)

// String implements fmt.Stringer for diagnostics.
func (p Phase) String() string {
	switch p {
	case Search:
		return "SEARCH"
	case Final:
		return "FINAL"
	default:
		return "UNKNOWN"
	}
}

// Status is the engine's termination report.
type Status uint8

const (
	// StatusOptimal means the search finished and the incumbent is proven
	// optimal.
	StatusOptimal Status = iota

	// StatusInfeasible means no assignment satisfies the constraint set.
	StatusInfeasible

	// StatusOther covers every remaining termination (unsupported model
	// shape, aborted search, internal failure).
	StatusOther
)

// String implements fmt.Stringer; the controller embeds it in SolveError
// messages.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "OTHER"
	}
}

// Col is an opaque handle to a binary decision column.
type Col int

// Cut is a lazy cutting-plane inequality with unit coefficients:
//
//	sum of Cols values ≥ AtLeast.
//
// Every cut this system separates is a directed cutset constraint, so the
// unit form is exact — and it maps 1:1 onto pseudo-Boolean clauses.
type Cut struct {
	Cols    []Col
	AtLeast int
}

// ValueProvider reads a column's value in [0,1] for an explicitly given
// phase. Implementations must reject queries outside the phase's validity
// window with ErrWrongPhase instead of guessing.
type ValueProvider interface {
	Value(c Col, phase Phase) (float64, error)
}

// Context is handed to a candidate callback while it is active. SubmitCut
// is callable only for the duration of the callback; the engine must honor
// every accepted cut for the remainder of the search.
type Context interface {
	// Values returns the provider bound to the engine; inside the callback
	// it serves Search-phase queries against the current candidate.
	Values() ValueProvider

	// SubmitCut registers a lazy constraint. ErrCutOutsideCallback is
	// returned if the Context escaped its callback.
	SubmitCut(cut Cut) error
}

// Callback is invoked synchronously whenever the engine has a new integral
// feasible candidate. A non-nil error aborts the search.
type Callback func(ctx Context) error

// Engine is the narrow MILP surface the controller consumes.
// Model-building calls (AddBinary, AddEqualSum, SetCallback) are only valid
// before Optimize; Objective and Final-phase reads only after a
// StatusOptimal termination.
type Engine interface {
	// AddBinary appends a binary column with the given objective cost and
	// returns its handle.
	AddBinary(cost float64) (Col, error)

	// AddEqualSum adds the equality constraint sum(cols) == rhs with unit
	// coefficients.
	AddEqualSum(cols []Col, rhs int) error

	// SetCallback registers the integral-candidate handler.
	SetCallback(cb Callback)

	// Optimize runs the search to termination.
	Optimize() (Status, error)

	// Objective returns the incumbent's exact objective value (computed
	// from the float costs, not from any internal quantization).
	Objective() (float64, error)

	// Values returns the engine's phase-checked value provider.
	Values() ValueProvider
}

var (
	// ErrWrongPhase reports a value query outside the phase's validity
	// window (Search outside a callback, Final before optimal termination).
	ErrWrongPhase = errors.New("milp: value query outside a valid phase")

	// ErrNotOptimal reports an Objective call before a StatusOptimal
	// termination.
	ErrNotOptimal = errors.New("milp: objective requested before optimal termination")

	// ErrCutOutsideCallback reports a SubmitCut on a Context whose callback
	// has already returned.
	ErrCutOutsideCallback = errors.New("milp: cut submitted outside an active candidate callback")

	// ErrModelFrozen reports a model mutation after Optimize started.
	ErrModelFrozen = errors.New("milp: model cannot change after Optimize")

	// ErrModelShape reports a model outside the engine's supported
	// structure (non-unit rhs, column not covered by exactly two rows, …).
	ErrModelShape = errors.New("milp: unsupported model shape")

	// ErrColOutOfRange reports a constraint or query referencing an
	// unknown column handle.
	ErrColOutOfRange = errors.New("milp: column handle out of range")

	// ErrCutRounds reports that the cutting-plane loop exceeded its safety
	// bound without converging.
	ErrCutRounds = errors.New("milp: cutting-plane round limit exceeded")

	// ErrBadScale reports a non-positive or non-finite cost scale.
	ErrBadScale = errors.New("milp: cost scale must be positive and finite")
)
