// Package milp — gophersat-backed pseudo-Boolean engine.
//
// PseudoBoolean implements the Engine contract as a cutting-plane loop over
// gophersat's pseudo-Boolean optimizer. Each round it encodes the equality
// rows and every accumulated cut as PB constraints, sets the scaled-integer
// objective, and asks the solver for a minimum-cost model. The model is an
// integral candidate by construction, so the candidate callback fires once
// per round; a round in which the callback submits no cut terminates with
// the proven optimum.
//
// Costs are quantized: each float cost is rounded to an integer multiple of
// 1/scale (default 1/DefaultScale) before optimization. Two assignments
// whose true objectives differ by less than the resolution may therefore
// tie; Objective still reports the exact float sum of the chosen columns,
// so downstream cross-checks against recomputed tour costs stay exact.
package milp

import (
	"math"

	"github.com/crillab/gophersat/solver"
)

const (
	// DefaultScale converts float costs to integer PB weights; the cost
	// resolution is 1/DefaultScale per column. The solution-improving
	// constraints Minimize accumulates grow with the weight magnitude, so
	// the scale trades objective resolution against solve effort: beyond
	// ~1e5 the improvement loop blows up on even mid-size instances, while
	// at 1e5 two assignments must be near-tied (within ~cols/Scale) before
	// quantization can change which one wins.
	DefaultScale = 1e5

	// DefaultMaxRounds bounds the cutting-plane loop. Separation is finite
	// (every cut strictly excludes its trigger), so the bound only guards
	// against a misbehaving callback.
	DefaultMaxRounds = 4096
)

// PseudoBoolean is the gophersat-backed Engine. Construct with
// NewPseudoBoolean.
type PseudoBoolean struct {
	scale     float64
	maxRounds int

	// Model (frozen at Optimize).
	costs []float64
	rows  [][]Col
	rhs   []int
	cuts  []Cut
	cb    Callback

	// Lifecycle flags guarding the phase contract.
	frozen     bool
	solved     bool
	inCallback bool

	// model is the current round's candidate; final the proven optimum.
	model     []bool
	final     []bool
	objective float64
}

// NewPseudoBoolean returns an empty engine with default scale and round
// bound.
func NewPseudoBoolean() *PseudoBoolean {
	return &PseudoBoolean{scale: DefaultScale, maxRounds: DefaultMaxRounds}
}

// NewPseudoBooleanScale returns an empty engine with a custom cost scale.
// Scale must be positive and finite; higher values buy resolution at the
// price of heavier solution-improving constraints inside the optimizer.
func NewPseudoBooleanScale(scale float64) (*PseudoBoolean, error) {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, ErrBadScale
	}

	return &PseudoBoolean{scale: scale, maxRounds: DefaultMaxRounds}, nil
}

// AddBinary appends a binary column. Costs must be non-negative: negative
// weights have no meaningful pseudo-Boolean minimization encoding here.
func (e *PseudoBoolean) AddBinary(cost float64) (Col, error) {
	if e.frozen {
		return 0, ErrModelFrozen
	}
	if cost < 0 || math.IsNaN(cost) || math.IsInf(cost, 0) {
		return 0, ErrModelShape
	}
	e.costs = append(e.costs, cost)

	return Col(len(e.costs) - 1), nil
}

// AddEqualSum adds sum(cols) == rhs with unit coefficients.
func (e *PseudoBoolean) AddEqualSum(cols []Col, rhs int) error {
	if e.frozen {
		return ErrModelFrozen
	}
	if rhs < 0 || len(cols) == 0 {
		return ErrModelShape
	}
	for _, c := range cols {
		if c < 0 || int(c) >= len(e.costs) {
			return ErrColOutOfRange
		}
	}
	e.rows = append(e.rows, append([]Col(nil), cols...))
	e.rhs = append(e.rhs, rhs)

	return nil
}

// SetCallback registers the integral-candidate handler.
func (e *PseudoBoolean) SetCallback(cb Callback) { e.cb = cb }

// Values returns the engine's phase-checked value provider.
func (e *PseudoBoolean) Values() ValueProvider { return pbProvider{e: e} }

// Objective returns the exact float objective of the proven optimum.
func (e *PseudoBoolean) Objective() (float64, error) {
	if !e.solved {
		return 0, ErrNotOptimal
	}

	return round1e9(e.objective), nil
}

// Optimize runs the cutting-plane loop to termination.
func (e *PseudoBoolean) Optimize() (Status, error) {
	if e.frozen {
		return StatusOther, ErrModelFrozen
	}
	e.frozen = true

	var round int
	for round = 0; round < e.maxRounds; round++ {
		pb := solver.ParsePBConstrs(e.encode())
		lits, weights := e.objectiveTerms()
		pb.SetCostFunc(lits, weights)

		s := solver.New(pb)
		if cost := s.Minimize(); cost < 0 {
			return StatusInfeasible, nil
		}

		// Snapshot the optimal model of this round's relaxation.
		e.model = make([]bool, len(e.costs))
		copy(e.model, s.Model())

		before := len(e.cuts)
		if e.cb != nil {
			ctx := &pbContext{e: e, active: true}
			e.inCallback = true
			err := e.cb(ctx)
			e.inCallback = false
			ctx.active = false
			if err != nil {
				return StatusOther, err
			}
		}
		if len(e.cuts) == before {
			// No separation: the candidate is optimal for the full model.
			e.final = e.model
			e.objective = e.exactObjective(e.final)
			e.solved = true

			return StatusOptimal, nil
		}
	}

	return StatusOther, ErrCutRounds
}

// encode translates rows and cuts into gophersat PB constraints.
// Column c maps to the PB variable c+1.
func (e *PseudoBoolean) encode() []solver.PBConstr {
	constrs := make([]solver.PBConstr, 0, 2*len(e.rows)+len(e.cuts))

	var (
		r, i int
		cut  Cut
	)
	for r = 0; r < len(e.rows); r++ {
		lits := make([]int, len(e.rows[r]))
		ones := make([]int, len(e.rows[r]))
		for i = range e.rows[r] {
			lits[i] = int(e.rows[r][i]) + 1
			ones[i] = 1
		}
		constrs = append(constrs, solver.Eq(lits, ones, e.rhs[r])...)
	}
	for _, cut = range e.cuts {
		lits := make([]int, len(cut.Cols))
		for i = range cut.Cols {
			lits[i] = int(cut.Cols[i]) + 1
		}
		constrs = append(constrs, solver.AtLeast(lits, cut.AtLeast))
	}

	return constrs
}

// objectiveTerms builds the scaled-integer cost function.
func (e *PseudoBoolean) objectiveTerms() ([]solver.Lit, []int) {
	lits := make([]solver.Lit, len(e.costs))
	weights := make([]int, len(e.costs))

	var c int
	for c = 0; c < len(e.costs); c++ {
		lits[c] = solver.IntToLit(int32(c + 1))
		weights[c] = int(math.Round(e.costs[c] * e.scale))
	}

	return lits, weights
}

// exactObjective sums the unquantized costs of the chosen columns.
func (e *PseudoBoolean) exactObjective(model []bool) float64 {
	var (
		sum float64
		c   int
	)
	for c = 0; c < len(model) && c < len(e.costs); c++ {
		if model[c] {
			sum += e.costs[c]
		}
	}

	return sum
}

// pbContext is the callback-scoped cut submission handle.
type pbContext struct {
	e      *PseudoBoolean
	active bool
}

// Values returns the engine provider (Search phase valid while active).
func (ctx *pbContext) Values() ValueProvider { return ctx.e.Values() }

// SubmitCut appends a lazy cut for all subsequent rounds.
func (ctx *pbContext) SubmitCut(cut Cut) error {
	if !ctx.active || !ctx.e.inCallback {
		return ErrCutOutsideCallback
	}
	if cut.AtLeast < 1 || len(cut.Cols) == 0 {
		return ErrModelShape
	}
	for _, c := range cut.Cols {
		if c < 0 || int(c) >= len(ctx.e.costs) {
			return ErrColOutOfRange
		}
	}
	ctx.e.cuts = append(ctx.e.cuts, Cut{
		Cols:    append([]Col(nil), cut.Cols...),
		AtLeast: cut.AtLeast,
	})

	return nil
}

// pbProvider serves phase-checked value reads.
type pbProvider struct {
	e *PseudoBoolean
}

// Value implements ValueProvider.
func (p pbProvider) Value(c Col, phase Phase) (float64, error) {
	if c < 0 || int(c) >= len(p.e.costs) {
		return 0, ErrColOutOfRange
	}

	switch phase {
	case Search:
		if !p.e.inCallback {
			return 0, ErrWrongPhase
		}
		if p.e.model[c] {
			return 1, nil
		}

		return 0, nil
	case Final:
		if !p.e.solved {
			return 0, ErrWrongPhase
		}
		if p.e.final[c] {
			return 1, nil
		}

		return 0, nil
	default:
		return 0, ErrWrongPhase
	}
}
