package branchcut

import (
	"fmt"

	"github.com/optivar/tspcut/instance"
	"github.com/optivar/tspcut/milp"
	"github.com/optivar/tspcut/subtour"
)

// Solve finds a provably optimal closed tour of in using eng as the
// optimizing engine.
//
// Contract:
//   - in non-nil; eng non-nil unless n == 1 (the single-vertex tour is
//     closed without any search, so a nil engine is legal there).
//   - eng must be freshly constructed: the controller owns the whole model.
//
// Stage 1: build the arc-assignment model (columns + degree rows).
// Stage 2: optimize with lazy subtour separation in the candidate callback.
// Stage 3: trace the final incumbent into a tour and cross-check its cost.
//
// Complexity: model building is O(n²); the search is the engine's.
func Solve(in *instance.Instance, eng milp.Engine) (Result, error) {
	if in == nil {
		return Result{}, ErrNilInput
	}

	// Single vertex: the only closed tour is 0 → 0 with zero cost.
	if in.N() == 1 {
		sol, err := instance.NewSolution(in, []int{0, 0}, 0)
		if err != nil {
			return Result{}, err
		}

		return Result{Solution: sol}, nil
	}
	if eng == nil {
		return Result{}, ErrNilInput
	}

	// Stage 1: one binary column per ordered arc, row-major.
	n := in.N()
	cols := make([][]milp.Col, n)
	for i := range cols {
		cols[i] = make([]milp.Col, n)
		for j := range cols[i] {
			cols[i][j] = -1
		}
	}
	for _, a := range in.Arcs() {
		cost, err := in.Cost(a.From, a.To)
		if err != nil {
			return Result{}, err
		}
		c, err := eng.AddBinary(cost)
		if err != nil {
			return Result{}, err
		}
		cols[a.From][a.To] = c
	}

	// Degree rows: every vertex leaves once and is entered once.
	var (
		out = make([]milp.Col, 0, n-1)
		in2 = make([]milp.Col, 0, n-1)
	)
	for i := 0; i < n; i++ {
		out, in2 = out[:0], in2[:0]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			out = append(out, cols[i][j])
			in2 = append(in2, cols[j][i])
		}
		if err := eng.AddEqualSum(out, 1); err != nil {
			return Result{}, err
		}
		if err := eng.AddEqualSum(in2, 1); err != nil {
			return Result{}, err
		}
	}

	// Stage 2: lazy subtour separation on every integral candidate.
	var cuts int
	eng.SetCallback(func(ctx milp.Context) error {
		view := arcView{vals: ctx.Values(), cols: cols, n: n}
		subs, err := subtour.Subtours(view, milp.Search)
		if err != nil {
			return err
		}
		for _, sub := range subs {
			arcs, err := subtour.CrossingArcs(sub, n)
			if err != nil {
				return err
			}
			cut := milp.Cut{Cols: make([]milp.Col, 0, len(arcs)), AtLeast: 1}
			for _, a := range arcs {
				cut.Cols = append(cut.Cols, cols[a.From][a.To])
			}
			if err := ctx.SubmitCut(cut); err != nil {
				return err
			}
			cuts++
		}

		return nil
	})

	status, err := eng.Optimize()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSolve, err)
	}
	if status != milp.StatusOptimal {
		return Result{}, fmt.Errorf("%w: engine status %s", ErrSolve, status)
	}

	// Stage 3: the incumbent must be one Hamiltonian cycle; anything else
	// slipped past separation and is an engine contract violation.
	view := arcView{vals: eng.Values(), cols: cols, n: n}
	cycle, err := subtour.Trace(view, milp.Final, 0)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrBrokenIncumbent, err)
	}
	if len(cycle) != n {
		return Result{}, fmt.Errorf("%w: cycle covers %d of %d vertices",
			ErrBrokenIncumbent, len(cycle), n)
	}

	objective, err := eng.Objective()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSolve, err)
	}

	sol, err := instance.NewSolution(in, instance.CloseCycle(cycle), objective)
	if err != nil {
		return Result{}, err
	}

	return Result{Solution: sol, Cuts: cuts}, nil
}

// arcView adapts an engine ValueProvider plus the column table to the
// subtour.ArcValues view.
type arcView struct {
	vals milp.ValueProvider
	cols [][]milp.Col
	n    int
}

// Order implements subtour.ArcValues.
func (v arcView) Order() int { return v.n }

// Arc implements subtour.ArcValues. Self-loops have no column and read 0.
func (v arcView) Arc(i, j int, phase milp.Phase) (float64, error) {
	if i == j {
		return 0, nil
	}

	return v.vals.Value(v.cols[i][j], phase)
}
