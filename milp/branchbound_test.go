// Package milp_test validates the engine contract on tiny arc-assignment
// models. Focus:
//  1. Model-shape guards (non-unit rhs, uncovered columns, frozen model).
//  2. Phase discipline on value reads and cut submission.
//  3. Optimality on a 3-vertex assignment model (only derangements remain,
//     i.e. the two directed triangles).
//  4. Lazy cuts actually exclude the candidates that triggered them.
package milp_test

import (
	"testing"

	"github.com/optivar/tspcut/milp"
	"github.com/stretchr/testify/require"
)

// triangleModel wires the 3-vertex arc-assignment model onto eng:
// one binary column per ordered arc (i,j), i≠j, out- and in-degree rows.
// cost[i][j] supplies the objective. Returns cols[i][j] (diagonal -1).
func triangleModel(t *testing.T, eng milp.Engine, cost [3][3]float64) [3][3]milp.Col {
	t.Helper()

	var cols [3][3]milp.Col
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			cols[i][j] = -1
			if i == j {
				continue
			}
			c, err := eng.AddBinary(cost[i][j])
			require.NoError(t, err)
			cols[i][j] = c
		}
	}
	for i := 0; i < 3; i++ {
		var out, in []milp.Col
		for j := 0; j < 3; j++ {
			if i == j {
				continue
			}
			out = append(out, cols[i][j])
			in = append(in, cols[j][i])
		}
		require.NoError(t, eng.AddEqualSum(out, 1))
		require.NoError(t, eng.AddEqualSum(in, 1))
	}

	return cols
}

// asymTriangle makes the clockwise triangle 0→1→2→0 cheaper (cost 3)
// than the counter-clockwise one (cost 30).
func asymTriangle() [3][3]float64 {
	var cost [3][3]float64
	cost[0][1], cost[1][2], cost[2][0] = 1, 1, 1
	cost[1][0], cost[2][1], cost[0][2] = 10, 10, 10

	return cost
}

func TestBranchBound_OptimalTriangle(t *testing.T) {
	eng := milp.NewBranchBound()
	cols := triangleModel(t, eng, asymTriangle())

	status, err := eng.Optimize()
	require.NoError(t, err)
	require.Equal(t, milp.StatusOptimal, status)

	obj, err := eng.Objective()
	require.NoError(t, err)
	require.InDelta(t, 3.0, obj, 1e-9)

	// The incumbent is the clockwise triangle.
	vals := eng.Values()
	for _, want := range []struct {
		c milp.Col
		v float64
	}{
		{cols[0][1], 1}, {cols[1][2], 1}, {cols[2][0], 1},
		{cols[1][0], 0}, {cols[2][1], 0}, {cols[0][2], 0},
	} {
		got, verr := vals.Value(want.c, milp.Final)
		require.NoError(t, verr)
		require.Equal(t, want.v, got)
	}
}

func TestBranchBound_CallbackSeesDegreeValidCandidate(t *testing.T) {
	eng := milp.NewBranchBound()
	cols := triangleModel(t, eng, asymTriangle())

	var invocations int
	eng.SetCallback(func(ctx milp.Context) error {
		invocations++
		vals := ctx.Values()
		// Every row must sum to exactly 1 on an integral candidate.
		for i := 0; i < 3; i++ {
			var sum float64
			for j := 0; j < 3; j++ {
				if i == j {
					continue
				}
				v, err := vals.Value(cols[i][j], milp.Search)
				if err != nil {
					return err
				}
				sum += v
			}
			require.Equal(t, 1.0, sum)
		}

		return nil
	})

	status, err := eng.Optimize()
	require.NoError(t, err)
	require.Equal(t, milp.StatusOptimal, status)
	require.Positive(t, invocations)
}

func TestBranchBound_LazyCutExcludesCandidate(t *testing.T) {
	eng := milp.NewBranchBound()
	cols := triangleModel(t, eng, asymTriangle())

	// Forbid the cheap triangle the first time it shows up: require at
	// least one of the expensive arcs. The optimum must then be the
	// counter-clockwise triangle (cost 30).
	cut := milp.Cut{
		Cols:    []milp.Col{cols[1][0], cols[2][1], cols[0][2]},
		AtLeast: 1,
	}
	eng.SetCallback(func(ctx milp.Context) error {
		v, err := ctx.Values().Value(cols[0][1], milp.Search)
		if err != nil {
			return err
		}
		if v > 0.5 {
			return ctx.SubmitCut(cut)
		}

		return nil
	})

	status, err := eng.Optimize()
	require.NoError(t, err)
	require.Equal(t, milp.StatusOptimal, status)

	obj, err := eng.Objective()
	require.NoError(t, err)
	require.InDelta(t, 30.0, obj, 1e-9)
}

func TestBranchBound_PhaseDiscipline(t *testing.T) {
	eng := milp.NewBranchBound()
	cols := triangleModel(t, eng, asymTriangle())

	// Before Optimize: neither phase is valid, no objective.
	_, err := eng.Values().Value(cols[0][1], milp.Search)
	require.ErrorIs(t, err, milp.ErrWrongPhase)
	_, err = eng.Values().Value(cols[0][1], milp.Final)
	require.ErrorIs(t, err, milp.ErrWrongPhase)
	_, err = eng.Objective()
	require.ErrorIs(t, err, milp.ErrNotOptimal)

	// Capture the context to prove it expires with its callback.
	var escaped milp.Context
	eng.SetCallback(func(ctx milp.Context) error {
		escaped = ctx

		return nil
	})

	status, err := eng.Optimize()
	require.NoError(t, err)
	require.Equal(t, milp.StatusOptimal, status)

	// After termination: Search is no longer a valid phase.
	_, err = eng.Values().Value(cols[0][1], milp.Search)
	require.ErrorIs(t, err, milp.ErrWrongPhase)

	// An escaped context must reject late cuts.
	require.NotNil(t, escaped)
	err = escaped.SubmitCut(milp.Cut{Cols: []milp.Col{cols[0][1]}, AtLeast: 1})
	require.ErrorIs(t, err, milp.ErrCutOutsideCallback)
}

func TestBranchBound_ModelShapeGuards(t *testing.T) {
	eng := milp.NewBranchBound()
	c0, err := eng.AddBinary(1)
	require.NoError(t, err)

	// Non-unit rhs is outside the set-partitioning shape.
	require.ErrorIs(t, eng.AddEqualSum([]milp.Col{c0}, 2), milp.ErrModelShape)
	// Unknown column handle.
	require.ErrorIs(t, eng.AddEqualSum([]milp.Col{c0 + 7}, 1), milp.ErrColOutOfRange)

	// A column covered by only one row fails structure verification.
	require.NoError(t, eng.AddEqualSum([]milp.Col{c0}, 1))
	status, err := eng.Optimize()
	require.ErrorIs(t, err, milp.ErrModelShape)
	require.Equal(t, milp.StatusOther, status)

	// The model froze at Optimize.
	_, err = eng.AddBinary(1)
	require.ErrorIs(t, err, milp.ErrModelFrozen)
}

func TestBranchBound_Infeasible(t *testing.T) {
	// Two columns, three rows: col 0 must be 1 (row {0}) and 0 (rows
	// {0,1} with col1 forced elsewhere) — no assignment survives.
	eng := milp.NewBranchBound()
	c0, err := eng.AddBinary(1)
	require.NoError(t, err)
	c1, err := eng.AddBinary(1)
	require.NoError(t, err)

	require.NoError(t, eng.AddEqualSum([]milp.Col{c0}, 1))
	require.NoError(t, eng.AddEqualSum([]milp.Col{c1}, 1))
	require.NoError(t, eng.AddEqualSum([]milp.Col{c0, c1}, 1))

	// c0 and c1 each sit in two rows, so the shape check passes; the
	// search itself must prove infeasibility (setting both violates the
	// joint row, leaving either at zero violates a unit row).
	status, err := eng.Optimize()
	require.NoError(t, err)
	require.Equal(t, milp.StatusInfeasible, status)
}

func TestBranchBound_DeterministicRepeat(t *testing.T) {
	run := func() float64 {
		eng := milp.NewBranchBound()
		triangleModel(t, eng, asymTriangle())
		status, err := eng.Optimize()
		require.NoError(t, err)
		require.Equal(t, milp.StatusOptimal, status)
		obj, err := eng.Objective()
		require.NoError(t, err)

		return obj
	}

	first := run()
	for i := 0; i < 5; i++ {
		require.Equal(t, first, run())
	}
}
