// Package subtour_test exercises cycle extraction and cutset derivation
// against hand-written arc assignments (no solver involved):
//  1. Successor-function candidates: Hamiltonian, two 2-cycles, 3+2 split.
//  2. Degree violations: missing successor, double successor, overlap.
//  3. CrossingArcs shape and completeness.
package subtour_test

import (
	"sort"
	"testing"

	"github.com/optivar/tspcut/instance"
	"github.com/optivar/tspcut/milp"
	"github.com/optivar/tspcut/subtour"
	"github.com/stretchr/testify/require"
)

// succView is a fake ArcValues built from a successor function: arc (i, j)
// is selected iff next[i] == j.
type succView struct {
	next []int
}

func (v succView) Order() int { return len(v.next) }

func (v succView) Arc(i, j int, _ milp.Phase) (float64, error) {
	if v.next[i] == j {
		return 1, nil
	}

	return 0, nil
}

// brokenView selects arcs from an explicit set, allowing degree violations.
type brokenView struct {
	n    int
	arcs map[[2]int]bool
}

func (v brokenView) Order() int { return v.n }

func (v brokenView) Arc(i, j int, _ milp.Phase) (float64, error) {
	if v.arcs[[2]int{i, j}] {
		return 1, nil
	}

	return 0, nil
}

func TestTrace_Hamiltonian(t *testing.T) {
	// 0→2→1→3→0.
	vals := succView{next: []int{2, 3, 1, 0}}

	cycle, err := subtour.Trace(vals, milp.Search, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1, 3}, cycle)
}

func TestTrace_StartAnywhereOnCycle(t *testing.T) {
	vals := succView{next: []int{2, 3, 1, 0}}

	cycle, err := subtour.Trace(vals, milp.Search, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 3, 0, 2}, cycle)
}

func TestTrace_StartOutOfRange(t *testing.T) {
	vals := succView{next: []int{1, 0}}

	_, err := subtour.Trace(vals, milp.Search, 2)
	require.ErrorIs(t, err, subtour.ErrStartOutOfRange)
	_, err = subtour.Trace(vals, milp.Search, -1)
	require.ErrorIs(t, err, subtour.ErrStartOutOfRange)
}

func TestTrace_MissingSuccessor(t *testing.T) {
	// Vertex 1 has no outgoing arc.
	vals := brokenView{n: 3, arcs: map[[2]int]bool{
		{0, 1}: true,
		{2, 0}: true,
	}}

	_, err := subtour.Trace(vals, milp.Search, 0)
	require.ErrorIs(t, err, subtour.ErrDegreeViolated)
}

func TestTrace_DoubleSuccessor(t *testing.T) {
	// Vertex 0 has two outgoing arcs.
	vals := brokenView{n: 3, arcs: map[[2]int]bool{
		{0, 1}: true,
		{0, 2}: true,
		{1, 0}: true,
		{2, 0}: true,
	}}

	_, err := subtour.Trace(vals, milp.Search, 0)
	require.ErrorIs(t, err, subtour.ErrDegreeViolated)
}

func TestTrace_InteriorClosure(t *testing.T) {
	// 0→1, then 1→2→1 closes on the interior vertex 1, never on 0.
	vals := brokenView{n: 3, arcs: map[[2]int]bool{
		{0, 1}: true,
		{1, 2}: true,
		{2, 1}: true,
	}}

	_, err := subtour.Trace(vals, milp.Search, 0)
	require.ErrorIs(t, err, subtour.ErrDegreeViolated)
}

func TestSubtours_HamiltonianIsNil(t *testing.T) {
	vals := succView{next: []int{2, 3, 1, 0}}

	cycles, err := subtour.Subtours(vals, milp.Search)
	require.NoError(t, err)
	require.Nil(t, cycles)
}

func TestSubtours_TwoTwoCycles(t *testing.T) {
	// {0,1} and {2,3}: the classic 4-vertex square failure mode.
	vals := succView{next: []int{1, 0, 3, 2}}

	cycles, err := subtour.Subtours(vals, milp.Search)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 1}, {2, 3}}, cycles)
}

func TestSubtours_ThreeTwoSplit(t *testing.T) {
	// 0→4→2→0 and 1→3→1: traces anchor on the smallest uncovered vertex,
	// so the 3-cycle comes first and the 2-cycle second.
	vals := succView{next: []int{4, 3, 0, 1, 2}}

	cycles, err := subtour.Subtours(vals, milp.Search)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 4, 2}, {1, 3}}, cycles)
}

func TestSubtours_PartitionProperty(t *testing.T) {
	// Any successor permutation without fixed points must partition the
	// vertex set exactly.
	vals := succView{next: []int{3, 0, 5, 1, 6, 4, 2}}

	cycles, err := subtour.Subtours(vals, milp.Search)
	require.NoError(t, err)

	var all []int
	for _, c := range cycles {
		all = append(all, c...)
	}
	sort.Ints(all)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, all)
}

func TestSubtours_Idempotent(t *testing.T) {
	vals := succView{next: []int{1, 0, 3, 2}}

	first, err := subtour.Subtours(vals, milp.Search)
	require.NoError(t, err)
	second, err := subtour.Subtours(vals, milp.Search)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSubtours_DegreeViolation(t *testing.T) {
	// Vertex 2 has no outgoing arc: surfaces while tracing its cycle.
	vals := brokenView{n: 4, arcs: map[[2]int]bool{
		{0, 1}: true,
		{1, 0}: true,
		{3, 2}: true,
	}}

	_, err := subtour.Subtours(vals, milp.Search)
	require.ErrorIs(t, err, subtour.ErrDegreeViolated)
}

func TestSubtours_EmptyView(t *testing.T) {
	_, err := subtour.Subtours(succView{}, milp.Search)
	require.ErrorIs(t, err, subtour.ErrEmptyView)
}

func TestCrossingArcs_TwoOfFour(t *testing.T) {
	arcs, err := subtour.CrossingArcs([]int{0, 1}, 4)
	require.NoError(t, err)
	require.Equal(t, []instance.Arc{
		{From: 0, To: 2}, {From: 0, To: 3},
		{From: 1, To: 2}, {From: 1, To: 3},
	}, arcs)
}

func TestCrossingArcs_Count(t *testing.T) {
	// |S| · (n − |S|) arcs leave S.
	arcs, err := subtour.CrossingArcs([]int{1, 3, 4}, 7)
	require.NoError(t, err)
	require.Len(t, arcs, 3*4)

	for _, a := range arcs {
		require.Contains(t, []int{1, 3, 4}, a.From)
		require.NotContains(t, []int{1, 3, 4}, a.To)
	}
}

func TestCrossingArcs_NeverCutsAHamiltonianTour(t *testing.T) {
	// Any true tour leaves every proper vertex subset at least once, so a
	// cutset inequality can never exclude a feasible complete tour.
	const n = 7
	tour := succView{next: []int{3, 0, 5, 6, 1, 4, 2}} // one 7-cycle

	cycles, err := subtour.Subtours(tour, milp.Search)
	require.NoError(t, err)
	require.Nil(t, cycles) // sanity: the assignment really is one tour

	for _, sub := range [][]int{{0}, {0, 1}, {2, 5, 6}, {1, 2, 3, 4, 5}} {
		arcs, err := subtour.CrossingArcs(sub, n)
		require.NoError(t, err)

		var crossing int
		for _, a := range arcs {
			v, verr := tour.Arc(a.From, a.To, milp.Search)
			require.NoError(t, verr)
			if v > 0.5 {
				crossing++
			}
		}
		require.GreaterOrEqual(t, crossing, 1, "subset %v", sub)
	}
}

func TestCrossingArcs_DegenerateSets(t *testing.T) {
	_, err := subtour.CrossingArcs(nil, 4)
	require.ErrorIs(t, err, subtour.ErrDegreeViolated)
	_, err = subtour.CrossingArcs([]int{0, 1, 2, 3}, 4)
	require.ErrorIs(t, err, subtour.ErrDegreeViolated)
	_, err = subtour.CrossingArcs([]int{0, 9}, 4)
	require.ErrorIs(t, err, subtour.ErrStartOutOfRange)
}
