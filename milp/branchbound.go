// Package milp — reference branch-and-bound engine.
//
// BranchBound is an exact depth-first search over binary columns for
// set-partitioning-shaped models: every column must be covered by exactly
// two unit-coefficient equality rows with rhs 1. That is precisely the
// degree structure of an arc-assignment model (each arc column sits in one
// out-degree row and one in-degree row), and it is all the structure the
// search exploits:
//
//  1. Branching: pick the unsatisfied row with the fewest free columns,
//     then try its columns in ascending (cost, index) order. Deterministic
//     branching keeps runs reproducible and tightens the incumbent early.
//  2. Propagation: fixing a column to 1 satisfies both of its rows and
//     forces every other free column of those rows to 0. An unsatisfied
//     row with no free columns left kills the branch.
//  3. Bounding: rows are 2-colored so that no two rows of the same color
//     share a column; the bound is costSoFar plus the larger per-color sum
//     of row minima over free columns. Each color class is a disjoint
//     family, so the bound is admissible. If coloring fails (it cannot for
//     assignment models) the half-sum over all unsatisfied rows is used.
//  4. Candidates: a complete assignment satisfying every accumulated cut
//     fires the candidate callback; if the callback submits cuts the
//     candidate violates, it is discarded and the search continues.
//     Otherwise it becomes the incumbent when cheaper.
//
// Exhaustion with an incumbent proves optimality (the bound never prunes a
// completion cheaper than the incumbent). Exhaustion without one means the
// constraint set admits no assignment: INFEASIBLE.
//
// Complexity: worst case exponential in the number of rows (exact search);
// per node O(model size) for bound and propagation.
package milp

import (
	"math"
	"sort"
)

// defaultEps is the strict pruning tolerance (prune when lb ≥ best − eps).
const defaultEps = 1e-9

// BranchBound is the in-tree reference Engine. The zero value is not
// usable; construct with NewBranchBound.
type BranchBound struct {
	eps float64

	// Model (frozen at Optimize).
	costs []float64
	rows  [][]Col
	cuts  []Cut
	cb    Callback

	// Lifecycle flags guarding the phase contract.
	frozen     bool
	solved     bool
	inCallback bool

	// Derived structure.
	colRows [][2]int // for each column, the two rows covering it
	side    []uint8  // 2-coloring of rows (valid when colored)
	colored bool
	order   [][]Col // per row: columns ascending by (cost, index)

	// Search state.
	val     []int8 // -1 free, 0 fixed-zero, 1 fixed-one
	rowSat  []bool
	freeCnt []int

	// Incumbent.
	best     []int8
	bestCost float64
	foundAny bool
}

// NewBranchBound returns an empty engine ready for model building.
func NewBranchBound() *BranchBound {
	return &BranchBound{eps: defaultEps, bestCost: math.Inf(1)}
}

// AddBinary appends a binary column with the given objective cost.
func (e *BranchBound) AddBinary(cost float64) (Col, error) {
	if e.frozen {
		return 0, ErrModelFrozen
	}
	e.costs = append(e.costs, cost)

	return Col(len(e.costs) - 1), nil
}

// AddEqualSum adds sum(cols) == rhs. The engine only supports rhs == 1
// (set-partitioning rows); anything else is ErrModelShape.
func (e *BranchBound) AddEqualSum(cols []Col, rhs int) error {
	if e.frozen {
		return ErrModelFrozen
	}
	if rhs != 1 || len(cols) == 0 {
		return ErrModelShape
	}

	var c Col
	for _, c = range cols {
		if c < 0 || int(c) >= len(e.costs) {
			return ErrColOutOfRange
		}
	}
	e.rows = append(e.rows, append([]Col(nil), cols...))

	return nil
}

// SetCallback registers the integral-candidate handler.
func (e *BranchBound) SetCallback(cb Callback) { e.cb = cb }

// Values returns the engine's phase-checked value provider.
func (e *BranchBound) Values() ValueProvider { return bbProvider{e: e} }

// Objective returns the incumbent's exact objective after an optimal run.
func (e *BranchBound) Objective() (float64, error) {
	if !e.solved {
		return 0, ErrNotOptimal
	}

	return round1e9(e.bestCost), nil
}

// Optimize verifies the model shape, runs the search to exhaustion and
// reports the termination status.
func (e *BranchBound) Optimize() (Status, error) {
	if e.frozen {
		return StatusOther, ErrModelFrozen
	}
	e.frozen = true

	if err := e.deriveStructure(); err != nil {
		return StatusOther, err
	}
	e.twoColorRows()
	e.buildOrder()

	// Search state initialization.
	var (
		nCols = len(e.costs)
		nRows = len(e.rows)
	)
	e.val = make([]int8, nCols)
	for c := 0; c < nCols; c++ {
		e.val[c] = -1
	}
	e.rowSat = make([]bool, nRows)
	e.freeCnt = make([]int, nRows)
	for r := 0; r < nRows; r++ {
		e.freeCnt[r] = len(e.rows[r])
	}
	e.best = make([]int8, nCols)
	e.bestCost = math.Inf(1)
	e.foundAny = false

	if err := e.dfs(0); err != nil {
		return StatusOther, err
	}

	if !e.foundAny {
		return StatusInfeasible, nil
	}
	e.solved = true

	return StatusOptimal, nil
}

// deriveStructure checks that every column is covered by exactly two rows
// and records the pair.
func (e *BranchBound) deriveStructure() error {
	var (
		cover = make([]int, len(e.costs))
		pairs = make([][2]int, len(e.costs))
		r     int
		c     Col
	)
	for r = 0; r < len(e.rows); r++ {
		for _, c = range e.rows[r] {
			if cover[c] < 2 {
				pairs[c][cover[c]] = r
			}
			cover[c]++
		}
	}
	for i := range cover {
		if cover[i] != 2 {
			return ErrModelShape
		}
	}
	e.colRows = pairs

	return nil
}

// twoColorRows colors rows so that the two rows of every column get
// opposite colors (BFS over the row adjacency induced by shared columns).
// Assignment models are bipartite by construction; on a conflict the engine
// falls back to the weaker half-sum bound instead of failing.
func (e *BranchBound) twoColorRows() {
	var (
		nRows = len(e.rows)
		color = make([]int8, nRows) // -1 unset
		queue = make([]int, 0, nRows)
		r     int
	)
	for r = 0; r < nRows; r++ {
		color[r] = -1
	}

	e.colored = true
	for r = 0; r < nRows; r++ {
		if color[r] != -1 {
			continue
		}
		color[r] = 0
		queue = append(queue[:0], r)
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, c := range e.rows[cur] {
				other := e.colRows[c][0]
				if other == cur {
					other = e.colRows[c][1]
				}
				if color[other] == -1 {
					color[other] = 1 - color[cur]
					queue = append(queue, other)
				} else if color[other] == color[cur] {
					e.colored = false

					return
				}
			}
		}
	}

	e.side = make([]uint8, nRows)
	for r = 0; r < nRows; r++ {
		e.side[r] = uint8(color[r])
	}
}

// rowOrder implements sort.Interface for one row's columns ordered by
// ascending cost with index tiebreak.
type rowOrder struct {
	cols  []Col
	costs []float64
}

func (ro rowOrder) Len() int { return len(ro.cols) }
func (ro rowOrder) Less(i, j int) bool {
	ci, cj := ro.cols[i], ro.cols[j]
	wi, wj := ro.costs[ci], ro.costs[cj]
	if wi == wj {
		return ci < cj
	}

	return wi < wj
}
func (ro rowOrder) Swap(i, j int) { ro.cols[i], ro.cols[j] = ro.cols[j], ro.cols[i] }

// buildOrder produces the deterministic branching order for every row.
func (e *BranchBound) buildOrder() {
	e.order = make([][]Col, len(e.rows))
	for r := range e.rows {
		row := append([]Col(nil), e.rows[r]...)
		sort.Sort(rowOrder{cols: row, costs: e.costs})
		e.order[r] = row
	}
}

// trail records one assignment step for exact undo.
type trail struct {
	one    Col
	rows   [2]int
	zeroed []Col
}

// assign fixes column c to 1, satisfies its two rows and zeroes their
// remaining free columns. ok reports whether the branch stays feasible
// (no unsatisfied row wiped out).
func (e *BranchBound) assign(c Col) (tr trail, ok bool) {
	tr.one = c
	tr.rows = e.colRows[c]

	e.val[c] = 1
	e.freeCnt[tr.rows[0]]--
	e.freeCnt[tr.rows[1]]--
	e.rowSat[tr.rows[0]] = true
	e.rowSat[tr.rows[1]] = true

	ok = true
	var (
		k  int
		c2 Col
	)
	for k = 0; k < 2; k++ {
		for _, c2 = range e.rows[tr.rows[k]] {
			if e.val[c2] != -1 {
				continue
			}
			e.val[c2] = 0
			tr.zeroed = append(tr.zeroed, c2)
			pr := e.colRows[c2]
			e.freeCnt[pr[0]]--
			e.freeCnt[pr[1]]--
			if (!e.rowSat[pr[0]] && e.freeCnt[pr[0]] == 0) ||
				(!e.rowSat[pr[1]] && e.freeCnt[pr[1]] == 0) {
				ok = false // keep zeroing so undo stays uniform
			}
		}
	}

	return tr, ok
}

// unassign reverts one assign step.
func (e *BranchBound) unassign(tr trail) {
	var c2 Col
	for _, c2 = range tr.zeroed {
		e.val[c2] = -1
		pr := e.colRows[c2]
		e.freeCnt[pr[0]]++
		e.freeCnt[pr[1]]++
	}
	e.val[tr.one] = -1
	e.freeCnt[tr.rows[0]]++
	e.freeCnt[tr.rows[1]]++
	e.rowSat[tr.rows[0]] = false
	e.rowSat[tr.rows[1]] = false
}

// pickRow returns the unsatisfied row with the fewest free columns
// (smallest index on ties), or -1 when every row is satisfied.
func (e *BranchBound) pickRow() int {
	var (
		bestR = -1
		bestF = math.MaxInt
		r     int
	)
	for r = 0; r < len(e.rows); r++ {
		if !e.rowSat[r] && e.freeCnt[r] < bestF {
			bestR, bestF = r, e.freeCnt[r]
		}
	}

	return bestR
}

// lowerBound is admissible: every unsatisfied row still needs one of its
// free columns, and rows of one color class never share a column, so the
// per-color sums bound the remaining cost from below. Returns +Inf when
// some unsatisfied row has no free column left.
func (e *BranchBound) lowerBound(costSoFar float64) float64 {
	var (
		sumA, sumB float64
		r          int
		m          float64
		found      bool
		c          Col
	)
	for r = 0; r < len(e.rows); r++ {
		if e.rowSat[r] {
			continue
		}
		m, found = 0, false
		for _, c = range e.order[r] {
			if e.val[c] == -1 {
				m, found = e.costs[c], true

				break // order[r] is ascending: first free col is the min
			}
		}
		if !found {
			return math.Inf(1)
		}
		if e.colored && e.side[r] == 1 {
			sumB += m
		} else {
			sumA += m
		}
	}

	if e.colored {
		if sumB > sumA {
			return costSoFar + sumB
		}

		return costSoFar + sumA
	}

	// No bipartition: each column can serve two rows, halve the total.
	return costSoFar + (sumA+sumB)/2
}

// dfs is the core search: deterministic branching, propagation, pruning.
func (e *BranchBound) dfs(costSoFar float64) error {
	if lb := e.lowerBound(costSoFar); lb >= e.bestCost-e.eps {
		return nil
	}

	r := e.pickRow()
	if r < 0 {
		return e.complete(costSoFar)
	}

	var c Col
	for _, c = range e.order[r] {
		if e.val[c] != -1 {
			continue
		}
		tr, ok := e.assign(c)
		if ok {
			if err := e.dfs(costSoFar + e.costs[c]); err != nil {
				e.unassign(tr)

				return err
			}
		}
		e.unassign(tr)
	}

	return nil
}

// cutSatisfied evaluates one cut against the current assignment.
func (e *BranchBound) cutSatisfied(cut Cut) bool {
	var s int
	for _, c := range cut.Cols {
		if e.val[c] == 1 {
			s++
		}
	}

	return s >= cut.AtLeast
}

// complete handles a full assignment: filter by accumulated cuts, fire the
// candidate callback, and either discard the candidate (new violated cuts)
// or record it as the incumbent.
func (e *BranchBound) complete(costSoFar float64) error {
	var i int
	for i = 0; i < len(e.cuts); i++ {
		if !e.cutSatisfied(e.cuts[i]) {
			return nil // violates a lazy constraint: not a candidate
		}
	}

	if e.cb != nil {
		before := len(e.cuts)
		ctx := &bbContext{e: e, active: true}
		e.inCallback = true
		err := e.cb(ctx)
		e.inCallback = false
		ctx.active = false
		if err != nil {
			return err
		}
		for i = before; i < len(e.cuts); i++ {
			if !e.cutSatisfied(e.cuts[i]) {
				return nil // the candidate separated itself away
			}
		}
	}

	if !e.foundAny || costSoFar < e.bestCost {
		copy(e.best, e.val)
		e.bestCost = costSoFar
		e.foundAny = true
	}

	return nil
}

// bbContext is the callback-scoped cut submission handle.
type bbContext struct {
	e      *BranchBound
	active bool
}

// Values returns the engine provider (Search phase valid while active).
func (ctx *bbContext) Values() ValueProvider { return ctx.e.Values() }

// SubmitCut appends a lazy cut; only legal while the callback runs.
func (ctx *bbContext) SubmitCut(cut Cut) error {
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

// bbProvider serves phase-checked value reads.
type bbProvider struct {
	e *BranchBound
}

// Value implements ValueProvider. Search reads the candidate under
// callback; Final reads the proven incumbent.
func (p bbProvider) Value(c Col, phase Phase) (float64, error) {
	if c < 0 || int(c) >= len(p.e.costs) {
		return 0, ErrColOutOfRange
	}

	switch phase {
	case Search:
		if !p.e.inCallback {
			return 0, ErrWrongPhase
		}
		if p.e.val[c] == 1 {
			return 1, nil
		}

		return 0, nil
	case Final:
		if !p.e.solved {
			return 0, ErrWrongPhase
		}
		if p.e.best[c] == 1 {
			return 1, nil
		}

		return 0, nil
	default:
		return 0, ErrWrongPhase
	}
}

// round1e9 returns x rounded to 1e-9 absolute precision (objective
// stabilization across platforms).
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
