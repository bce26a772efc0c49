package subtour

import "github.com/optivar/tspcut/milp"

// selected is the integrality threshold: values above it count as chosen.
const selected = 0.5

// successor returns the unique j with arc (v, j) selected.
//
// Contract: exactly one selected outgoing arc per vertex; zero or more than
// one is ErrDegreeViolated. Self-loops (j == v) are never candidates.
func successor(vals ArcValues, v int, phase milp.Phase) (int, error) {
	var (
		n    = vals.Order()
		next = -1
		j    int
		x    float64
		err  error
	)
	for j = 0; j < n; j++ {
		if j == v {
			continue
		}
		if x, err = vals.Arc(v, j, phase); err != nil {
			return 0, err
		}
		if x <= selected {
			continue
		}
		if next != -1 {
			return 0, ErrDegreeViolated // second selected arc out of v
		}
		next = j
	}
	if next == -1 {
		return 0, ErrDegreeViolated
	}

	return next, nil
}

// Trace walks the selected arcs from start until the walk returns to start
// and reports the visited cycle in walk order, beginning with start. The
// cycle is open (start appears once).
//
// Contract: start in [0, n); the candidate must be degree-valid along the
// walk. A walk that revisits an interior vertex before closing on start
// means the in-degree structure is broken: ErrDegreeViolated.
//
// Complexity: O(L·n) for a cycle of length L.
func Trace(vals ArcValues, phase milp.Phase, start int) ([]int, error) {
	n := vals.Order()
	if n <= 0 {
		return nil, ErrEmptyView
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		cycle = make([]int, 0, n)
		seen  = make([]bool, n)
		v     = start
		err   error
	)
	for {
		if seen[v] {
			return nil, ErrDegreeViolated // closed on an interior vertex
		}
		seen[v] = true
		cycle = append(cycle, v)

		if v, err = successor(vals, v, phase); err != nil {
			return nil, err
		}
		if v == start {
			return cycle, nil
		}
	}
}
