// Package subtour - shared view types and strict sentinels.
package subtour

import (
	"errors"

	"github.com/optivar/tspcut/milp"
)

// ArcValues is the read-only view of an integral candidate the extractor
// consumes: the instance order and one value per ordered arc. Arc must
// return a value in [0,1]; on an integral candidate every value is 0 or 1
// up to the 0.5 selection threshold.
type ArcValues interface {
	// Order returns the number of vertices n.
	Order() int

	// Arc returns the candidate value of arc (i, j) in the given phase.
	Arc(i, j int, phase milp.Phase) (float64, error)
}

var (
	// ErrDegreeViolated reports a candidate in which some vertex does not
	// have exactly one selected outgoing arc (or the selected arcs fail to
	// partition the vertex set into disjoint cycles).
	ErrDegreeViolated = errors.New("subtour: candidate violates degree-1 structure")

	// ErrStartOutOfRange reports a trace start vertex outside [0, n).
	ErrStartOutOfRange = errors.New("subtour: start vertex out of range")

	// ErrEmptyView reports an ArcValues view with a non-positive order.
	ErrEmptyView = errors.New("subtour: arc view has no vertices")
)
