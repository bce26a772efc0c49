// Package instance provides the immutable data models of the solver:
// a Euclidean TSP instance (vertex coordinates plus an eagerly computed
// dense arc-cost table) and a validated Solution (closed tour + cost).
//
// Instances are created once — from explicit coordinates via New, or
// deterministically from a seed via Random — and never mutated afterwards.
// Costs are full n·(n−1) ordered-arc Euclidean distances; the table is
// symmetric for the Euclidean case but nothing downstream assumes symmetry
// structurally.
//
// The Solution constructor recomputes the tour cost from the instance and
// treats divergence from an externally supplied objective beyond CostTol as
// an invariant violation: the recomputed value is the single source of
// truth, never the external one.
package instance
