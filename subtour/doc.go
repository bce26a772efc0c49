// Package subtour extracts cycles from integral arc assignments and turns
// proper subtours into cutset inequalities.
//
// An integral candidate of the arc-assignment relaxation gives every vertex
// exactly one outgoing and one incoming selected arc, so the selected arcs
// decompose the vertex set into vertex-disjoint directed cycles. Trace walks
// one such cycle from a start vertex; Subtours partitions the whole vertex
// set into cycles and reports them only when more than one exists (a single
// cycle is a Hamiltonian tour, i.e. feasible). CrossingArcs converts a
// proper subtour S into the arc set leaving S, whose selected count must be
// at least 1 in any tour — the lazy cut the controller submits.
//
// The package reads candidate values through the small ArcValues view
// instead of a solver handle, so it is testable against hand-written
// assignments and reusable across engines.
package subtour
