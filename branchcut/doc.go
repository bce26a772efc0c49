// Package branchcut is the branch-and-cut controller: it owns the TSP
// formulation and drives a milp.Engine to a provably optimal tour.
//
// Formulation: one binary column per ordered arc (i, j), i ≠ j, with the
// Euclidean arc cost as objective coefficient; per vertex one out-degree
// and one in-degree equality row with right-hand side 1. Subtour
// elimination is not enumerated up front (there are exponentially many
// such constraints) — instead every integral candidate the engine reports
// is decomposed into cycles, and each proper subtour yields one lazy
// cutset inequality: at least one selected arc must leave the subtour's
// vertex set.
//
// The controller never trusts the engine's arithmetic: the final tour is
// re-costed against the instance and a divergence beyond instance.CostTol
// surfaces as an error rather than a silently adjusted number.
//
// Solve is synchronous and single-threaded; engines that parallelize
// internally must still serialize candidate callbacks (both in-tree
// engines do).
package branchcut
