// Package tspcut solves the Travelling Salesman Problem exactly by
// branch-and-cut over dynamically separated subtour-elimination constraints,
// cross-validated by a Held–Karp dynamic program.
//
// The library is organised around a small set of packages:
//
//	instance/  — immutable Euclidean instances (coordinates + eager cost table)
//	             and validated tour/cost solutions
//	milp/      — the engine contract (binary arc columns, degree equalities,
//	             lazy cutset cuts, integral-candidate callbacks) plus two
//	             engines: an exact set-partitioning branch-and-bound and a
//	             gophersat-backed pseudo-Boolean cutting-plane loop
//	subtour/   — the algorithmic core: cycle extraction over an arc-value
//	             view and subtour separation into directed cutset cuts
//	branchcut/ — the controller wiring an instance into an engine, running
//	             separation inside the candidate callback, and extracting the
//	             optimal tour
//	heldkarp/  — the exact O(n²·2ⁿ) subset DP used as a correctness oracle
//
// Typical use:
//
//	in, _ := instance.Random(8, 42, 100)
//	res, _ := branchcut.Solve(in, milp.NewBranchBound())
//	ref, _ := heldkarp.Solve(in)
//	// res.Solution.Cost == ref.Cost within 1e-6
//
// Design principles:
//   - Deterministic: seeded randomness only; fixed iteration orders.
//   - Strict sentinels: no panics on user input, no errors for control flow;
//     solver phase (mid-search vs. final) is always an explicit parameter.
//   - Pure core: cycle extraction and separation are functions of an
//     arc-value view and are testable against a fake provider.
//
// Exact solving is exponential by nature; the intended operating range is
// n ≲ 20 for branch-and-cut and n ≤ heldkarp.MaxVertices for the DP oracle.
package tspcut
