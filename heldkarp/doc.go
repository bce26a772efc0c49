// Package heldkarp solves small traveling-salesman instances exactly by
// dynamic programming over vertex subsets (Held–Karp).
//
// The state dp[mask][v] is the cheapest cost of a path that starts at
// vertex 0, visits exactly the vertices of mask, and ends at v. Filling the
// table takes Θ(2ⁿ·n²) time and Θ(2ⁿ·n) memory, which is why Solve refuses
// instances above MaxVertices. Within that limit the result is a certified
// optimum, making the package the natural cross-validation oracle for the
// branch-and-cut solver: two independent algorithms agreeing on the same
// optimal cost is strong evidence both are right.
//
// Solve returns the full instance.Solution (closed tour plus cost), not
// just the cost, so callers can also compare tour validity.
package heldkarp
