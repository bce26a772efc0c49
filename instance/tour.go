// Package instance - tour structure utilities.
//
// A tour is a closed Hamiltonian cycle encoded as a vertex index sequence of
// length n+1 with tour[0] == tour[n]: every vertex in [0..n-1] appears
// exactly once among the first n positions. The helpers below operate purely
// on structure, without touching costs.
package instance

// ValidateTour enforces closed Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v ∈ [0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrInvalidTour
	}
	if len(tour) != n+1 {
		return ErrInvalidTour
	}
	if start < 0 || start >= n {
		return ErrVertexOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}

	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrInvalidTour
		}
		if seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// CloseCycle appends the closing vertex to an open cycle of length n,
// producing the canonical closed form of length n+1.
//
// Complexity: O(n) time, O(n) space.
func CloseCycle(cycle []int) []int {
	if len(cycle) == 0 {
		return nil
	}
	out := make([]int, len(cycle)+1)
	copy(out, cycle)
	out[len(cycle)] = cycle[0]

	return out
}
