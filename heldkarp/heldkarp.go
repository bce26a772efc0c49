package heldkarp

import (
	"errors"
	"fmt"
	"math"

	"github.com/optivar/tspcut/instance"
)

// MaxVertices bounds the instance size Solve accepts. The dense tables
// hold 2ⁿ·n float64 entries; 22 vertices is ~700 MB of state and marks the
// practical ceiling of the subset DP on commodity hardware.
const MaxVertices = 22

var (
	// ErrTooLarge reports an instance above MaxVertices.
	ErrTooLarge = errors.New("heldkarp: instance exceeds the subset-DP size limit")

	// ErrNilInstance reports a nil *instance.Instance.
	ErrNilInstance = errors.New("heldkarp: nil instance")
)

// Solve computes a provably optimal closed tour by Held–Karp dynamic
// programming over vertex subsets.
//
// Contract: in non-nil, in.N() ≤ MaxVertices. The returned Solution has a
// closed tour of length n+1 anchored at vertex 0 and a cost recomputed
// from the instance (the DP optimum is cross-checked against it).
//
// Stage 1: fill dp[mask][v] = cheapest 0-anchored path covering mask and
// ending at v, with a parent table for reconstruction.
// Stage 2: close the cheapest path back to 0.
// Stage 3: walk the parent table backwards into an explicit tour.
//
// Complexity: Θ(2ⁿ·n²) time, Θ(2ⁿ·n) memory.
func Solve(in *instance.Instance) (instance.Solution, error) {
	if in == nil {
		return instance.Solution{}, ErrNilInstance
	}

	n := in.N()
	if n > MaxVertices {
		return instance.Solution{}, fmt.Errorf("%w: n=%d, limit %d", ErrTooLarge, n, MaxVertices)
	}

	// One vertex: the degenerate closed tour with zero cost.
	if n == 1 {
		return instance.NewSolution(in, []int{0, 0}, 0)
	}

	// Prefetch the cost matrix: the inner DP loop runs 2ⁿ·n² times and
	// must not pay the bounds-checked accessor on every read.
	w := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c, err := in.Cost(i, j)
			if err != nil {
				return instance.Solution{}, err
			}
			w[i*n+j] = c
		}
	}

	// Stage 1: subset DP anchored at vertex 0.
	var (
		full   = 1<<n - 1
		dp     = make([]float64, (1<<n)*n)
		parent = make([]int32, (1<<n)*n)
	)
	for i = range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0 // mask {0}, ending at 0

	var (
		mask, prev int
		k          int
		cand       float64
	)
	for mask = 1; mask <= full; mask += 2 { // masks without bit 0 are dead
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 {
					continue
				}
				cand = dp[prev*n+k] + w[k*n+j]
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = int32(k)
				}
			}
		}
	}

	// Stage 2: close the cheapest full path back to the anchor.
	var (
		best = math.Inf(1)
		last = -1
	)
	for j = 1; j < n; j++ {
		if cand = dp[full*n+j] + w[j*n+0]; cand < best {
			best = cand
			last = j
		}
	}

	// Stage 3: reconstruct the closed tour 0 → … → last → 0.
	var (
		tour = make([]int, n+1)
		m    = full
		v    = last
	)
	tour[n] = 0
	for i = n - 1; i >= 1; i-- {
		tour[i] = v
		p := int(parent[m*n+v])
		m ^= 1 << v
		v = p
	}
	tour[0] = 0

	return instance.NewSolution(in, tour, best)
}
