// Package instance - the Euclidean TSP instance model.
//
// An Instance owns vertex coordinates and a dense, eagerly computed cost
// table over all ordered arcs. It is pure data: no solving logic lives here.
package instance

import "math"

// Arc is an ordered pair of distinct vertices.
type Arc struct {
	From int
	To   int
}

// Instance is an immutable TSP instance: n vertices with 2D coordinates and
// the full ordered-arc Euclidean cost table.
type Instance struct {
	n int
	x []float64
	y []float64
	w []float64 // dense cost buffer: w[i*n+j], diagonal kept at 0
}

// New builds an instance from explicit coordinates.
//
// Contract:
//   - len(x) == len(y) and n ≥ 1; otherwise ErrDimensionMismatch.
//   - cost(i,j) = sqrt((x[i]−x[j])² + (y[i]−y[j])²) for all i ≠ j, computed
//     eagerly so later lookups are O(1) and error-free on valid indices.
//
// Complexity: O(n²) time and space.
func New(x, y []float64) (*Instance, error) {
	if len(x) != len(y) || len(x) == 0 {
		return nil, ErrDimensionMismatch
	}

	var (
		n  = len(x)
		in = &Instance{
			n: n,
			x: append([]float64(nil), x...),
			y: append([]float64(nil), y...),
			w: make([]float64, n*n),
		}
	)

	var (
		i, j int
		dx   float64
		dy   float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue // diagonal stays 0
			}
			dx = in.x[i] - in.x[j]
			dy = in.y[i] - in.y[j]
			in.w[i*n+j] = math.Hypot(dx, dy)
		}
	}

	return in, nil
}

// N returns the number of vertices.
func (in *Instance) N() int { return in.n }

// Coord returns the coordinates of vertex v.
func (in *Instance) Coord(v int) (x, y float64, err error) {
	if v < 0 || v >= in.n {
		return 0, 0, ErrVertexOutOfRange
	}

	return in.x[v], in.y[v], nil
}

// Cost returns the cost of the ordered arc i→j.
// The diagonal is defined as 0 so that trivial single-vertex tours close
// at no cost; all other values are strictly positive for distinct points.
//
// Complexity: O(1).
func (in *Instance) Cost(i, j int) (float64, error) {
	if i < 0 || i >= in.n || j < 0 || j >= in.n {
		return 0, ErrVertexOutOfRange
	}

	return in.w[i*in.n+j], nil
}

// at is the unchecked fast accessor for internal loops.
func (in *Instance) at(i, j int) float64 { return in.w[i*in.n+j] }

// Vertices returns the vertex range [0..n-1] as a fresh slice.
//
// Complexity: O(n).
func (in *Instance) Vertices() []int {
	out := make([]int, in.n)

	var v int
	for v = 0; v < in.n; v++ {
		out[v] = v
	}

	return out
}

// Arcs returns all n·(n−1) ordered arcs (i,j), i ≠ j, in row-major order.
// The order is fixed; downstream code relies on it for reproducibility.
//
// Complexity: O(n²).
func (in *Instance) Arcs() []Arc {
	out := make([]Arc, 0, in.n*(in.n-1))

	var i, j int
	for i = 0; i < in.n; i++ {
		for j = 0; j < in.n; j++ {
			if i != j {
				out = append(out, Arc{From: i, To: j})
			}
		}
	}

	return out
}

// TourCost sums the consecutive arc costs of a closed tour, including the
// closing arc, and stabilizes the result to 1e-9.
//
// Contract:
//   - tour must be a valid closed tour over this instance (ValidateTour);
//     only index-range safety is re-checked here.
//
// Complexity: O(n).
func (in *Instance) TourCost(tour []int) (float64, error) {
	if len(tour) < 2 {
		return 0, ErrInvalidTour
	}

	var (
		sum  float64
		i    int
		u, v int
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= in.n || v < 0 || v >= in.n {
			return 0, ErrVertexOutOfRange
		}
		sum += in.at(u, v)
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
