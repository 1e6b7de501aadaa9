package geom

import "math"

// Eps is the absolute tolerance for coordinate comparisons.
// Centers of regular polytopes are matched against dual-construction
// centers with this tolerance.
const Eps = 1e-9

// Point is a point in rank-dimensional space. The nullitope and the
// point polytope live in 0 dimensions; higher ranks use longer slices.
type Point []float64

// Origin returns the origin of dim-dimensional space.
func Origin(dim int) Point {
	return make(Point, dim)
}

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	q := make(Point, len(p))
	copy(q, p)

	return q
}

// Sub returns p−q. Points of different dimension are padded with
// zeros, so a shorter point behaves as if embedded in the larger space.
func (p Point) Sub(q Point) Point {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}

	d := make(Point, n)
	for i := range d {
		if i < len(p) {
			d[i] = p[i]
		}
		if i < len(q) {
			d[i] -= q[i]
		}
	}

	return d
}

// Norm returns the Euclidean norm of p.
func (p Point) Norm() float64 {
	var sum float64
	for _, x := range p {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Equal reports whether p and q coincide within Eps.
func (p Point) Equal(q Point) bool {
	return p.Sub(q).Norm() < Eps
}
