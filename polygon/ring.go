package polygon

import (
	"fmt"
	"slices"

	"github.com/cartforge/polyclip/options"
	"github.com/cartforge/polyclip/point"
)

// Ring is a closed sequence of vertices; the edge from the last point back to the first is
// implicit. Winding direction is not required by the boolean kernel, but IsWellFormed and the
// Ensure* helpers let a caller normalize it.
type Ring []point.Point

// NewRing constructs a Ring from the given vertices, in order.
func NewRing(points ...point.Point) Ring {
	return Ring(points)
}

// Area2XSigned returns twice the signed area of r via the shoelace formula. The sign is positive
// for a counterclockwise ring, negative for clockwise.
//
// Grounded on the source library's SignedArea2X: same accumulation, generalized from its
// []Point[T] slice form to the Ring type.
func (r Ring) Area2XSigned() float64 {
	n := len(r)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		p := r[i]
		q := r[(i+1)%n]
		sum += p.X()*q.Y() - q.X()*p.Y()
	}
	return sum
}

// EnsureClockwise reverses r in place if it is currently wound counterclockwise.
//
// Grounded on the source library's EnsureClockwise.
func (r Ring) EnsureClockwise() {
	if r.Area2XSigned() < 0 {
		return
	}
	slices.Reverse(r)
}

// EnsureCounterClockwise reverses r in place if it is currently wound clockwise.
//
// Grounded on the source library's EnsureCounterClockwise.
func (r Ring) EnsureCounterClockwise() {
	if r.Area2XSigned() > 0 {
		return
	}
	slices.Reverse(r)
}

// IsWellFormed reports whether r has at least 3 vertices, non-zero area, and no self-intersecting
// edges (other than the shared vertex between consecutive edges).
//
// Grounded on the source library's simple.IsWellFormed, adapted from its linesegment-package
// intersection search to a direct pairwise orientation test (no intermediate segment type exists
// at this layer).
func (r Ring) IsWellFormed(opts ...options.GeometryOptionsFunc) (bool, error) {
	if len(r) < 3 {
		return false, fmt.Errorf("polygon: ring must have at least 3 points, got %d", len(r))
	}
	if r.Area2XSigned() == 0 {
		return false, fmt.Errorf("polygon: ring has zero area")
	}

	n := len(r)
	for i := 0; i < n; i++ {
		a1, a2 := r[i], r[(i+1)%n]
		if a1.Eq(a2) {
			return false, fmt.Errorf("polygon: ring has a degenerate edge at vertex %d", i)
		}
		for j := i + 1; j < n; j++ {
			b1, b2 := r[j], r[(j+1)%n]
			if edgesShareVertex(i, j, n) {
				continue
			}
			if segmentsIntersect(a1, a2, b1, b2, opts...) {
				return false, fmt.Errorf("polygon: ring has self-intersecting edges %d and %d", i, j)
			}
		}
	}

	return true, nil
}

func edgesShareVertex(i, j, n int) bool {
	return j == i || j == (i+1)%n || (j+1)%n == i
}

// segmentsIntersect reports whether open segments (a1,a2) and (b1,b2) cross, using the standard
// four-orientation test; collinear overlaps and shared endpoints (already excluded by the caller)
// are not reported as crossings.
func segmentsIntersect(a1, a2, b1, b2 point.Point, opts ...options.GeometryOptionsFunc) bool {
	o := options.ApplyGeometryOptions(options.GeometryOptions{}, opts...)

	d1 := point.Orientation(b1, b2, a1, o.Epsilon)
	d2 := point.Orientation(b1, b2, a2, o.Epsilon)
	d3 := point.Orientation(a1, a2, b1, o.Epsilon)
	d4 := point.Orientation(a1, a2, b2, o.Epsilon)

	if d1 != d2 && d3 != d4 && d1 != point.Collinear && d2 != point.Collinear &&
		d3 != point.Collinear && d4 != point.Collinear {
		return true
	}
	return false
}
