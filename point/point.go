// Package point defines the foundational geometric primitive used throughout polyclip: the Point
// type. All other geometric types (segments, rings, events) are built on top of it.
//
// # Overview
//
// Point represents a two-dimensional point with float64 coordinates. It provides vector
// arithmetic, distance measurement and the signed-area orientation predicate that the sweep-line
// kernel depends on for every ordering decision it makes.
//
// # Equality
//
// Eq is bitwise: two points are equal iff their x and y coordinates compare equal under ==. The
// kernel never tolerates floating-point slop when comparing coordinates that came from the same
// computation path; approximate/epsilon-based comparisons, where needed at all, live one layer up
// in the polygon package and are opt-in via functional options.
package point

import (
	"encoding/json"
	"fmt"
	"math"
)

var origin Point

func init() {
	origin = New(0, 0)
}

// Origin returns the origin point (0,0).
func Origin() Point {
	return origin
}

// Point represents a point in two-dimensional space with x and y coordinates of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// Add returns the sum of two points as if they were vectors.
func (p Point) Add(q Point) Point {
	return Point{x: p.x + q.x, y: p.y + q.y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{x: p.x - q.x, y: p.y - q.y}
}

// Negate returns a new Point with both coordinates negated.
func (p Point) Negate() Point {
	return Point{x: -p.x, y: -p.y}
}

// Translate moves the Point by a given displacement vector.
func (p Point) Translate(delta Point) Point {
	return Point{x: p.x + delta.x, y: p.y + delta.y}
}

// Coordinates returns the x and y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// X returns the x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a × b = a.x*b.y - a.y*b.x
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct calculates the dot product of the vector p with the vector q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint calculates the squared Euclidean distance between p and q.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx, dy := q.x-p.x, q.y-p.y
	return dx*dx + dy*dy
}

// DistanceToPoint calculates the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Eq reports whether p and q have bitwise-identical coordinates. There is no epsilon tolerance
// here; callers that need tolerant comparison should round or snap coordinates upstream (see
// numeric.SnapToEpsilon) before constructing a Point.
func (p Point) Eq(q Point) bool {
	return p.x == q.x && p.y == q.y
}

// String returns a string representation of p in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
