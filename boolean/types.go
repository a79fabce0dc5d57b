package boolean

import "github.com/cartforge/polyclip/point"

// Ring is a closed sequence of vertices; the edge between the last and first point is implicit.
// Winding direction is not significant on input.
type Ring []point.Point

// Polygon is one outer boundary plus zero or more interior holes.
type Polygon struct {
	Exterior Ring
	Holes    []Ring
}

// MultiPolygon is an unordered collection of polygons, the kernel's sole input and output type.
type MultiPolygon []Polygon
