package boolean

import (
	"math"

	"github.com/cartforge/polyclip/point"
)

// bbox is the axis-aligned bounding box of one side's input (subject or clipping), accumulated
// incrementally as queue construction walks every edge. It backs the disjoint-input short-circuit
// in Run and the sweep's early-termination tests.
type bbox struct {
	minX, minY float64
	maxX, maxY float64
}

// newEmptyBBox returns a box whose first call to expand will snap it to that point.
func newEmptyBBox() bbox {
	return bbox{
		minX: math.Inf(1), minY: math.Inf(1),
		maxX: math.Inf(-1), maxY: math.Inf(-1),
	}
}

func (b *bbox) expand(p point.Point) {
	if p.X() < b.minX {
		b.minX = p.X()
	}
	if p.Y() < b.minY {
		b.minY = p.Y()
	}
	if p.X() > b.maxX {
		b.maxX = p.X()
	}
	if p.Y() > b.maxY {
		b.maxY = p.Y()
	}
}

// disjoint reports whether a and b (the subject and clipping bounding boxes) cannot overlap,
// licensing Run's trivial-result short-circuit.
func (a bbox) disjoint(b bbox) bool {
	return a.minX > b.maxX || b.minX > a.maxX || a.minY > b.maxY || b.minY > a.maxY
}
