package boolean

import "github.com/cartforge/polyclip/point"

// intersectKind classifies the result of segmentIntersection.
type intersectKind uint8

const (
	intersectNone intersectKind = iota
	intersectPoint
	intersectOverlap
)

// segmentIntersection classifies the intersection of segment (a1,a2) with segment (b1,b2).
//
// For intersectPoint, p1 holds the single intersection point (p2 is zero). For intersectOverlap,
// p1 and p2 hold the two endpoints of the shared sub-segment, ordered from a1 toward a2. The
// returned point(s) are always clamped to the joint bounding box of the four input endpoints, which
// preserves the invariant that a computed split point can never fall to the left of the current
// sweep position.
//
// Ported from the reference algorithm's segment_intersection routine (parametric line
// intersection via the cross product of the two direction vectors), generalizing its collinear
// branch to report the overlap interval rather than only a single clamped point.
func segmentIntersection(a1, a2, b1, b2 point.Point) (p1, p2 point.Point, kind intersectKind) {
	minX := maxf(minf(a1.X(), a2.X()), minf(b1.X(), b2.X()))
	maxX := minf(maxf(a1.X(), a2.X()), maxf(b1.X(), b2.X()))
	minY := maxf(minf(a1.Y(), a2.Y()), minf(b1.Y(), b2.Y()))
	maxY := minf(maxf(a1.Y(), a2.Y()), maxf(b1.Y(), b2.Y()))
	if minX > maxX || minY > maxY {
		return point.Point{}, point.Point{}, intersectNone
	}
	clamp := func(p point.Point) point.Point {
		x, y := p.X(), p.Y()
		if x < minX {
			x = minX
		} else if x > maxX {
			x = maxX
		}
		if y < minY {
			y = minY
		} else if y > maxY {
			y = maxY
		}
		return point.New(x, y)
	}

	va := a2.Sub(a1)
	vb := b2.Sub(b1)
	e := b1.Sub(a1)

	kross := va.CrossProduct(vb)
	sqrKross := kross * kross
	sqrLenA := va.DotProduct(va)

	if sqrKross > 0 {
		s := e.CrossProduct(vb) / kross
		if s < 0 || s > 1 {
			return point.Point{}, point.Point{}, intersectNone
		}
		t := e.CrossProduct(va) / kross
		if t < 0 || t > 1 {
			return point.Point{}, point.Point{}, intersectNone
		}
		if s == 0 || s == 1 {
			return clamp(midPoint(a1, s, va)), point.Point{}, intersectPoint
		}
		if t == 0 || t == 1 {
			return clamp(midPoint(b1, t, vb)), point.Point{}, intersectPoint
		}
		return clamp(midPoint(a1, s, va)), point.Point{}, intersectPoint
	}

	kross = e.CrossProduct(va)
	sqrKross = kross * kross
	if sqrKross > 0 {
		// parallel, not collinear
		return point.Point{}, point.Point{}, intersectNone
	}

	sa := va.DotProduct(e) / sqrLenA
	sb := sa + va.DotProduct(vb)/sqrLenA
	sMin, sMax := sa, sb
	if sMin > sMax {
		sMin, sMax = sMax, sMin
	}

	if sMin <= 1 && sMax >= 0 {
		if sMin == 1 {
			return clamp(midPoint(a1, sMin, va)), point.Point{}, intersectPoint
		}
		if sMax == 0 {
			return clamp(midPoint(a1, sMax, va)), point.Point{}, intersectPoint
		}
		lo := maxf(sMin, 0)
		hi := minf(sMax, 1)
		return clamp(midPoint(a1, lo, va)), clamp(midPoint(a1, hi, va)), intersectOverlap
	}

	return point.Point{}, point.Point{}, intersectNone
}

func midPoint(p point.Point, s float64, d point.Point) point.Point {
	return point.New(p.X()+s*d.X(), p.Y()+s*d.Y())
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
