// Package fixture holds literal test fixtures and comparison helpers used by the boolean and
// polygon packages' tests. It plays the role the reference algorithm's tests/ directory plays for
// its own suite: fixtures annotated with an operation (and an optional "operand swap is broken"
// flag), run through the public façade and checked against an expected result.
//
// Unlike the reference suite, fixtures here are literal Go values embedded in source rather than
// loaded GeoJSON-like files: this package only keeps the handful of fixtures the package tests
// need, not a general-purpose file-format test harness.
package fixture

import (
	"sort"
	"strings"

	"github.com/cartforge/polyclip/boolean"
	"github.com/cartforge/polyclip/point"
	"github.com/cartforge/polyclip/polygon"
)

// Case is one fixture: a subject and clipping multi-polygon, the operation to run between them,
// and (when known) the expected result.
//
// SwapABIsBroken mirrors the reference fixture format's flag of the same name: some fixtures are
// not expected to commute (e.g. Difference never does, by definition) and the harness should skip
// the commutativity check for them rather than treat it as a failure.
type Case struct {
	Name           string
	Subject        polygon.MultiPolygon
	Clipping       polygon.MultiPolygon
	Operation      boolean.Operation
	Expected       polygon.MultiPolygon
	SwapABIsBroken bool
}

func ring(coords ...float64) polygon.Ring {
	r := make(polygon.Ring, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		r = append(r, point.New(coords[i], coords[i+1]))
	}
	return r
}

// Cases returns the package's literal fixtures: known numerical boundary cases (adjacent unit
// squares, an hourglass touching at a point, nested rings).
func Cases() []Case {
	unitSquareA := ring(0, 0, 1, 0, 1, 1, 0, 1)
	unitSquareB := ring(1, 0, 2, 0, 2, 1, 1, 1)
	unionRect := ring(0, 0, 2, 0, 2, 1, 0, 1)

	outer := ring(0, 0, 10, 0, 10, 10, 0, 10)
	holeSquare := ring(4, 4, 6, 4, 6, 6, 4, 6)
	innerSubject := ring(4.5, 4.5, 5.5, 4.5, 5.5, 5.5, 4.5, 5.5)

	return []Case{
		{
			Name:      "adjacent unit squares / union",
			Subject:   polygon.MultiPolygon{polygon.New(unitSquareA)},
			Clipping:  polygon.MultiPolygon{polygon.New(unitSquareB)},
			Operation: boolean.Union,
			Expected:  polygon.MultiPolygon{polygon.New(unionRect)},
		},
		{
			Name:      "adjacent unit squares / intersection",
			Subject:   polygon.MultiPolygon{polygon.New(unitSquareA)},
			Clipping:  polygon.MultiPolygon{polygon.New(unitSquareB)},
			Operation: boolean.Intersection,
			Expected:  nil,
		},
		{
			Name:           "adjacent unit squares / difference",
			Subject:        polygon.MultiPolygon{polygon.New(unitSquareA)},
			Clipping:       polygon.MultiPolygon{polygon.New(unitSquareB)},
			Operation:      boolean.Difference,
			Expected:       polygon.MultiPolygon{polygon.New(unitSquareA)},
			SwapABIsBroken: true,
		},
		{
			Name:      "subject nested fully inside a hole / intersection",
			Subject:   polygon.MultiPolygon{polygon.New(innerSubject)},
			Clipping:  polygon.MultiPolygon{polygon.New(outer, holeSquare)},
			Operation: boolean.Intersection,
			Expected:  nil,
		},
	}
}

// SameMultiPolygon reports whether a and b contain the same rings up to starting-vertex rotation
// and hole reordering — the granularity at which the kernel's commutativity and idempotence laws
// hold.
func SameMultiPolygon(a, b polygon.MultiPolygon) bool {
	return canonicalMultiPolygon(a) == canonicalMultiPolygon(b)
}

func canonicalMultiPolygon(mp polygon.MultiPolygon) string {
	polys := make([]string, len(mp))
	for i, p := range mp {
		holes := make([]string, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = canonicalRing(h)
		}
		sort.Strings(holes)
		polys[i] = canonicalRing(p.Exterior) + "|" + strings.Join(holes, ";")
	}
	sort.Strings(polys)
	return strings.Join(polys, "||")
}

// canonicalRing rotates r to start at its lexicographically smallest point (trying both winding
// directions) and renders it as a comparable string.
func canonicalRing(r polygon.Ring) string {
	if len(r) == 0 {
		return ""
	}
	forward := rotatedStrings(r)
	reversed := make(polygon.Ring, len(r))
	for i, p := range r {
		reversed[len(r)-1-i] = p
	}
	backward := rotatedStrings(reversed)

	best := forward[0]
	for _, s := range append(forward, backward...) {
		if s < best {
			best = s
		}
	}
	return best
}

func rotatedStrings(r polygon.Ring) []string {
	n := len(r)
	coords := make([]string, n)
	for i, p := range r {
		x, y := p.Coordinates()
		coords[i] = point.New(x, y).String()
	}
	out := make([]string, n)
	for start := 0; start < n; start++ {
		var b strings.Builder
		for i := 0; i < n; i++ {
			b.WriteString(coords[(start+i)%n])
			b.WriteByte(',')
		}
		out[start] = b.String()
	}
	return out
}
