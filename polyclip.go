package polyclip

import (
	"fmt"

	"github.com/cartforge/polyclip/boolean"
	"github.com/cartforge/polyclip/polygon"
)

// Operation selects which of the four Boolean set operations [Run] computes.
type Operation = boolean.Operation

const (
	Intersection = boolean.Intersection
	Union        = boolean.Union
	Difference   = boolean.Difference
	Xor          = boolean.Xor
)

// Run computes op between subject and clipping and returns the resulting multi-polygon.
//
// Neither input needs consistent winding direction — the kernel is winding-agnostic — but both
// are expected to be well-formed (see [polygon.MultiPolygon.IsWellFormed]); Run does not validate
// its inputs itself, matching the kernel's "invariant violations are programmer errors" error
// model (malformed input produces an unspecified result rather than an error return).
func Run(subject, clipping polygon.MultiPolygon, op Operation) (polygon.MultiPolygon, error) {
	switch op {
	case Intersection, Union, Difference, Xor:
	default:
		return nil, fmt.Errorf("polyclip: unsupported operation: %d", op)
	}

	logDebugf("polyclip: running %s on %d subject polygon(s), %d clipping polygon(s)", op, len(subject), len(clipping))
	result := boolean.Run(toKernel(subject), toKernel(clipping), op)
	logDebugf("polyclip: %s produced %d polygon(s)", op, len(result))
	return fromKernel(result), nil
}

func toKernel(mp polygon.MultiPolygon) boolean.MultiPolygon {
	out := make(boolean.MultiPolygon, len(mp))
	for i, p := range mp {
		holes := make([]boolean.Ring, len(p.Holes))
		for j, h := range p.Holes {
			holes[j] = boolean.Ring(h)
		}
		out[i] = boolean.Polygon{Exterior: boolean.Ring(p.Exterior), Holes: holes}
	}
	return out
}

func fromKernel(mp boolean.MultiPolygon) polygon.MultiPolygon {
	if mp == nil {
		return nil
	}
	out := make(polygon.MultiPolygon, len(mp))
	for i, p := range mp {
		var holes []polygon.Ring
		if len(p.Holes) > 0 {
			holes = make([]polygon.Ring, len(p.Holes))
		}
		for j, h := range p.Holes {
			holes[j] = polygon.Ring(h)
		}
		out[i] = polygon.Polygon{Exterior: polygon.Ring(p.Exterior), Holes: holes}
	}
	return out
}
