package polygon

import (
	"fmt"

	"github.com/cartforge/polyclip/options"
)

// Polygon is one outer boundary plus zero or more interior holes.
type Polygon struct {
	Exterior Ring   `json:"exterior"`
	Holes    []Ring `json:"holes,omitempty"`
}

// New constructs a Polygon from an exterior ring and any number of hole rings.
func New(exterior Ring, holes ...Ring) Polygon {
	return Polygon{Exterior: exterior, Holes: holes}
}

// IsWellFormed reports whether every ring of p (exterior and holes) is individually well-formed.
// It does not check that holes lie within the exterior or that holes are pairwise disjoint — that
// requires the same pairwise machinery as the boolean kernel itself, and is left to running the
// kernel rather than duplicated here.
func (p Polygon) IsWellFormed(opts ...options.GeometryOptionsFunc) (bool, error) {
	if ok, err := p.Exterior.IsWellFormed(opts...); !ok {
		return false, fmt.Errorf("polygon: exterior ring invalid: %w", err)
	}
	for i, h := range p.Holes {
		if ok, err := h.IsWellFormed(opts...); !ok {
			return false, fmt.Errorf("polygon: hole %d invalid: %w", i, err)
		}
	}
	return true, nil
}
