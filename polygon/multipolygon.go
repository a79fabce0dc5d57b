package polygon

import (
	"fmt"

	"github.com/cartforge/polyclip/options"
)

// MultiPolygon is an unordered collection of polygons.
type MultiPolygon []Polygon

// IsWellFormed reports whether every polygon in mp is well-formed.
func (mp MultiPolygon) IsWellFormed(opts ...options.GeometryOptionsFunc) (bool, error) {
	for i, p := range mp {
		if ok, err := p.IsWellFormed(opts...); !ok {
			return false, fmt.Errorf("polygon: polygon %d invalid: %w", i, err)
		}
	}
	return true, nil
}
