package fixture

import (
	"testing"

	"github.com/cartforge/polyclip"
	"github.com/cartforge/polyclip/boolean"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCases_MatchExpected(t *testing.T) {
	for _, c := range Cases() {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			got, err := polyclip.Run(c.Subject, c.Clipping, c.Operation)
			require.NoError(t, err)
			assert.True(t, SameMultiPolygon(c.Expected, got), "got %v, want %v", got, c.Expected)
		})
	}
}

// TestCommutativity checks that Intersection, Union and Xor yield the same ring set on operand
// swap.
func TestCommutativity(t *testing.T) {
	for _, c := range Cases() {
		if c.SwapABIsBroken {
			continue
		}
		if c.Operation != boolean.Intersection && c.Operation != boolean.Union && c.Operation != boolean.Xor {
			continue
		}
		c := c
		t.Run(c.Name, func(t *testing.T) {
			forward, err := polyclip.Run(c.Subject, c.Clipping, c.Operation)
			require.NoError(t, err)
			backward, err := polyclip.Run(c.Clipping, c.Subject, c.Operation)
			require.NoError(t, err)
			assert.True(t, SameMultiPolygon(forward, backward))
		})
	}
}

// TestIdempotence checks that A∪A and A∩A both reduce to A.
func TestIdempotence(t *testing.T) {
	for _, c := range Cases() {
		c := c
		t.Run(c.Name, func(t *testing.T) {
			union, err := polyclip.Run(c.Subject, c.Subject, boolean.Union)
			require.NoError(t, err)
			assert.True(t, SameMultiPolygon(c.Subject, union))

			inter, err := polyclip.Run(c.Subject, c.Subject, boolean.Intersection)
			require.NoError(t, err)
			assert.True(t, SameMultiPolygon(c.Subject, inter))
		})
	}
}
