package boolean

import (
	"testing"

	"github.com/cartforge/polyclip/point"
	"github.com/stretchr/testify/assert"
)

func TestBBoxExpand(t *testing.T) {
	b := newEmptyBBox()
	b.expand(point.New(1, 2))
	b.expand(point.New(-1, 5))
	b.expand(point.New(3, -4))

	assert.Equal(t, -1.0, b.minX)
	assert.Equal(t, -4.0, b.minY)
	assert.Equal(t, 3.0, b.maxX)
	assert.Equal(t, 5.0, b.maxY)
}

func TestBBoxDisjoint(t *testing.T) {
	a := newEmptyBBox()
	a.expand(point.New(0, 0))
	a.expand(point.New(1, 1))

	touching := newEmptyBBox()
	touching.expand(point.New(1, 0))
	touching.expand(point.New(2, 1))
	assert.False(t, a.disjoint(touching))

	separate := newEmptyBBox()
	separate.expand(point.New(2, 2))
	separate.expand(point.New(3, 3))
	assert.True(t, a.disjoint(separate))
}
