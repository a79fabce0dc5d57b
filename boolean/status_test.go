package boolean

import (
	"testing"

	"github.com/cartforge/polyclip/point"
	"github.com/stretchr/testify/assert"
)

func TestStatusStructure_PrevNext(t *testing.T) {
	a := newArena()
	status := newStatusStructure(a)

	lower, _ := newTestEdge(a, point.New(0, 0), point.New(2, 0), true)
	middle, _ := newTestEdge(a, point.New(0, 1), point.New(2, 1), true)
	upper, _ := newTestEdge(a, point.New(0, 2), point.New(2, 2), true)

	status.insert(middle)
	status.insert(lower)
	status.insert(upper)

	assert.False(t, status.empty())

	prev, ok := status.prev(middle)
	assert.True(t, ok)
	assert.Equal(t, lower, prev)

	next, ok := status.next(middle)
	assert.True(t, ok)
	assert.Equal(t, upper, next)

	_, ok = status.prev(lower)
	assert.False(t, ok)

	status.remove(lower)
	assert.False(t, status.contains(lower))
	assert.True(t, status.contains(middle))
}
