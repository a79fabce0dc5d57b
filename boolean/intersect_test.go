package boolean

import (
	"testing"

	"github.com/cartforge/polyclip/point"
	"github.com/stretchr/testify/assert"
)

func TestPossibleIntersection_CrossingDiagonals(t *testing.T) {
	a := newArena()
	q := newEventQueue(a)

	se1, _ := newTestEdge(a, point.New(0, 0), point.New(2, 2), true)
	se2, _ := newTestEdge(a, point.New(0, 2), point.New(2, 0), false)

	code := possibleIntersection(a, q, se1, se2)
	assert.Equal(t, 1, code)
	assert.Equal(t, 4, q.tree.Len(), "both segments split, producing 2 new events each")
}

func TestPossibleIntersection_NoIntersection(t *testing.T) {
	a := newArena()
	q := newEventQueue(a)

	se1, _ := newTestEdge(a, point.New(0, 0), point.New(1, 0), true)
	se2, _ := newTestEdge(a, point.New(0, 5), point.New(1, 5), false)

	code := possibleIntersection(a, q, se1, se2)
	assert.Equal(t, 0, code)
	assert.True(t, q.empty())
}

func TestPossibleIntersection_SharedLeftEndpointOverlap(t *testing.T) {
	a := newArena()
	q := newEventQueue(a)

	// Same side overlaps are ignored as input artifacts (code 0) regardless of left coincidence.
	se1, _ := newTestEdge(a, point.New(0, 0), point.New(2, 0), true)
	se2, _ := newTestEdge(a, point.New(0, 0), point.New(3, 0), true)

	code := possibleIntersection(a, q, se1, se2)
	assert.Equal(t, 0, code)
}

func TestPossibleIntersection_OppositeSidesSharedLeftEndpoint(t *testing.T) {
	a := newArena()
	q := newEventQueue(a)

	se1, _ := newTestEdge(a, point.New(0, 0), point.New(2, 0), true)
	se2, _ := newTestEdge(a, point.New(0, 0), point.New(3, 0), false)

	code := possibleIntersection(a, q, se1, se2)
	assert.Equal(t, 2, code)
	assert.Equal(t, edgeNonContributing, a.get(se2).edgeType)
}

// Differing-length overlap sharing a left endpoint (spec boundary case 5, §4.7's left-coincide
// branch): the longer segment (se2) must be the one divided, and it must be divided at the
// shorter segment's (se1's) right endpoint — not the reverse.
func TestPossibleIntersection_OppositeSidesSharedLeftEndpointDifferingLength(t *testing.T) {
	a := newArena()
	q := newEventQueue(a)

	se1, _ := newTestEdge(a, point.New(0, 0), point.New(2, 0), true)
	se2, _ := newTestEdge(a, point.New(0, 0), point.New(5, 0), false)

	code := possibleIntersection(a, q, se1, se2)
	assert.Equal(t, 2, code)
	assert.Equal(t, edgeNonContributing, a.get(se2).edgeType)

	assert.Equal(t, 2, q.tree.Len(), "only the longer segment is divided, producing 2 new events")
	for !q.empty() {
		i := q.pop()
		assert.Equal(t, point.New(2, 0), a.get(i).point, "se2 must split at se1's right endpoint, not beyond it")
	}
}

// Two collinear segments from opposite sides overlapping in general position, neither sharing an
// endpoint (spec boundary case 5's partial-overlap shape, §4.7's final branch): each segment must
// be divided at the *other's* interior endpoint, both of which lie strictly inside the joint
// overlap — not outside either segment's own range.
func TestPossibleIntersection_PartialOverlap(t *testing.T) {
	a := newArena()
	q := newEventQueue(a)

	se1, _ := newTestEdge(a, point.New(0, 0), point.New(3, 0), true)
	se2, _ := newTestEdge(a, point.New(1, 0), point.New(4, 0), false)

	code := possibleIntersection(a, q, se1, se2)
	assert.Equal(t, 3, code)

	assert.Equal(t, 4, q.tree.Len(), "both segments split, producing 2 new events each")
	var points []point.Point
	for !q.empty() {
		i := q.pop()
		points = append(points, a.get(i).point)
	}
	assert.ElementsMatch(t, []point.Point{
		point.New(1, 0), point.New(1, 0),
		point.New(3, 0), point.New(3, 0),
	}, points, "se1 must split at se2's left endpoint (1,0) and se2 at se1's right endpoint (3,0)")
}

// One collinear segment strictly containing the other (spec boundary case 5's containment shape,
// §4.7's final branch, "one segment strictly contains the other"): the containing segment (se1)
// must be divided twice, at the contained segment's (se2's) left and right endpoints.
func TestPossibleIntersection_ContainmentOverlap(t *testing.T) {
	a := newArena()
	q := newEventQueue(a)

	se1, _ := newTestEdge(a, point.New(0, 0), point.New(5, 0), true)
	se2, _ := newTestEdge(a, point.New(1, 0), point.New(3, 0), false)

	code := possibleIntersection(a, q, se1, se2)
	assert.Equal(t, 3, code)

	assert.Equal(t, 4, q.tree.Len(), "the containing segment is split twice, producing 4 new events")
	var points []point.Point
	for !q.empty() {
		i := q.pop()
		points = append(points, a.get(i).point)
	}
	assert.ElementsMatch(t, []point.Point{
		point.New(1, 0), point.New(1, 0),
		point.New(3, 0), point.New(3, 0),
	}, points, "se1 must split at se2's left endpoint (1,0) and se2's right endpoint (3,0)")
}
