package boolean

import (
	"testing"

	"github.com/cartforge/polyclip/point"
	"github.com/stretchr/testify/assert"
)

func TestComputeFields_NoPredecessor(t *testing.T) {
	a := newArena()
	left, _ := newTestEdge(a, point.New(0, 0), point.New(1, 1), true)

	computeFields(a, Union, left, noEvent)

	e := a.get(left)
	assert.False(t, e.inOut)
	assert.True(t, e.otherInOut)
	assert.Equal(t, noEvent, e.prevInResult)
}

func TestComputeFields_Intersection_BothSidesCoverBottomEdge(t *testing.T) {
	a := newArena()
	// subject's bottom edge, entering the subject interior as y increases
	subjLower, _ := newTestEdge(a, point.New(0, 0), point.New(2, 0), true)
	// clipping's bottom edge directly above it
	clipLower, _ := newTestEdge(a, point.New(0, 1), point.New(2, 1), false)

	computeFields(a, Intersection, subjLower, noEvent)
	computeFields(a, Intersection, clipLower, subjLower)

	se := a.get(subjLower)
	ce := a.get(clipLower)

	// Entering the subject alone (below both edges -> between them) is not yet inside the
	// intersection: the clipping side hasn't been entered.
	assert.False(t, se.inResult(), "subject's own edge is not an intersection boundary by itself")

	// Entering the clipping region too makes this edge the lower boundary of the intersection.
	assert.True(t, ce.inResult())
	assert.Equal(t, transitionOutIn, ce.resultTransition)
}
