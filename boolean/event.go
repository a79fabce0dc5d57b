package boolean

import "github.com/cartforge/polyclip/point"

// eventIndex addresses a single event inside an arena. It stands in for the weak/shared-owner
// references the algorithm's description assumes (see the Design Notes on cyclic event
// references): an arena of events indexed by a stable integer avoids the reference cycle between
// an event and its partner without requiring weak pointers or a garbage collector hint.
type eventIndex int

// noEvent is the sentinel for "no such event" (an absent predecessor, an unset prevInResult, ...).
const noEvent eventIndex = -1

// edgeType classifies how a segment contributes to the Boolean result, particularly for
// overlapping inputs.
type edgeType uint8

const (
	edgeNormal edgeType = iota
	edgeNonContributing
	edgeSameTransition
	edgeDifferentTransition
)

// resultTransition indicates whether a segment that is part of the result is an interior->exterior
// or exterior->interior boundary of the result, when traversed in sweep direction.
type resultTransition uint8

const (
	transitionNone resultTransition = iota
	transitionInOut
	transitionOutIn
)

// event is a single endpoint of a segment (original input edge or a sub-segment produced by
// splitting at an intersection).
//
// contourID, point, isSubject and isExteriorRing never change after creation. Every other field is
// mutated as the sweep progresses; mutation is centralized in the functions of this package rather
// than scattered across callers.
type event struct {
	// immutable
	contourID      int
	point          point.Point
	isSubject      bool
	isExteriorRing bool

	// mutable
	isLeft           bool
	other            eventIndex
	edgeType         edgeType
	inOut            bool
	otherInOut       bool
	resultTransition resultTransition
	prevInResult     eventIndex
	otherPos         int
	outputContourID  int
}

// arena owns every event allocated during one call to Run.
type arena struct {
	events []event
}

func newArena() *arena {
	return &arena{}
}

// add allocates a new event and returns its index.
func (a *arena) add(e event) eventIndex {
	a.events = append(a.events, e)
	return eventIndex(len(a.events) - 1)
}

func (a *arena) get(i eventIndex) *event {
	return &a.events[i]
}

// inResult reports whether e (already field-computed) currently contributes to the result.
func (e *event) inResult() bool {
	return e.resultTransition != transitionNone
}

// isVertical reports whether e and its partner share an x-coordinate.
func (a *arena) isVertical(i eventIndex) bool {
	e := a.get(i)
	if e.other == noEvent {
		return false
	}
	return e.point.X() == a.get(e.other).point.X()
}

// leftRight returns e's segment endpoints ordered (left, right) regardless of whether e itself is
// the left or the right event of the pair.
func (a *arena) leftRight(i eventIndex) (left, right point.Point) {
	e := a.get(i)
	o := a.get(e.other)
	if e.isLeft {
		return e.point, o.point
	}
	return o.point, e.point
}

// isBelow reports whether the segment that event i belongs to lies below p, i.e. whether p lies
// strictly above the (infinite extension of the) segment. It is defined identically regardless of whether i is the left or right endpoint of
// its segment, by always orienting the comparison from the segment's left point to its right
// point.
func isBelow(a *arena, i eventIndex, p point.Point) bool {
	left, right := a.leftRight(i)
	return point.SignedArea(left, right, p) > 0
}

// isAbove is the complement of isBelow for a non-collinear point.
func isAbove(a *arena, i eventIndex, p point.Point) bool {
	return !isBelow(a, i, p)
}
