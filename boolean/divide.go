package boolean

import (
	"math"

	"github.com/cartforge/polyclip/point"
)

// divideSegment splits the segment owned by left event seLeft at p, pushing the two new events
// produced by the split back into the queue. seLeft's partner (the original right event) is
// looked up from the arena.
func divideSegment(a *arena, q *eventQueue, seLeft eventIndex, p point.Point) {
	left := a.get(seLeft)
	seRight := left.other
	right := a.get(seRight)

	// A split that would make the first sub-segment perfectly vertical, with its new right event
	// strictly below the original left point, can't be processed: that right event would have to
	// sort before the left event that owns it. Nudge p.x up by one ULP so the sub-segment is no
	// longer vertical.
	if p.X() == left.point.X() && p.Y() < left.point.Y() {
		p = point.New(math.Nextafter(p.X(), math.Inf(1)), p.Y())
	}

	newRight := event{
		contourID:      left.contourID,
		point:          p,
		isSubject:      left.isSubject,
		isExteriorRing: left.isExteriorRing,
		isLeft:         false,
		other:          seLeft,
	}
	newRightIdx := a.add(newRight)
	// a.add may grow the arena's backing slice, so writes go through a fresh a.get.
	a.get(seLeft).other = newRightIdx

	newLeft := event{
		contourID:      right.contourID,
		point:          p,
		isSubject:      right.isSubject,
		isExteriorRing: right.isExteriorRing,
		isLeft:         true,
		other:          seRight,
	}
	newLeftIdx := a.add(newLeft)
	a.get(seRight).other = newLeftIdx

	// The second sub-segment's new left event sorting after the original right event means it
	// went vertical the wrong way; swap which end is flagged left and which is flagged right.
	if compareEvents(a, newLeftIdx, seRight) > 0 {
		a.get(seRight).isLeft = true
		a.get(newLeftIdx).isLeft = false
	}

	q.push(newRightIdx)
	q.push(newLeftIdx)
}
