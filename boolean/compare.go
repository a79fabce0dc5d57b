package boolean

import "github.com/cartforge/polyclip/point"

// compareEvents imposes the sweep-event total order used by the priority queue: the queue always
// yields the smallest event under this order first.
//
// Grounded on the source algorithm's sweep_event ordering (Ord impl): x ascending, then y
// ascending, then right-before-left at a shared point, then by which segment passes below the
// other's far endpoint, and finally subject-before-clipping.
func compareEvents(a *arena, i, j eventIndex) int {
	ei, ej := a.get(i), a.get(j)
	pi, pj := ei.point, ej.point

	if pi.X() != pj.X() {
		return cmpFloat(pi.X(), pj.X())
	}
	if pi.Y() != pj.Y() {
		return cmpFloat(pi.Y(), pj.Y())
	}
	if ei.isLeft != ej.isLeft {
		// the right event is processed first
		if ei.isLeft {
			return 1
		}
		return -1
	}
	if ei.other != noEvent && ej.other != noEvent {
		oi, oj := a.get(ei.other).point, a.get(ej.other).point
		if point.SignedArea(pi, oi, oj) != 0 {
			if isBelow(a, i, oj) {
				return -1
			}
			return 1
		}
	}
	if ei.isSubject != ej.isSubject {
		if ei.isSubject {
			return -1
		}
		return 1
	}
	return 0
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareSegments imposes the status-line order on two currently-active left events. Both must
// have live partners. This is only a strict *weak* order: the caller-maintained invariant that no
// two active segments share a left endpoint except transiently is what possibleIntersection is
// responsible for preserving.
func compareSegments(a *arena, i, j eventIndex) int {
	if i == j {
		return 0
	}

	// e_old is whichever of the two was processed earlier in event order; swap and invert
	// otherwise.
	eOld, eNew := i, j
	invert := false
	if compareEvents(a, i, j) > 0 {
		eOld, eNew = j, i
		invert = true
	}

	result := compareSegmentsOrdered(a, eOld, eNew)
	if invert {
		return -result
	}
	return result
}

func compareSegmentsOrdered(a *arena, eOld, eNew eventIndex) int {
	old, new_ := a.get(eOld), a.get(eNew)
	oldOther, newOther := a.get(old.other), a.get(new_.other)

	saL := point.SignedArea(old.point, oldOther.point, new_.point)
	saR := point.SignedArea(old.point, oldOther.point, newOther.point)

	if saL != 0 || saR != 0 {
		if old.point.Eq(new_.point) {
			if isBelow(a, eOld, newOther.point) {
				return -1
			}
			return 1
		}
		if old.point.X() == new_.point.X() {
			return cmpFloat(old.point.Y(), new_.point.Y())
		}

		sameSign := (saL > 0 && saR > 0) || (saL < 0 && saR < 0)
		if sameSign {
			if saL > 0 {
				return -1
			}
			return 1
		}
		if saL == 0 {
			if saR > 0 {
				return -1
			}
			return 1
		}

		inter, _, kind := segmentIntersection(old.point, oldOther.point, new_.point, newOther.point)
		if kind == intersectPoint && inter.Eq(new_.point) {
			if saR > 0 {
				return -1
			}
			return 1
		}
		if saL > 0 {
			return -1
		}
		return 1
	}

	// collinear
	if old.isSubject == new_.isSubject {
		if old.point.Eq(new_.point) {
			return cmpInt(old.contourID, new_.contourID)
		}
		// earlier event (by temporal priority) is less; eOld was processed earlier.
		return -1
	}
	if old.isSubject {
		return -1
	}
	return 1
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
