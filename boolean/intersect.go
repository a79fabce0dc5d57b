package boolean

// possibleIntersection classifies the intersection between the segments of two adjacent left
// events, dividing them as needed, and returns a result code: 0 (no split), 1 (split at a single
// point), 2 (overlap resolved by disabling one segment), or 3 (overlap resolved by splitting).
//
// Ported from the reference algorithm's possible_intersection routine, generalized to the
// arena/eventIndex model (no Rc pointers, so "same event" comparisons are plain index equality).
func possibleIntersection(a *arena, q *eventQueue, se1, se2 eventIndex) int {
	e1, e2 := a.get(se1), a.get(se2)
	if e1.other == noEvent || e2.other == noEvent {
		return 0
	}
	other1, other2 := e1.other, e2.other
	o1, o2 := a.get(other1), a.get(other2)

	p1, _, kind := segmentIntersection(e1.point, o1.point, e2.point, o2.point)
	switch kind {
	case intersectNone:
		return 0
	case intersectPoint:
		inter := p1
		if e1.point.Eq(e2.point) && o1.point.Eq(o2.point) {
			return 0
		}
		divided := false
		if !e1.point.Eq(inter) && !o1.point.Eq(inter) {
			divideSegment(a, q, se1, inter)
			divided = true
		}
		if !e2.point.Eq(inter) && !o2.point.Eq(inter) {
			divideSegment(a, q, se2, inter)
			divided = true
		}
		if !divided {
			return 0
		}
		return 1
	default: // intersectOverlap
		if e1.isSubject == e2.isSubject {
			return 0
		}
		return resolveOverlap(a, q, se1, se2, other1, other2)
	}
}

func resolveOverlap(a *arena, q *eventQueue, se1, se2, other1, other2 eventIndex) int {
	e1, e2 := a.get(se1), a.get(se2)
	o1, o2 := a.get(other1), a.get(other2)

	leftCoincide := e1.point.Eq(e2.point)
	rightCoincide := o1.point.Eq(o2.point)

	if leftCoincide {
		e2.edgeType = edgeNonContributing
		if e1.inOut == e2.inOut {
			e1.edgeType = edgeSameTransition
		} else {
			e1.edgeType = edgeDifferentTransition
		}
		if !rightCoincide {
			if compareEvents(a, other1, other2) < 0 {
				divideSegment(a, q, se2, a.get(other1).point)
			} else {
				divideSegment(a, q, se1, a.get(other2).point)
			}
		}
		return 2
	}

	if rightCoincide {
		if compareEvents(a, se1, se2) < 0 {
			divideSegment(a, q, se1, a.get(se2).point)
		} else {
			divideSegment(a, q, se2, a.get(se1).point)
		}
		return 3
	}

	// Four collinear events, none coincident: order the left pair and the right pair
	// independently by sweep order, then rewrite the resulting chain.
	type evPair struct{ a, b eventIndex }

	var left [2]evPair
	if compareEvents(a, se1, se2) < 0 {
		left = [2]evPair{{se1, other1}, {se2, other2}}
	} else {
		left = [2]evPair{{se2, other2}, {se1, other1}}
	}

	var right [2]evPair
	if compareEvents(a, other1, other2) < 0 {
		right = [2]evPair{{other1, se1}, {other2, se2}}
	} else {
		right = [2]evPair{{other2, se2}, {other1, se1}}
	}

	events := [4]evPair{left[0], left[1], right[0], right[1]}

	if events[0].a != events[3].b {
		// partial overlap: neither segment contains the other
		divideSegment(a, q, events[0].a, a.get(events[1].a).point)
		divideSegment(a, q, events[1].a, a.get(events[2].a).point)
		return 3
	}

	// one segment contains the other
	divideSegment(a, q, events[0].a, a.get(events[1].a).point)
	divideSegment(a, q, events[3].b, a.get(events[2].a).point)
	return 3
}
