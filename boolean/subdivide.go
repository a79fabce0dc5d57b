package boolean

// subdivide drives the sweep: it pops events in order, maintaining the status structure and
// dispatching to computeFields and possibleIntersection, and returns every event it processed in
// sorted order for the assembly stage.
//
// Grounded on the reference algorithm's subdivide_segments driver, adapted to the arena/eventIndex
// model and the eventQueue/statusStructure split.
func subdivide(a *arena, q *eventQueue, subjectBox, clipBox bbox, op Operation) []eventIndex {
	status := newStatusStructure(a)
	var sorted []eventIndex

	for !q.empty() {
		ev := q.pop()
		e := a.get(ev)

		sorted = append(sorted, ev)

		stop := false
		switch op {
		case Intersection:
			if e.point.X() > minf(subjectBox.maxX, clipBox.maxX) {
				stop = true
			}
		case Difference:
			if e.point.X() > subjectBox.maxX {
				stop = true
			}
		}
		if stop {
			break
		}

		if e.isLeft {
			status.insert(ev)
			prev, hasPrev := status.prev(ev)
			next, hasNext := status.next(ev)

			firstPrev := noEvent
			if hasPrev {
				firstPrev = prev
			}
			computeFields(a, op, ev, firstPrev)

			if hasNext {
				if possibleIntersection(a, q, ev, next) == 2 {
					computeFields(a, op, ev, firstPrev)
					computeFields(a, op, next, ev)
				}
			}
			if hasPrev {
				if possibleIntersection(a, q, prev, ev) == 2 {
					prevPrev := noEvent
					if pp, ok := status.prev(prev); ok {
						prevPrev = pp
					}
					computeFields(a, op, prev, prevPrev)
					computeFields(a, op, ev, prev)
				}
			}
		} else {
			partner := e.other
			if partner != noEvent && status.contains(partner) {
				prev, hasPrev := status.prev(partner)
				next, hasNext := status.next(partner)
				if hasPrev && hasNext {
					possibleIntersection(a, q, prev, next)
				}
				status.remove(partner)
			}
		}
	}

	return sorted
}
