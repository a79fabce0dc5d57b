package boolean

// buildEventQueue walks every ring of both inputs, allocating a left/right event pair per edge and
// pushing both into the queue, while accumulating each side's bounding box.
//
// Grounded on the reference algorithm's fill_queue routine.
func buildEventQueue(a *arena, subject, clipping MultiPolygon, op Operation) (q *eventQueue, subjectBox, clipBox bbox) {
	q = newEventQueue(a)
	subjectBox = newEmptyBBox()
	clipBox = newEmptyBBox()

	contourID := 0
	for _, poly := range subject {
		contourID++
		addRing(a, q, &subjectBox, poly.Exterior, contourID, true, true)
		for _, hole := range poly.Holes {
			addRing(a, q, &subjectBox, hole, contourID, true, false)
		}
	}

	clippingID := 0
	for _, poly := range clipping {
		// For Difference, the clipping side never increments: every clipping contour shares id 0,
		// since result nesting for Difference is determined solely from subject topology.
		if op != Difference {
			clippingID++
		}
		addRing(a, q, &clipBox, poly.Exterior, clippingID, false, true)
		for _, hole := range poly.Holes {
			addRing(a, q, &clipBox, hole, clippingID, false, false)
		}
	}

	return q, subjectBox, clipBox
}

func addRing(a *arena, q *eventQueue, box *bbox, ring Ring, contourID int, isSubject, isExterior bool) {
	n := len(ring)
	if n < 2 {
		return
	}
	for i := 0; i < n; i++ {
		p1 := ring[i]
		p2 := ring[(i+1)%n]
		if p1.Eq(p2) {
			continue
		}
		box.expand(p1)

		i1 := a.add(event{contourID: contourID, point: p1, isSubject: isSubject, isExteriorRing: isExterior})
		i2 := a.add(event{contourID: contourID, point: p2, isSubject: isSubject, isExteriorRing: isExterior})
		a.get(i1).other = i2
		a.get(i2).other = i1

		if compareEvents(a, i1, i2) < 0 {
			a.get(i1).isLeft = true
		} else {
			a.get(i2).isLeft = true
		}

		q.push(i1)
		q.push(i2)
	}
}
