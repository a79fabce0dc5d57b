package boolean

import "github.com/cartforge/polyclip/point"

// contour is one ring produced by the walk in assemble, before it is grouped into polygons.
type contour struct {
	points []point.Point
	isHole bool
	parent int // index into the contours slice this ring is a hole of, or -1
	depth  int
}

// assemble reconnects the events that survive subdivision into closed, correctly nested contours,
// grounded on the reference algorithm's connect_edges routine.
func assemble(a *arena, sorted []eventIndex) MultiPolygon {
	subset := filterResultEvents(a, sorted)
	bubbleSortEvents(a, subset)
	assignOtherPos(a, subset)
	iter := buildIterationMap(a, subset)

	processed := make([]bool, len(subset))
	var contours []*contour

	for i := range subset {
		if processed[i] {
			continue
		}
		e := a.get(subset[i])
		parentIdx, isHole, depth := inferParentHole(a, contours, e)
		c := &contour{parent: parentIdx, isHole: isHole, depth: depth}
		contourIdx := len(contours)
		contours = append(contours, c)

		initialPoint := e.point
		c.points = append(c.points, initialPoint)
		cur := i
		for {
			processed[cur] = true
			a.get(subset[cur]).outputContourID = contourIdx

			partnerPos := a.get(subset[cur]).otherPos
			processed[partnerPos] = true
			a.get(subset[partnerPos]).outputContourID = contourIdx
			// Each vertex is recorded once; the ring is left open (no repeated first point).
			if pp := a.get(subset[partnerPos]).point; !pp.Eq(initialPoint) {
				c.points = append(c.points, pp)
			}

			next, ok := nextUnprocessed(a, subset, iter, processed, partnerPos, initialPoint)
			if !ok {
				break
			}
			cur = next
		}
	}

	return buildMultiPolygon(contours)
}

// filterResultEvents keeps left events whose result_transition is set, and right events whose
// partner is in the result.
func filterResultEvents(a *arena, sorted []eventIndex) []eventIndex {
	var subset []eventIndex
	for _, idx := range sorted {
		e := a.get(idx)
		if e.isLeft {
			if e.resultTransition != transitionNone {
				subset = append(subset, idx)
			}
		} else if e.other != noEvent && a.get(e.other).inResult() {
			subset = append(subset, idx)
		}
	}
	return subset
}

// bubbleSortEvents re-applies the sweep-event order to the filtered subset. The subset is already
// near-sorted (it is a sub-sequence of the fully-ordered processed list); bubble passes are
// repeated until one makes no swap, which clears up residual inversions left by the filtering.
func bubbleSortEvents(a *arena, subset []eventIndex) {
	n := len(subset)
	for pass := 0; pass < n; pass++ {
		swapped := false
		for i := 0; i+1 < n; i++ {
			if compareEvents(a, subset[i], subset[i+1]) > 0 {
				subset[i], subset[i+1] = subset[i+1], subset[i]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}

// assignOtherPos gives every event its position in subset, then has each left event swap its
// position with its partner's so that otherPos always addresses the partner.
func assignOtherPos(a *arena, subset []eventIndex) {
	for pos, idx := range subset {
		a.get(idx).otherPos = pos
	}
	for _, idx := range subset {
		e := a.get(idx)
		if e.isLeft {
			pe := a.get(e.other)
			e.otherPos, pe.otherPos = pe.otherPos, e.otherPos
		}
	}
}

// buildIterationMap groups consecutive same-point events and links each group into one closed
// cycle: right events rotate forward, left events rotate backward, and the two halves (when both
// present) are bridged so the whole group is one cycle.
func buildIterationMap(a *arena, subset []eventIndex) []int {
	iter := make([]int, len(subset))
	i := 0
	for i < len(subset) {
		j := i
		for j < len(subset) && a.get(subset[j]).point.Eq(a.get(subset[i]).point) {
			j++
		}

		var rIdx, lIdx []int
		for k := i; k < j; k++ {
			if a.get(subset[k]).isLeft {
				lIdx = append(lIdx, k)
			} else {
				rIdx = append(rIdx, k)
			}
		}

		for k := 0; k+1 < len(rIdx); k++ {
			iter[rIdx[k]] = rIdx[k+1]
		}
		for k := len(lIdx) - 1; k > 0; k-- {
			iter[lIdx[k]] = lIdx[k-1]
		}

		switch {
		case len(rIdx) > 0 && len(lIdx) > 0:
			iter[rIdx[len(rIdx)-1]] = lIdx[len(lIdx)-1]
			iter[lIdx[0]] = rIdx[0]
		case len(rIdx) > 0:
			iter[rIdx[len(rIdx)-1]] = rIdx[0]
		case len(lIdx) > 0:
			iter[lIdx[0]] = lIdx[len(lIdx)-1]
		}

		i = j
	}
	return iter
}

// nextUnprocessed follows the iteration map from start, looking for the next unprocessed index in
// its vertex group. It reports false when the map is exhausted or loops back to initialPoint,
// either of which closes the current contour.
func nextUnprocessed(a *arena, subset []eventIndex, iter []int, processed []bool, start int, initialPoint point.Point) (int, bool) {
	cand := iter[start]
	for steps := 0; steps < len(subset); steps++ {
		if !processed[cand] {
			if a.get(subset[cand]).point.Eq(initialPoint) {
				return 0, false
			}
			return cand, true
		}
		if a.get(subset[cand]).point.Eq(initialPoint) {
			return 0, false
		}
		cand = iter[cand]
	}
	return 0, false
}

// inferParentHole decides whether the contour starting at e is a hole or an exterior, and which
// already-built contour it nests under.
func inferParentHole(a *arena, contours []*contour, e *event) (parentIdx int, isHole bool, depth int) {
	if e.prevInResult == noEvent {
		return -1, false, 0
	}
	prevEv := a.get(e.prevInResult)
	lIdx := prevEv.outputContourID
	l := contours[lIdx]
	if prevEv.resultTransition == transitionOutIn {
		if l.isHole {
			return l.parent, true, l.depth
		}
		return lIdx, true, l.depth + 1
	}
	return -1, false, l.depth
}

// buildMultiPolygon groups every exterior contour with the holes that named it as parent.
func buildMultiPolygon(contours []*contour) MultiPolygon {
	var result MultiPolygon
	for idx, c := range contours {
		if c.parent != -1 {
			continue
		}
		poly := Polygon{Exterior: Ring(c.points)}
		for _, h := range contours {
			if h.isHole && h.parent == idx {
				poly.Holes = append(poly.Holes, Ring(h.points))
			}
		}
		result = append(result, poly)
	}
	return result
}
