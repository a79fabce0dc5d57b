package boolean

// Run computes the Boolean set operation op between subject and clipping, the kernel's sole public
// entry point.
//
// Grounded on the reference algorithm's boolean_operation façade: fill the queue while tracking
// both sides' bounding boxes, short-circuit on disjoint inputs, otherwise sweep and reassemble.
func Run(subject, clipping MultiPolygon, op Operation) MultiPolygon {
	a := newArena()
	q, subjectBox, clipBox := buildEventQueue(a, subject, clipping, op)

	if subjectBox.disjoint(clipBox) {
		switch op {
		case Intersection:
			return nil
		case Difference:
			return subject
		default: // Union, Xor
			result := make(MultiPolygon, 0, len(subject)+len(clipping))
			result = append(result, subject...)
			result = append(result, clipping...)
			return result
		}
	}

	sorted := subdivide(a, q, subjectBox, clipBox, op)
	return assemble(a, sorted)
}
