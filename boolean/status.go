package boolean

import rbt "github.com/emirpasic/gods/trees/redblacktree"

// statusStructure is the ordered set of segments currently crossing the sweep line, ordered
// bottom-to-top by compareSegments. It is backed by an emirpasic/gods red-black tree, exactly as
// the source module's linesegment/sweepline_statusstructure_rbt.go backs its own status line with
// a redblacktree.Tree.
//
// Unlike eventQueue, no tiebreak is added to the comparator: compareSegments is only a strict
// *weak* order by design, and subdivide is responsible for never leaving two segments that compare
// equal both active across a call into possibleIntersection.
type statusStructure struct {
	arena *arena
	tree  *rbt.Tree
}

func newStatusStructure(a *arena) *statusStructure {
	s := &statusStructure{arena: a}
	s.tree = rbt.NewWith(func(x, y interface{}) int {
		return compareSegments(a, x.(eventIndex), y.(eventIndex))
	})
	return s
}

func (s *statusStructure) insert(i eventIndex) {
	s.tree.Put(i, nil)
}

func (s *statusStructure) remove(i eventIndex) {
	s.tree.Remove(i)
}

func (s *statusStructure) empty() bool {
	return s.tree.Size() == 0
}

func (s *statusStructure) contains(i eventIndex) bool {
	return s.tree.GetNode(i) != nil
}

// prev returns the event immediately below i on the status line, and whether one exists.
func (s *statusStructure) prev(i eventIndex) (eventIndex, bool) {
	node := s.tree.GetNode(i)
	if node == nil {
		return noEvent, false
	}
	it := s.tree.IteratorAt(node)
	if !it.Prev() {
		return noEvent, false
	}
	return it.Key().(eventIndex), true
}

// next returns the event immediately above i on the status line, and whether one exists.
func (s *statusStructure) next(i eventIndex) (eventIndex, bool) {
	node := s.tree.GetNode(i)
	if node == nil {
		return noEvent, false
	}
	it := s.tree.IteratorAt(node)
	if !it.Next() {
		return noEvent, false
	}
	return it.Key().(eventIndex), true
}
