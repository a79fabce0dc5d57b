package boolean

import "github.com/google/btree"

// eventQueue is the priority queue of pending sweep events, ordered smallest-first by
// compareEvents. It is backed by a google/btree BTreeG, exactly as the source module's
// linesegment/sweepline_eventqueue.go backs its own event queue with a btree.BTreeG.
//
// BTreeG is an ordered *set*: two keys that compare equal collide. compareEvents is a strict total
// order in every case the algorithm actually produces except the events of fully duplicate edges,
// so the queue's less method breaks a genuine tie on the arena index — this never changes
// which event the sweep would have picked, since compareEvents's own ordering rules were already
// exhausted by that point.
type eventQueue struct {
	arena *arena
	tree  *btree.BTreeG[eventIndex]
}

func newEventQueue(a *arena) *eventQueue {
	q := &eventQueue{arena: a}
	q.tree = btree.NewG(32, func(x, y eventIndex) bool {
		return q.less(x, y)
	})
	return q
}

func (q *eventQueue) less(x, y eventIndex) bool {
	if c := compareEvents(q.arena, x, y); c != 0 {
		return c < 0
	}
	return x < y
}

func (q *eventQueue) push(i eventIndex) {
	q.tree.ReplaceOrInsert(i)
}

func (q *eventQueue) empty() bool {
	return q.tree.Len() == 0
}

// pop removes and returns the smallest pending event.
func (q *eventQueue) pop() eventIndex {
	i, ok := q.tree.DeleteMin()
	if !ok {
		panic("boolean: pop from empty event queue")
	}
	return i
}
