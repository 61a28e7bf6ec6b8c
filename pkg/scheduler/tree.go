package scheduler

import "github.com/google/btree"

// defaultDegree is the B-tree degree used when NewTree is given a degree below 2.
const defaultDegree = 32

// treeScheduler is a Scheduler backed by an ordered B-tree. Unlike the heap,
// listing is an in-order walk and needs no copy.
type treeScheduler struct {
	events *btree.BTreeG[entry]
	seq    uint64
}

// NewTree creates an empty B-tree backed Scheduler with the given degree.
func NewTree(degree int) *treeScheduler {
	if degree < 2 {
		degree = defaultDegree
	}

	return &treeScheduler{
		events: btree.NewG[entry](degree, lessEntry),
	}
}

// Insert adds an event to the tree. Sequence numbers make every key unique,
// so nothing is ever replaced.
func (s *treeScheduler) Insert(name string, at Timestamp) {
	s.events.ReplaceOrInsert(entry{event: Event{Name: name, At: at}, seq: s.seq})
	s.seq++
}

// Peek returns the minimum of the tree.
func (s *treeScheduler) Peek() (Event, bool) {
	e, ok := s.events.Min()
	return e.event, ok
}

// RemoveEarliest deletes and returns the minimum of the tree.
func (s *treeScheduler) RemoveEarliest() (Event, bool) {
	e, ok := s.events.DeleteMin()
	return e.event, ok
}

// ListAll walks the tree in ascending order.
func (s *treeScheduler) ListAll() []Event {
	out := make([]Event, 0, s.events.Len())
	s.events.Ascend(func(e entry) bool {
		out = append(out, e.event)
		return true
	})
	return out
}

// Len returns the number of events in the tree.
func (s *treeScheduler) Len() int {
	return s.events.Len()
}

var _ Scheduler = (*treeScheduler)(nil)
