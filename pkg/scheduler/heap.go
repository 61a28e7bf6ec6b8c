package scheduler

import (
	"container/heap"
	"slices"
)

// eventHeap implements heap.Interface for entries, ordered by timestamp then insertion.
type eventHeap []entry

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	return lessEntry(h[i], h[j])
}

func (h eventHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(entry))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[0 : n-1]
	return e
}

// heapScheduler is a Scheduler backed by a binary min-heap.
// ListAll drains a copy of the heap, leaving the original untouched.
type heapScheduler struct {
	events *eventHeap
	seq    uint64
}

// NewHeap creates an empty heap-backed Scheduler.
func NewHeap() *heapScheduler {
	h := &eventHeap{}
	heap.Init(h)

	return &heapScheduler{
		events: h,
	}
}

// Insert pushes an event onto the heap.
func (s *heapScheduler) Insert(name string, at Timestamp) {
	heap.Push(s.events, entry{event: Event{Name: name, At: at}, seq: s.seq})
	s.seq++
}

// Peek returns the top of the heap.
func (s *heapScheduler) Peek() (Event, bool) {
	if s.events.Len() == 0 {
		return Event{}, false
	}
	return (*s.events)[0].event, true
}

// RemoveEarliest pops the top of the heap.
func (s *heapScheduler) RemoveEarliest() (Event, bool) {
	if s.events.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(s.events).(entry).event, true
}

// ListAll drains a copy of the heap in order.
func (s *heapScheduler) ListAll() []Event {
	// A copy of a valid heap is itself a valid heap, so no re-Init is needed.
	tmp := slices.Clone(*s.events)
	out := make([]Event, 0, len(tmp))
	for tmp.Len() > 0 {
		out = append(out, heap.Pop(&tmp).(entry).event)
	}
	return out
}

// Len returns the number of events on the heap.
func (s *heapScheduler) Len() int {
	return s.events.Len()
}

var _ Scheduler = (*heapScheduler)(nil)
