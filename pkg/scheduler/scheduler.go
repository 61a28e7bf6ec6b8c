package scheduler

import "fmt"

// Scheduler keeps events ordered soonest first.
//
// Events with equal timestamps are ordered by insertion: the one inserted
// first is removed and listed first.
//
// Implementations are not safe for concurrent use; callers sharing a
// Scheduler between goroutines must serialize every call.
type Scheduler interface {
	// Insert adds an event. Duplicates are allowed.
	Insert(name string, at Timestamp)

	// Peek returns the earliest event without removing it.
	// The boolean is false when the scheduler is empty.
	Peek() (Event, bool)

	// RemoveEarliest removes and returns the earliest event.
	// The boolean is false when the scheduler is empty.
	RemoveEarliest() (Event, bool)

	// ListAll returns every pending event in order. The slice is a snapshot
	// owned by the caller and is never nil.
	ListAll() []Event

	// Len returns the number of pending events.
	Len() int
}

// Kind names a Scheduler implementation.
type Kind string

// Supported Scheduler implementations.
const (
	KindHeap  Kind = "heap"
	KindBTree Kind = "btree"
)

// String implements pflag.Value.
func (k *Kind) String() string {
	return string(*k)
}

// Set implements pflag.Value, rejecting unknown kinds.
func (k *Kind) Set(s string) error {
	switch Kind(s) {
	case KindHeap, KindBTree:
		*k = Kind(s)
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Type implements pflag.Value.
func (k *Kind) Type() string {
	return "kind"
}

// New creates an empty Scheduler of the given kind.
func New(kind Kind) (Scheduler, error) {
	switch kind {
	case KindHeap:
		return NewHeap(), nil
	case KindBTree:
		return NewTree(0), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// entry is an event plus its insertion sequence number, which breaks ties
// between equal timestamps.
type entry struct {
	event Event
	seq   uint64
}

func lessEntry(a, b entry) bool {
	if c := Compare(a.event.At, b.event.At); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}
