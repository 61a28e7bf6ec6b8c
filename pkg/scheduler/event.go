package scheduler

import (
	"fmt"
	"strings"
)

// Event is a named point in time waiting in a Scheduler.
//
// Events have no identity beyond their fields; two events with the same name
// and timestamp are interchangeable and may both be scheduled.
type Event struct {
	Name string
	At   Timestamp
}

// String renders the event as "<name> at dd/MM/yyyy HH:mm".
func (e Event) String() string {
	return e.Name + " at " + e.At.String()
}

// ParseEvent parses the command line form "<name>@dd/MM/yyyy HH:mm".
// The name is everything before the last '@' and must not be empty.
func ParseEvent(s string) (Event, error) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return Event{}, &FormatError{Input: s, Reason: "expected <name>@" + Layout}
	}

	name := s[:i]
	if strings.TrimSpace(name) == "" {
		return Event{}, &FormatError{Input: s, Reason: "empty event name"}
	}

	at, err := ParseTimestamp(s[i+1:])
	if err != nil {
		return Event{}, fmt.Errorf("parse event %q: %w", name, err)
	}

	return Event{Name: name, At: at}, nil
}
