// Package menu implements the interactive text front end of the event scheduler.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/hackebrot/go-event-scheduler/pkg/scheduler"
)

const prompt = `
Event Scheduler Menu:
1. Add Event
2. Remove Next Event
3. Display Events
4. Exit
Enter your choice: `

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceRemove
	choiceDisplay
	choiceExit
)

// Menu reads commands line by line and applies them to a Scheduler.
type Menu struct {
	events scheduler.Scheduler
	in     *bufio.Reader
	out    io.Writer
	err    error
}

// New creates a Menu reading from in and writing to out.
func New(events scheduler.Scheduler, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		events: events,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run shows the menu until the user exits or the input ends.
func (m *Menu) Run() error {
	for {
		m.printf("%s", prompt)

		line, err := m.readLine()
		if err != nil {
			return m.endOfInput(err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			choice = 0
		}

		switch choice {
		case choiceAdd:
			if err := m.add(); err != nil {
				return m.endOfInput(err)
			}
		case choiceRemove:
			m.remove()
		case choiceDisplay:
			m.display()
		case choiceExit:
			m.printf("Exiting...\n")
			return m.err
		default:
			m.printf("Invalid choice. Please try again.\n")
		}

		if m.err != nil {
			return m.err
		}
	}
}

// add prompts for a name and a date. A bad date is reported and otherwise ignored.
func (m *Menu) add() error {
	m.printf("Enter event name: ")
	name, err := m.readLine()
	if err != nil {
		return err
	}

	m.printf("Enter event date (%s): ", scheduler.Layout)
	date, err := m.readLine()
	if err != nil {
		return err
	}

	at, err := scheduler.ParseTimestamp(date)
	if err != nil {
		slog.Debug("rejected event date", "input", date, "error", err)
		m.printf("Invalid date format.\n")
		return nil
	}

	m.events.Insert(name, at)
	slog.Debug("event added", "event_name", name, "event_at", at, "count_events", m.events.Len())
	m.printf("Event added: %s\n", scheduler.Event{Name: name, At: at})
	return nil
}

func (m *Menu) remove() {
	event, ok := m.events.RemoveEarliest()
	if !ok {
		m.printf("No upcoming events to remove.\n")
		return
	}

	slog.Debug("event removed", "event_name", event.Name, "event_at", event.At, "count_events", m.events.Len())
	m.printf("Removed event: %s\n", event)
}

func (m *Menu) display() {
	events := m.events.ListAll()
	if len(events) == 0 {
		m.printf("No upcoming events.\n")
		return
	}

	m.printf("Upcoming events:\n")
	for _, e := range events {
		m.printf("%s\n", e)
	}
}

// readLine returns the next line without its line ending. A final line
// without a newline is returned before io.EOF.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// endOfInput treats io.EOF as a normal exit.
func (m *Menu) endOfInput(err error) error {
	if m.err != nil {
		return m.err
	}
	if errors.Is(err, io.EOF) {
		slog.Debug("input closed, leaving menu")
		return nil
	}
	return fmt.Errorf("menu: read input: %w", err)
}

// printf writes to the output, keeping the first write error.
func (m *Menu) printf(format string, args ...any) {
	if m.err != nil {
		return
	}
	if _, err := fmt.Fprintf(m.out, format, args...); err != nil {
		m.err = fmt.Errorf("menu: write output: %w", err)
	}
}
