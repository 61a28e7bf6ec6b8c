package menu

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackebrot/go-event-scheduler/pkg/scheduler"
)

func run(t *testing.T, input string) (string, scheduler.Scheduler) {
	t.Helper()

	events := scheduler.NewHeap()
	var out strings.Builder
	require.NoError(t, New(events, strings.NewReader(input), &out).Run())
	return out.String(), events
}

func TestMenuSession(t *testing.T) {
	input := strings.Join([]string{
		"1", "Project Deadline", "10/09/2024 12:00",
		"1", "Team Meeting", "08/09/2024 09:00",
		"3",
		"2",
		"3",
		"4",
	}, "\n") + "\n"

	got, events := run(t, input)

	want := prompt + "Enter event name: Enter event date (dd/MM/yyyy HH:mm): Event added: Project Deadline at 10/09/2024 12:00\n" +
		prompt + "Enter event name: Enter event date (dd/MM/yyyy HH:mm): Event added: Team Meeting at 08/09/2024 09:00\n" +
		prompt + "Upcoming events:\nTeam Meeting at 08/09/2024 09:00\nProject Deadline at 10/09/2024 12:00\n" +
		prompt + "Removed event: Team Meeting at 08/09/2024 09:00\n" +
		prompt + "Upcoming events:\nProject Deadline at 10/09/2024 12:00\n" +
		prompt + "Exiting...\n"

	assert.Equal(t, want, got)
	assert.Equal(t, 1, events.Len())
}

func TestMenuEmptyScheduler(t *testing.T) {
	got, _ := run(t, "2\n3\n4\n")

	assert.Contains(t, got, "No upcoming events to remove.\n")
	assert.Contains(t, got, "No upcoming events.\n")
	assert.True(t, strings.HasSuffix(got, "Exiting...\n"))
}

func TestMenuInvalidDate(t *testing.T) {
	got, events := run(t, "1\nBad\n2024-09-10 10:00\n1\nGood\n10/09/2024 10:00\n4\n")

	assert.Contains(t, got, "Invalid date format.\n")
	assert.Contains(t, got, "Event added: Good at 10/09/2024 10:00\n")
	assert.Equal(t, []scheduler.Event{{Name: "Good", At: scheduler.Timestamp{Year: 2024, Month: 9, Day: 10, Hour: 10}}}, events.ListAll())
}

func TestMenuInvalidChoice(t *testing.T) {
	for _, choice := range []string{"0", "5", "x", ""} {
		got, _ := run(t, choice+"\n4\n")
		assert.Contains(t, got, "Invalid choice. Please try again.\n", "choice %q", choice)
	}
}

func TestMenuEOF(t *testing.T) {
	// Input ending without exit, including mid-way through adding an event.
	for _, input := range []string{"", "3\n", "1\nHalf", "1\nNo date\n"} {
		got, events := run(t, input)
		assert.NotContains(t, got, "Exiting...", "input %q", input)
		assert.Equal(t, 0, events.Len())
	}

	// A last line without newline is still processed.
	got, events := run(t, "1\nLate\n01/01/2025 08:00")
	assert.Contains(t, got, "Event added: Late at 01/01/2025 08:00\n")
	assert.Equal(t, 1, events.Len())
}

func TestMenuCRLF(t *testing.T) {
	got, events := run(t, "1\r\nMeeting\r\n08/09/2024 09:00\r\n4\r\n")
	assert.Contains(t, got, "Event added: Meeting at 08/09/2024 09:00\n")
	assert.Equal(t, 1, events.Len())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestMenuWriteError(t *testing.T) {
	err := New(scheduler.NewHeap(), strings.NewReader("3\n4\n"), failingWriter{}).Run()
	assert.ErrorContains(t, err, "write output")
}
