package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventString(t *testing.T) {
	e := Event{Name: "Team Meeting", At: Timestamp{Year: 2024, Month: 9, Day: 8, Hour: 9}}
	assert.Equal(t, "Team Meeting at 08/09/2024 09:00", e.String())
}

func TestParseEvent(t *testing.T) {
	e, err := ParseEvent("Team Meeting@08/09/2024 09:00")
	require.NoError(t, err)
	assert.Equal(t, Event{Name: "Team Meeting", At: Timestamp{Year: 2024, Month: 9, Day: 8, Hour: 9}}, e)

	// Only the last '@' separates the timestamp.
	e, err = ParseEvent("mail bob@example.com@10/09/2024 12:00")
	require.NoError(t, err)
	assert.Equal(t, "mail bob@example.com", e.Name)
}

func TestParseEventInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"Team Meeting",
		"@08/09/2024 09:00",
		"   @08/09/2024 09:00",
		"Team Meeting@2024-09-08 09:00",
		"Team Meeting@",
	} {
		_, err := ParseEvent(in)
		assert.ErrorIs(t, err, ErrInvalidFormat, "input %q", in)
	}
}
