package scheduler

import (
	"fmt"
	"time"
)

// Layout is the only text form accepted by ParseTimestamp and produced by Timestamp.String.
const Layout = "dd/MM/yyyy HH:mm"

// Timestamp is a calendar date and time with minute resolution and no time zone.
//
// Fields are not normalised: a Timestamp may name a day that does not exist
// in its month (for example 31/02/2024). Such values still order correctly
// by field.
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// Compare returns -1 if a is earlier than b, +1 if a is later and 0 if all fields are equal.
func Compare(a, b Timestamp) int {
	for _, p := range [...][2]int{
		{a.Year, b.Year},
		{a.Month, b.Month},
		{a.Day, b.Day},
		{a.Hour, b.Hour},
		{a.Minute, b.Minute},
	} {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Compare is shorthand for Compare(t, u).
func (t Timestamp) Compare(u Timestamp) int {
	return Compare(t, u)
}

// Before reports whether t is earlier than u.
func (t Timestamp) Before(u Timestamp) bool {
	return Compare(t, u) < 0
}

// Equal reports whether t and u name the same minute.
func (t Timestamp) Equal(u Timestamp) bool {
	return t == u
}

// String renders t as dd/MM/yyyy HH:mm.
func (t Timestamp) String() string {
	return fmt.Sprintf("%02d/%02d/%04d %02d:%02d", t.Day, t.Month, t.Year, t.Hour, t.Minute)
}

// Time returns the instant t names in loc, or in UTC if loc is nil. Days past
// the end of a month roll over into the next one, as with time.Date.
func (t Timestamp) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(t.Year, time.Month(t.Month), t.Day, t.Hour, t.Minute, 0, 0, loc)
}

// FromTime truncates tm to the minute in its own location.
func FromTime(tm time.Time) Timestamp {
	return Timestamp{
		Year:   tm.Year(),
		Month:  int(tm.Month()),
		Day:    tm.Day(),
		Hour:   tm.Hour(),
		Minute: tm.Minute(),
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Timestamp) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Timestamp) UnmarshalText(text []byte) error {
	parsed, err := ParseTimestamp(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// fieldRange bounds a numeric field of the layout.
type fieldRange struct {
	name     string
	min, max int
}

var (
	monthRange  = fieldRange{"month", 1, 12}
	dayRange    = fieldRange{"day", 1, 31}
	hourRange   = fieldRange{"hour", 0, 23}
	minuteRange = fieldRange{"minute", 0, 59}
)

// ParseTimestamp parses s, which must match Layout exactly.
//
// Every field is range checked (month 1-12, day 1-31, hour 0-23, minute
// 0-59) but the day is not checked against the length of the month, so
// "31/02/2024 10:00" is accepted. Any other deviation from the layout,
// including surrounding whitespace, returns a *FormatError.
func ParseTimestamp(s string) (Timestamp, error) {
	if len(s) != len(Layout) {
		return Timestamp{}, &FormatError{Input: s, Reason: "expected layout " + Layout}
	}

	for i := 0; i < len(Layout); i++ {
		switch Layout[i] {
		case 'd', 'M', 'y', 'H', 'm':
			if s[i] < '0' || s[i] > '9' {
				return Timestamp{}, &FormatError{Input: s, Reason: fmt.Sprintf("expected digit at offset %d", i)}
			}
		default:
			if s[i] != Layout[i] {
				return Timestamp{}, &FormatError{Input: s, Reason: fmt.Sprintf("expected %q at offset %d", Layout[i], i)}
			}
		}
	}

	t := Timestamp{
		Day:    digits(s[0:2]),
		Month:  digits(s[3:5]),
		Year:   digits(s[6:10]),
		Hour:   digits(s[11:13]),
		Minute: digits(s[14:16]),
	}

	for _, f := range []struct {
		value int
		fieldRange
	}{
		{t.Month, monthRange},
		{t.Day, dayRange},
		{t.Hour, hourRange},
		{t.Minute, minuteRange},
	} {
		if f.value < f.min || f.value > f.max {
			return Timestamp{}, &FormatError{
				Input:  s,
				Reason: fmt.Sprintf("%s %d out of range [%d, %d]", f.name, f.value, f.min, f.max),
			}
		}
	}

	return t, nil
}

// digits converts a run of ASCII digits already validated by the caller.
func digits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}
