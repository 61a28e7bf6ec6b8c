package scheduler

import "fmt"

// Enumeration of common errors that may be returned by scheduler operations.
const (
	ErrInvalidFormat = schedulerError("invalid format")
	ErrUnknownKind   = schedulerError("unknown scheduler kind")
)

// schedulerError defines the type for errors that may be returned by scheduler operations.
type schedulerError string

// Error returns the cause of the scheduler error.
func (e schedulerError) Error() string {
	return string(e)
}

// FormatError reports text that could not be parsed as a Timestamp or Event.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidFormat, e.Input, e.Reason)
}

// Is reports whether target is ErrInvalidFormat, so callers can match any
// FormatError with errors.Is.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
