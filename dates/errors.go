package dates

import (
	"errors"
	"fmt"
)

// ParseError is returned when text matches no recognised date/time format.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unknown string format: %s", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidDayOfWeekError is returned when a weekday token cannot be resolved.
type InvalidDayOfWeekError struct {
	Value string
}

func (e *InvalidDayOfWeekError) Error() string {
	return fmt.Sprintf("Invalid day of the week: %s", e.Value)
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}

// AsInvalidDayOfWeekError attempts to unwrap an error into an InvalidDayOfWeekError.
func AsInvalidDayOfWeekError(err error) (*InvalidDayOfWeekError, bool) {
	var dErr *InvalidDayOfWeekError
	if errors.As(err, &dErr) {
		return dErr, true
	}
	return nil, false
}
