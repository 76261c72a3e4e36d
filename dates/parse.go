package dates

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// CanonicalLayout renders seconds plus any non-zero fraction. The Z07:00
// element writes a zero offset as "Z" whatever the location is named.
const CanonicalLayout = time.RFC3339Nano

var errNoDate = errors.New("text has no date part")

// ToCanonicalString formats t as ISO-8601. A zero offset is written as "Z";
// other offsets are kept as they are.
func ToCanonicalString(t time.Time) string {
	return t.Format(CanonicalLayout)
}

// ParseString parses text in any format dateparse recognises. Text without an
// offset is interpreted as UTC.
func ParseString(text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return time.Time{}, &ParseError{Input: text}
	}
	parsed, err := dateparse.ParseIn(trimmed, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Err: err}
	}
	// Time-only text such as "12:30" comes back as a year-zero date.
	if parsed.Year() == 0 {
		return time.Time{}, &ParseError{Input: text, Err: errNoDate}
	}
	return parsed, nil
}

// NormalizeString parses text and renders it in canonical form.
func NormalizeString(text string) (string, error) {
	parsed, err := ParseString(text)
	if err != nil {
		return "", err
	}
	return ToCanonicalString(parsed), nil
}

// MustParse is ParseString that panics on failure; intended for tests and
// package-level fixtures.
func MustParse(text string) time.Time {
	parsed, err := ParseString(text)
	if err != nil {
		panic(err)
	}
	return parsed
}
