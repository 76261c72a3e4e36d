package dates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Monday is index 0, Sunday index 6.
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

var weekdayNames = map[string]int{
	"monday": 0, "mon": 0,
	"tuesday": 1, "tue": 1,
	"wednesday": 2, "wed": 2,
	"thursday": 3, "thu": 3,
	"friday": 4, "fri": 4,
	"saturday": 5, "sat": 5,
	"sunday": 6, "sun": 6,
}

type dayKind uint8

const (
	dayUnset dayKind = iota
	dayIndex
	dayText
)

// DayToken identifies a day of the week either by index or by text. Text may
// be an integer, a weekday name or anything ParseString accepts.
type DayToken struct {
	kind  dayKind
	index int
	text  string
}

// DayIndex builds an index token.
func DayIndex(n int) DayToken {
	return DayToken{kind: dayIndex, index: n}
}

// DayText builds a text token.
func DayText(s string) DayToken {
	return DayToken{kind: dayText, text: s}
}

// DayOf builds an index token from a time.Weekday.
func DayOf(wd time.Weekday) DayToken {
	return DayIndex(WeekdayIndex(wd))
}

// DayTexts wraps each string as a text token.
func DayTexts(values ...string) []DayToken {
	tokens := make([]DayToken, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, DayText(v))
	}
	return tokens
}

// DayIndexes wraps each int as an index token.
func DayIndexes(values ...int) []DayToken {
	tokens := make([]DayToken, 0, len(values))
	for _, v := range values {
		tokens = append(tokens, DayIndex(v))
	}
	return tokens
}

// IsIndex reports whether the token holds an integer.
func (t DayToken) IsIndex() bool {
	return t.kind == dayIndex
}

// String returns the token's original value.
func (t DayToken) String() string {
	if t.kind == dayIndex {
		return strconv.Itoa(t.index)
	}
	return t.text
}

func (t DayToken) MarshalJSON() ([]byte, error) {
	switch t.kind {
	case dayIndex:
		return json.Marshal(t.index)
	case dayText:
		return json.Marshal(t.text)
	}
	return []byte("null"), nil
}

func (t *DayToken) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*t = DayToken{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*t = DayIndex(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("day of week must be a string or an integer: %w", err)
	}
	*t = DayText(s)
	return nil
}

// WeekdayIndex maps a time.Weekday onto the Monday=0 scale.
func WeekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// IndexWeekday is the inverse of WeekdayIndex.
func IndexWeekday(index int) time.Weekday {
	return time.Weekday((index + 1) % 7)
}

func validDay(n int) bool {
	return n >= MinDayOfWeek && n <= MaxDayOfWeek
}

// ResolveDayOfWeek turns a token into an index in [0,6]. Index tokens in range
// are returned as is. Text is tried as an integer, then as a weekday name,
// then as a date whose weekday is taken. Integers outside [0,6] are rejected
// on both paths.
func ResolveDayOfWeek(token DayToken) (int, error) {
	switch token.kind {
	case dayIndex:
		if validDay(token.index) {
			return token.index, nil
		}
		return 0, &InvalidDayOfWeekError{Value: token.String()}
	case dayText:
		return resolveDayText(token.text)
	}
	return 0, &InvalidDayOfWeekError{Value: token.String()}
}

func resolveDayText(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if n, err := strconv.Atoi(trimmed); err == nil {
		if validDay(n) {
			return n, nil
		}
		return 0, &InvalidDayOfWeekError{Value: text}
	}
	if day, ok := weekdayNames[strings.ToLower(trimmed)]; ok {
		return day, nil
	}
	if parsed, err := ParseString(text); err == nil {
		return WeekdayIndex(parsed.Weekday()), nil
	}
	return 0, &InvalidDayOfWeekError{Value: text}
}

// DaySet is a set of resolved day indexes.
type DaySet map[int]struct{}

// NewDaySet builds a set from already resolved indexes.
func NewDaySet(days ...int) DaySet {
	set := make(DaySet, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// ResolveDaysOfWeek resolves every token and deduplicates the result. The
// first token that fails aborts the whole call.
func ResolveDaysOfWeek(tokens ...DayToken) (DaySet, error) {
	set := make(DaySet, len(tokens))
	for _, token := range tokens {
		day, err := ResolveDayOfWeek(token)
		if err != nil {
			return nil, err
		}
		set[day] = struct{}{}
	}
	return set, nil
}

// Contains reports whether day is in the set.
func (s DaySet) Contains(day int) bool {
	_, ok := s[day]
	return ok
}

// ContainsWeekday reports whether wd is in the set.
func (s DaySet) ContainsWeekday(wd time.Weekday) bool {
	return s.Contains(WeekdayIndex(wd))
}

// Sorted returns the members in ascending order.
func (s DaySet) Sorted() []int {
	days := make([]int, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// Weekdays returns the members as time.Weekday values, Monday first.
func (s DaySet) Weekdays() []time.Weekday {
	sorted := s.Sorted()
	out := make([]time.Weekday, 0, len(sorted))
	for _, d := range sorted {
		out = append(out, IndexWeekday(d))
	}
	return out
}

func (s DaySet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}
