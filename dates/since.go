package dates

import "time"

const secondsPerDay = 24 * 60 * 60

type inputKind uint8

const (
	inputUnset inputKind = iota
	inputTime
	inputText
)

// TimeInput holds either a timestamp or text to be parsed into one.
type TimeInput struct {
	kind inputKind
	at   time.Time
	text string
}

// FromTime wraps a timestamp.
func FromTime(t time.Time) TimeInput {
	return TimeInput{kind: inputTime, at: t}
}

// FromText wraps text that is parsed with ParseString on use.
func FromText(s string) TimeInput {
	return TimeInput{kind: inputText, text: s}
}

// Time resolves the input to a timestamp.
func (in TimeInput) Time() (time.Time, error) {
	if in.kind == inputTime {
		return in.at, nil
	}
	return ParseString(in.text)
}

// DaysSince counts whole days elapsed between input and the clock's now,
// rounding toward negative infinity: 23h gives 0, one hour ahead gives -1.
func DaysSince(clock Clock, input TimeInput) (int, error) {
	then, err := input.Time()
	if err != nil {
		return 0, err
	}
	return floorDays(Now(clock, Offset{}), then), nil
}

// floorDays works on unix seconds; time.Sub saturates past ~292 years.
func floorDays(now, then time.Time) int {
	secs := now.Unix() - then.Unix()
	if now.Nanosecond() < then.Nanosecond() {
		secs--
	}
	days := secs / secondsPerDay
	if secs%secondsPerDay != 0 && secs < 0 {
		days--
	}
	return int(days)
}

// IsTodayNotInDaysOfWeek reports whether the clock's current UTC weekday is
// absent from the resolved tokens.
func IsTodayNotInDaysOfWeek(clock Clock, tokens ...DayToken) (bool, error) {
	days, err := ResolveDaysOfWeek(tokens...)
	if err != nil {
		return false, err
	}
	return !days.ContainsWeekday(Now(clock, Offset{}).Weekday()), nil
}
