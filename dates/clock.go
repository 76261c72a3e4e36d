package dates

import "time"

// Clock supplies the current instant. Time-dependent helpers take one so
// callers can pin "now" in tests.
type Clock func() time.Time

// SystemClock reads the process wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func (c Clock) now() time.Time {
	if c == nil {
		return SystemClock()
	}
	return c()
}

// Offset is a signed shift described by named fields, all of which are summed.
type Offset struct {
	Weeks        int
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Milliseconds int
	Microseconds int
}

// Duration converts the offset into a time.Duration.
func (o Offset) Duration() time.Duration {
	return time.Duration(o.Weeks)*7*24*time.Hour +
		time.Duration(o.Days)*24*time.Hour +
		time.Duration(o.Hours)*time.Hour +
		time.Duration(o.Minutes)*time.Minute +
		time.Duration(o.Seconds)*time.Second +
		time.Duration(o.Milliseconds)*time.Millisecond +
		time.Duration(o.Microseconds)*time.Microsecond
}

// IsZero reports whether no field is set.
func (o Offset) IsZero() bool {
	return o == Offset{}
}

// Now returns the clock's current instant in UTC shifted by offset.
func Now(clock Clock, offset Offset) time.Time {
	return NowIn(clock, time.UTC, offset)
}

// NowIn is Now for an arbitrary location. A nil location means UTC.
func NowIn(clock Clock, loc *time.Location, offset Offset) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	current := clock.now().In(loc)
	if !offset.IsZero() {
		current = current.Add(offset.Duration())
	}
	return current
}

// NowAsString is Now rendered in canonical form.
func NowAsString(clock Clock, offset Offset) string {
	return ToCanonicalString(Now(clock, offset))
}
