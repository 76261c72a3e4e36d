package dates

import (
	"testing"
	"time"
)

var sinceReference = MustParse("2024-09-05T00:00:00Z")

func TestDaysSince(t *testing.T) {
	clock := FixedClock(sinceReference)
	cases := []struct {
		name  string
		input TimeInput
		want  int
	}{
		{"0-days-str", FromText("2024-09-05T00:00:00Z"), 0},
		{"0-days-datetime", FromTime(time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)), 0},
		{"6-days", FromTime(MustParse("2024-08-30")), 6},
		{"23-hours", FromTime(time.Date(2024, 9, 4, 1, 0, 0, 0, time.UTC)), 0},
		{"1-hour-ahead", FromTime(time.Date(2024, 9, 5, 1, 0, 0, 0, time.UTC)), -1},
		{"2-days-ahead", FromText("2024-09-07"), -2},
		{"offset-text", FromText("2024-09-04T05:00:00+05:00"), 1},
		{"far-past", FromTime(time.Date(1500, 9, 5, 0, 0, 0, 0, time.UTC)), 191388},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DaysSince(clock, tc.input)
			if err != nil {
				t.Fatalf("days since: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestDaysSinceSubSecond(t *testing.T) {
	now := time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)
	then := now.Add(-24*time.Hour + 500*time.Millisecond)
	got, err := DaysSince(FixedClock(now), FromTime(then))
	if err != nil {
		t.Fatalf("days since: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for just under a day, got %d", got)
	}
}

func TestDaysSinceInvalidText(t *testing.T) {
	_, err := DaysSince(SystemClock, FromText("invalid"))
	if _, ok := AsParseError(err); !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestIsTodayNotInDaysOfWeek(t *testing.T) {
	thursday := time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 9, 2, 0, 0, 0, 0, time.UTC)

	shapes := map[string][]DayToken{
		"list":  DayTexts("Monday"),
		"set":   DayTexts("Monday", "Monday"),
		"tuple": {DayText("Monday")},
	}
	for name, tokens := range shapes {
		got, err := IsTodayNotInDaysOfWeek(FixedClock(thursday), tokens...)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !got {
			t.Fatalf("%s: expected Thursday to be outside {Monday}", name)
		}

		got, err = IsTodayNotInDaysOfWeek(FixedClock(monday), tokens...)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got {
			t.Fatalf("%s: expected Monday to be inside {Monday}", name)
		}
	}
}

func TestIsTodayNotInDaysOfWeekUsesUTC(t *testing.T) {
	// Monday 01:00 at +03:00 is still Sunday in UTC.
	clock := FixedClock(time.Date(2024, 9, 2, 1, 0, 0, 0, time.FixedZone("", 3*60*60)))
	got, err := IsTodayNotInDaysOfWeek(clock, DayText("Sunday"))
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if got {
		t.Fatalf("expected UTC Sunday to be in {Sunday}")
	}
}

func TestIsTodayNotInDaysOfWeekInvalid(t *testing.T) {
	_, err := IsTodayNotInDaysOfWeek(SystemClock, DayText("Invalid"))
	if _, ok := AsInvalidDayOfWeekError(err); !ok {
		t.Fatalf("expected InvalidDayOfWeekError, got %v", err)
	}
}
