package timeutil

import (
	"testing"
	"time"
)

func makeTime(year int, month time.Month, day, hour, min, sec int) time.Time {
	return time.Date(year, month, day, hour, min, sec, 0, time.Local)
}

func TestStartOfDay(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Time
		expected time.Time
	}{
		{
			name:     "middle of day",
			input:    makeTime(2024, time.January, 15, 14, 30, 45),
			expected: makeTime(2024, time.January, 15, 0, 0, 0),
		},
		{
			name:     "already midnight",
			input:    makeTime(2024, time.January, 15, 0, 0, 0),
			expected: makeTime(2024, time.January, 15, 0, 0, 0),
		},
		{
			name:     "end of day",
			input:    time.Date(2024, time.January, 15, 23, 59, 59, 999999999, time.Local),
			expected: makeTime(2024, time.January, 15, 0, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StartOfDay(tt.input)
			if !result.Equal(tt.expected) {
				t.Errorf("StartOfDay(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestEndOfDay(t *testing.T) {
	input := makeTime(2024, time.February, 29, 9, 0, 0)
	expected := time.Date(2024, time.February, 29, 23, 59, 59, 999999999, time.Local)

	if result := EndOfDay(input); !result.Equal(expected) {
		t.Errorf("EndOfDay(%v) = %v, expected %v", input, result, expected)
	}
}

func TestTimezonePreservation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	input := time.Date(2024, time.March, 10, 18, 0, 0, 0, loc)

	if StartOfDay(input).Location() != loc {
		t.Errorf("StartOfDay changed location to %v", StartOfDay(input).Location())
	}
	if EndOfDay(input).Location() != loc {
		t.Errorf("EndOfDay changed location to %v", EndOfDay(input).Location())
	}
}

func TestTodayAndYesterday(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	now := time.Now().In(loc)

	today := Today(loc)
	if today.Year() != now.Year() || today.YearDay() != now.YearDay() {
		// the clock may have crossed midnight between the two calls
		if now.Hour() != 0 {
			t.Errorf("Today() = %v, expected date of %v", today, now)
		}
	}
	if today.Hour() != 0 || today.Minute() != 0 || today.Location() != loc {
		t.Errorf("Today() = %v, expected midnight in %v", today, loc)
	}

	yesterday := Yesterday(loc)
	if !yesterday.AddDate(0, 0, 1).Equal(Today(loc)) && time.Now().In(loc).Hour() != 0 {
		t.Errorf("Yesterday() = %v, expected one day before %v", yesterday, today)
	}
}
