package schoolyear

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestCurrent(t *testing.T) {
	cases := []struct {
		now  time.Time
		want string
	}{
		{date(2025, time.September, 1), "2025-2026"},
		{date(2025, time.December, 31), "2025-2026"},
		{date(2026, time.January, 1), "2025-2026"},
		{date(2026, time.June, 10), "2025-2026"},
		{date(2026, time.August, 31), "2025-2026"},
		{date(2024, time.October, 15), "2024-2025"},
	}
	for _, tc := range cases {
		if got := Current(tc.now); got != tc.want {
			t.Errorf("Current(%s) = %q, want %q", tc.now.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestSemesterOf(t *testing.T) {
	cases := []struct {
		d    time.Time
		want int
	}{
		{date(2025, time.September, 10), 1},
		{date(2025, time.November, 3), 1},
		{date(2026, time.January, 20), 1},
		{date(2026, time.February, 1), 2},
		{date(2026, time.June, 30), 2},
		{date(2026, time.July, 15), 0},
		{date(2026, time.August, 1), 0},
	}
	for _, tc := range cases {
		if got := SemesterOf(tc.d); got != tc.want {
			t.Errorf("SemesterOf(%s) = %d, want %d", tc.d.Format("2006-01-02"), got, tc.want)
		}
	}
}

func TestWeekday(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := date(2026, time.January, 5)
	for i := 0; i < 7; i++ {
		if got := Weekday(monday.AddDate(0, 0, i)); got != i {
			t.Errorf("Weekday(monday+%d) = %d, want %d", i, got, i)
		}
	}
}
