// Package schoolyear holds the calendar rules of the Italian school year:
// the year runs from September to August and splits into two semesters
// (September–January and February–June).
package schoolyear

import (
	"fmt"
	"time"
)

// Current returns the school year containing now, formatted "YYYY-YYYY".
// September through December belong to the year starting that September.
func Current(now time.Time) string {
	if now.Month() >= time.September {
		return fmt.Sprintf("%d-%d", now.Year(), now.Year()+1)
	}
	return fmt.Sprintf("%d-%d", now.Year()-1, now.Year())
}

// SemesterOf returns the semester (1 or 2) the date falls in within its
// school year, or 0 for the summer break (July–August).
func SemesterOf(date time.Time) int {
	switch m := date.Month(); {
	case m >= time.September || m == time.January:
		return 1
	case m >= time.February && m <= time.June:
		return 2
	default:
		return 0
	}
}

// Weekday returns the Monday-based weekday index (0 = Monday, 6 = Sunday)
// used by schedule items.
func Weekday(now time.Time) int {
	return (int(now.Weekday()) + 6) % 7
}
