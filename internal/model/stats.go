package model

import (
	"time"

	"github.com/google/uuid"
)

// GradeStats is the aggregate view of a user's grades for one school year
// (optionally narrowed to a semester).
type GradeStats struct {
	Subjects map[string]SubjectStats `json:"subjects"`
	Overall  OverallStats            `json:"overall"`
}

// SubjectStats summarizes one subject's grades.
type SubjectStats struct {
	Average         float64        `json:"average"`
	WeightedAverage float64        `json:"weighted_average"`
	Count           int            `json:"count"`
	Grades          []GradeSummary `json:"grades"`
}

// GradeSummary is the per-grade detail included in statistics, newest first.
type GradeSummary struct {
	ID     uuid.UUID `json:"id"`
	Value  float64   `json:"value"`
	Date   time.Time `json:"date"`
	Type   GradeType `json:"type"`
	Weight float64   `json:"weight"`
}

// OverallStats is the flat mean across every matching grade regardless of
// subject, plus the total count.
type OverallStats struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Dashboard bundles the data the home screen needs in one call.
type Dashboard struct {
	TodaySchedule  []ScheduleItem `json:"today_schedule"`
	UpcomingEvents []Event        `json:"upcoming_events"`
	RecentGrades   []Grade        `json:"recent_grades"`
	Stats          *GradeStats    `json:"stats"`
}
