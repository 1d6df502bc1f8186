package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/simoamogit/student-tracker/internal/model"
)

func grade(subject string, value, weight float64, date time.Time) model.Grade {
	return model.Grade{
		ID:        uuid.New(),
		Subject:   subject,
		Value:     value,
		Weight:    weight,
		Date:      date,
		GradeType: model.GradeWritten,
	}
}

func TestComputeGradeStats(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("WeightedAndUnweightedAverages", func(t *testing.T) {
		grades := []model.Grade{
			grade("math", 8, 1, now.AddDate(0, 0, -10)),
			grade("math", 6, 2, now.AddDate(0, 0, -1)),
		}

		stats := ComputeGradeStats(grades)

		math, ok := stats.Subjects["math"]
		if !ok {
			t.Fatal("expected math subject in stats")
		}
		if math.Average != 7.0 {
			t.Errorf("average = %v, want 7.0", math.Average)
		}
		// (8*1 + 6*2) / 3 = 6.666... rounds to 6.67
		if math.WeightedAverage != 6.67 {
			t.Errorf("weighted average = %v, want 6.67", math.WeightedAverage)
		}
		if math.Count != 2 {
			t.Errorf("count = %d, want 2", math.Count)
		}
		if stats.Overall.Average != 7.0 {
			t.Errorf("overall average = %v, want 7.0", stats.Overall.Average)
		}
		if stats.Overall.Count != 2 {
			t.Errorf("overall count = %d, want 2", stats.Overall.Count)
		}
	})

	t.Run("ZeroGrades", func(t *testing.T) {
		stats := ComputeGradeStats(nil)

		if stats.Overall.Average != 0 {
			t.Errorf("overall average = %v, want 0", stats.Overall.Average)
		}
		if stats.Overall.Count != 0 {
			t.Errorf("overall count = %d, want 0", stats.Overall.Count)
		}
		if len(stats.Subjects) != 0 {
			t.Errorf("subjects = %v, want empty map", stats.Subjects)
		}
	})

	t.Run("OverallIsFlatMeanAcrossSubjects", func(t *testing.T) {
		grades := []model.Grade{
			grade("math", 10, 1, now),
			grade("math", 10, 1, now),
			grade("history", 4, 1, now),
		}

		stats := ComputeGradeStats(grades)

		// Flat mean (10+10+4)/3 = 8, not the mean of subject averages (7).
		if stats.Overall.Average != 8.0 {
			t.Errorf("overall average = %v, want 8.0", stats.Overall.Average)
		}
	})

	t.Run("SubjectGradesNewestFirst", func(t *testing.T) {
		oldest := grade("math", 5, 1, now.AddDate(0, 0, -30))
		middle := grade("math", 6, 1, now.AddDate(0, 0, -15))
		newest := grade("math", 7, 1, now)

		stats := ComputeGradeStats([]model.Grade{oldest, newest, middle})

		got := stats.Subjects["math"].Grades
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].ID != newest.ID || got[1].ID != middle.ID || got[2].ID != oldest.ID {
			t.Error("grades not sorted by date descending")
		}
	})

	t.Run("Rounding", func(t *testing.T) {
		grades := []model.Grade{
			grade("science", 7, 1, now),
			grade("science", 7, 1, now),
			grade("science", 8, 1, now),
		}

		stats := ComputeGradeStats(grades)

		if got := stats.Subjects["science"].Average; got != 7.33 {
			t.Errorf("average = %v, want 7.33", got)
		}
		if got := stats.Overall.Average; got != 7.33 {
			t.Errorf("overall average = %v, want 7.33", got)
		}
	})
}
