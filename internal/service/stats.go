package service

import (
	"math"
	"sort"

	"github.com/simoamogit/student-tracker/internal/model"
)

// ComputeGradeStats aggregates grades into per-subject and overall
// statistics. It is a pure function: deterministic, no storage access.
//
// Per subject it reports the unweighted average (sum/count) and the
// weighted average (sum of value×weight over sum of weight), both rounded
// to two decimals, plus the subject's grades newest first. The overall
// average is the flat mean across every grade regardless of subject. Zero
// grades yield an overall average of 0 and an empty subject map.
func ComputeGradeStats(grades []model.Grade) *model.GradeStats {
	type accum struct {
		sum         float64
		weightedSum float64
		totalWeight float64
		grades      []model.GradeSummary
	}

	subjects := make(map[string]*accum)
	var totalSum float64

	for _, g := range grades {
		acc := subjects[g.Subject]
		if acc == nil {
			acc = &accum{}
			subjects[g.Subject] = acc
		}
		acc.sum += g.Value
		acc.weightedSum += g.Value * g.Weight
		acc.totalWeight += g.Weight
		acc.grades = append(acc.grades, model.GradeSummary{
			ID:     g.ID,
			Value:  g.Value,
			Date:   g.Date,
			Type:   g.GradeType,
			Weight: g.Weight,
		})
		totalSum += g.Value
	}

	stats := &model.GradeStats{
		Subjects: make(map[string]model.SubjectStats, len(subjects)),
		Overall:  model.OverallStats{Count: len(grades)},
	}
	if len(grades) > 0 {
		stats.Overall.Average = round2(totalSum / float64(len(grades)))
	}

	for subject, acc := range subjects {
		sort.SliceStable(acc.grades, func(i, j int) bool {
			return acc.grades[i].Date.After(acc.grades[j].Date)
		})

		ss := model.SubjectStats{
			Average: round2(acc.sum / float64(len(acc.grades))),
			Count:   len(acc.grades),
			Grades:  acc.grades,
		}
		if acc.totalWeight > 0 {
			ss.WeightedAverage = round2(acc.weightedSum / acc.totalWeight)
		}
		stats.Subjects[subject] = ss
	}

	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
