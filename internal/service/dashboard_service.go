package service

import (
	"context"

	"github.com/simoamogit/student-tracker/internal/model"
)

// recentGradesLimit caps the recent-grades block on the dashboard.
const recentGradesLimit = 5

// DashboardService aggregates the home-screen payload: today's schedule,
// upcoming events, recent grades and overall statistics in one call.
type DashboardService struct {
	grades   *GradeService
	schedule *ScheduleService
	events   *EventService
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(grades *GradeService, schedule *ScheduleService, events *EventService) *DashboardService {
	return &DashboardService{grades: grades, schedule: schedule, events: events}
}

// Overview builds the dashboard for the owner's current school year.
func (s *DashboardService) Overview(ctx context.Context, owner *model.User) (*model.Dashboard, error) {
	year := defaultSchoolYear("", owner)

	today, err := s.schedule.Today(ctx, owner, year)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.events.Upcoming(ctx, owner, year, DefaultUpcomingDays)
	if err != nil {
		return nil, err
	}

	recent, err := s.grades.Recent(ctx, owner.ID, year, recentGradesLimit)
	if err != nil {
		return nil, err
	}

	stats, err := s.grades.Stats(ctx, owner, year, nil)
	if err != nil {
		return nil, err
	}

	return &model.Dashboard{
		TodaySchedule:  today,
		UpcomingEvents: upcoming,
		RecentGrades:   recent,
		Stats:          stats,
	}, nil
}
