package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
	"github.com/simoamogit/student-tracker/internal/schoolyear"
)

// ScheduleService handles weekly timetable business logic.
type ScheduleService struct {
	scheduleRepo *repository.ScheduleRepository
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(scheduleRepo *repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{scheduleRepo: scheduleRepo}
}

// Upsert adds a timetable slot or replaces the existing slot with the same
// (day, hour, school_year) key. The returned bool reports whether a new
// slot was created.
func (s *ScheduleService) Upsert(ctx context.Context, owner *model.User, req model.CreateScheduleItemRequest) (*model.ScheduleItem, bool, error) {
	item := &model.ScheduleItem{
		OwnerID:    owner.ID,
		Day:        *req.Day,
		Hour:       req.Hour,
		Subject:    req.Subject,
		Teacher:    req.Teacher,
		Classroom:  req.Classroom,
		SchoolYear: defaultSchoolYear(req.SchoolYear, owner),
	}
	created, err := s.scheduleRepo.Upsert(ctx, item)
	if err != nil {
		return nil, false, err
	}
	return item, created, nil
}

// List retrieves the owner's timetable ordered by (day, hour).
func (s *ScheduleService) List(ctx context.Context, owner *model.User, schoolYear string, day *int) ([]model.ScheduleItem, error) {
	return s.scheduleRepo.List(ctx, owner.ID, model.ScheduleFilter{
		SchoolYear: defaultSchoolYear(schoolYear, owner),
		Day:        day,
	})
}

// Today retrieves the owner's slots for the current weekday, ordered by hour.
func (s *ScheduleService) Today(ctx context.Context, owner *model.User, schoolYear string) ([]model.ScheduleItem, error) {
	today := schoolyear.Weekday(time.Now())
	return s.List(ctx, owner, schoolYear, &today)
}

// Get retrieves one of the owner's timetable slots.
func (s *ScheduleService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.ScheduleItem, error) {
	return s.scheduleRepo.GetByID(ctx, ownerID, id)
}

// Update applies a partial update to one of the owner's slots.
func (s *ScheduleService) Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateScheduleItemRequest) (*model.ScheduleItem, error) {
	if err := s.scheduleRepo.Update(ctx, ownerID, id, req); err != nil {
		return nil, err
	}
	return s.scheduleRepo.GetByID(ctx, ownerID, id)
}

// Delete removes one of the owner's timetable slots.
func (s *ScheduleService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.scheduleRepo.Delete(ctx, ownerID, id)
}
