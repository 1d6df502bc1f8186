package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
)

// ErrEndBeforeStart is returned when an event update would leave the end
// date earlier than the start date.
var ErrEndBeforeStart = errors.New("event end date before start date")

// DefaultUpcomingDays is the horizon for upcoming-event queries when the
// caller does not specify one.
const DefaultUpcomingDays = 7

// EventService handles calendar event business logic.
type EventService struct {
	eventRepo *repository.EventRepository
	// now is swappable for tests.
	now func() time.Time
}

// NewEventService creates a new EventService.
func NewEventService(eventRepo *repository.EventRepository) *EventService {
	return &EventService{eventRepo: eventRepo, now: time.Now}
}

// Create adds an event. end_date defaults to start_date and school_year to
// the owner's current school-year context.
func (s *EventService) Create(ctx context.Context, owner *model.User, req model.CreateEventRequest) (*model.Event, error) {
	endDate := req.StartDate
	if req.EndDate != nil {
		endDate = *req.EndDate
	}

	schoolYear := req.SchoolYear
	if schoolYear == nil {
		year := defaultSchoolYear("", owner)
		schoolYear = &year
	}

	event := &model.Event{
		OwnerID:     owner.ID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     endDate,
		EventType:   req.EventType,
		Subject:     req.Subject,
		SchoolYear:  schoolYear,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// List retrieves the owner's events matching the filter, soonest first.
func (s *EventService) List(ctx context.Context, owner *model.User, filter model.EventFilter) ([]model.Event, error) {
	filter.SchoolYear = defaultSchoolYear(filter.SchoolYear, owner)
	return s.eventRepo.List(ctx, owner.ID, filter)
}

// Upcoming retrieves the owner's events starting within the next `days`
// days (inclusive bounds, relative to now at call time).
func (s *EventService) Upcoming(ctx context.Context, owner *model.User, schoolYear string, days int) ([]model.Event, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	horizon := time.Duration(days) * 24 * time.Hour
	return s.eventRepo.Upcoming(ctx, owner.ID, defaultSchoolYear(schoolYear, owner), s.now(), horizon)
}

// Get retrieves one of the owner's events.
func (s *EventService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Event, error) {
	return s.eventRepo.GetByID(ctx, ownerID, id)
}

// Update applies a partial update to one of the owner's events. Date
// changes are validated against the stored record: an update that would
// leave end_date earlier than start_date fails with ErrEndBeforeStart.
func (s *EventService) Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateEventRequest) (*model.Event, error) {
	if req.StartDate != nil || req.EndDate != nil {
		current, err := s.eventRepo.GetByID(ctx, ownerID, id)
		if err != nil {
			return nil, err
		}
		start, end := eventDatesAfterUpdate(current, req)
		if end.Before(start) {
			return nil, ErrEndBeforeStart
		}
	}

	if err := s.eventRepo.Update(ctx, ownerID, id, req); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, ownerID, id)
}

// eventDatesAfterUpdate resolves the (start, end) pair the update would
// leave stored, taking absent fields from the current record.
func eventDatesAfterUpdate(current *model.Event, req model.UpdateEventRequest) (time.Time, time.Time) {
	start, end := current.StartDate, current.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
	}
	if req.EndDate != nil {
		end = *req.EndDate
	}
	return start, end
}

// Delete removes one of the owner's events.
func (s *EventService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.eventRepo.Delete(ctx, ownerID, id)
}
