package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/simoamogit/student-tracker/internal/model"
)

const eventColumns = `id, owner_id, title, description, start_date, end_date, event_type, subject, school_year, created_at, updated_at`

// EventRepository handles calendar event data access.
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// Create inserts a new event.
func (r *EventRepository) Create(ctx context.Context, e *model.Event) error {
	e.ID = uuid.New()
	return r.pool.QueryRow(ctx,
		`INSERT INTO events (id, owner_id, title, description, start_date, end_date, event_type, subject, school_year)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING created_at, updated_at`,
		e.ID, e.OwnerID, e.Title, e.Description, e.StartDate, e.EndDate, e.EventType, e.Subject, e.SchoolYear,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

// List retrieves an owner's events matching the filter, soonest first.
func (r *EventRepository) List(ctx context.Context, ownerID uuid.UUID, filter model.EventFilter) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE owner_id = $1`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.SchoolYear != "" {
		query += ` AND school_year = $` + strconv.Itoa(argIdx)
		args = append(args, filter.SchoolYear)
		argIdx++
	}
	if filter.EventType != "" {
		query += ` AND event_type = $` + strconv.Itoa(argIdx)
		args = append(args, filter.EventType)
		argIdx++
	}
	if filter.Subject != "" {
		query += ` AND subject = $` + strconv.Itoa(argIdx)
		args = append(args, filter.Subject)
		argIdx++
	}
	if filter.DateFrom != nil {
		query += ` AND start_date >= $` + strconv.Itoa(argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		query += ` AND start_date <= $` + strconv.Itoa(argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	query += ` ORDER BY start_date ASC`

	return r.queryEvents(ctx, query, args...)
}

// Upcoming retrieves events starting within [now, now+horizon], soonest
// first. The school year filter is optional.
func (r *EventRepository) Upcoming(ctx context.Context, ownerID uuid.UUID, schoolYear string, now time.Time, horizon time.Duration) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
	          WHERE owner_id = $1 AND start_date >= $2 AND start_date <= $3`
	args := []interface{}{ownerID, now, now.Add(horizon)}

	if schoolYear != "" {
		query += ` AND school_year = $4`
		args = append(args, schoolYear)
	}

	query += ` ORDER BY start_date ASC`

	return r.queryEvents(ctx, query, args...)
}

// GetByID retrieves one of the owner's events.
func (r *EventRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Event, error) {
	e := &model.Event{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1 AND owner_id = $2`, id, ownerID,
	).Scan(&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.EventType, &e.Subject, &e.SchoolYear, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Update applies a partial update to one of the owner's events.
func (r *EventRepository) Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateEventRequest) error {
	query := `UPDATE events SET updated_at = NOW()`
	var args []interface{}
	argIdx := 1

	set := func(col string, val interface{}) {
		query += `, ` + col + ` = $` + strconv.Itoa(argIdx)
		args = append(args, val)
		argIdx++
	}

	if req.Title != nil {
		set("title", *req.Title)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.StartDate != nil {
		set("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		set("end_date", *req.EndDate)
	}
	if req.EventType != nil {
		set("event_type", *req.EventType)
	}
	if req.Subject != nil {
		set("subject", *req.Subject)
	}
	if req.SchoolYear != nil {
		set("school_year", *req.SchoolYear)
	}

	query += ` WHERE id = $` + strconv.Itoa(argIdx) + ` AND owner_id = $` + strconv.Itoa(argIdx+1)
	args = append(args, id, ownerID)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one of the owner's events.
func (r *EventRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Title, &e.Description, &e.StartDate, &e.EndDate, &e.EventType, &e.Subject, &e.SchoolYear, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
