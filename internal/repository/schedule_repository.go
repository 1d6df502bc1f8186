package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/simoamogit/student-tracker/internal/model"
)

const scheduleColumns = `id, owner_id, day, hour, subject, teacher, classroom, school_year, created_at, updated_at`

// ScheduleRepository handles weekly timetable data access.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository creates a new ScheduleRepository.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

// Upsert inserts a timetable slot, or replaces the subject, teacher and
// classroom of the existing slot with the same (owner, day, hour,
// school_year) key. The operation is a single atomic statement, so two
// concurrent inserts can never produce duplicate slots. The returned bool
// reports whether a new row was inserted.
func (r *ScheduleRepository) Upsert(ctx context.Context, item *model.ScheduleItem) (bool, error) {
	item.ID = uuid.New()
	var inserted bool
	// xmax = 0 only for freshly inserted rows, which distinguishes the
	// insert path from the conflict-update path.
	err := r.pool.QueryRow(ctx,
		`INSERT INTO schedules (id, owner_id, day, hour, subject, teacher, classroom, school_year)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (owner_id, day, hour, school_year) DO UPDATE
		 SET subject = EXCLUDED.subject,
		     teacher = EXCLUDED.teacher,
		     classroom = EXCLUDED.classroom,
		     updated_at = NOW()
		 RETURNING id, created_at, updated_at, (xmax = 0)`,
		item.ID, item.OwnerID, item.Day, item.Hour, item.Subject, item.Teacher, item.Classroom, item.SchoolYear,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt, &inserted)
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// List retrieves an owner's timetable slots ordered by (day, hour).
func (r *ScheduleRepository) List(ctx context.Context, ownerID uuid.UUID, filter model.ScheduleFilter) ([]model.ScheduleItem, error) {
	query := `SELECT ` + scheduleColumns + ` FROM schedules WHERE owner_id = $1`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.SchoolYear != "" {
		query += ` AND school_year = $` + strconv.Itoa(argIdx)
		args = append(args, filter.SchoolYear)
		argIdx++
	}
	if filter.Day != nil {
		query += ` AND day = $` + strconv.Itoa(argIdx)
		args = append(args, *filter.Day)
		argIdx++
	}

	query += ` ORDER BY day ASC, hour ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []model.ScheduleItem{}
	for rows.Next() {
		var s model.ScheduleItem
		if err := rows.Scan(&s.ID, &s.OwnerID, &s.Day, &s.Hour, &s.Subject, &s.Teacher, &s.Classroom, &s.SchoolYear, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

// GetByID retrieves one of the owner's timetable slots.
func (r *ScheduleRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.ScheduleItem, error) {
	s := &model.ScheduleItem{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = $1 AND owner_id = $2`, id, ownerID,
	).Scan(&s.ID, &s.OwnerID, &s.Day, &s.Hour, &s.Subject, &s.Teacher, &s.Classroom, &s.SchoolYear, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// Update applies a partial update to one of the owner's slots. Moving the
// slot onto an occupied (day, hour, school_year) key fails with ErrSlotTaken.
func (r *ScheduleRepository) Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateScheduleItemRequest) error {
	query := `UPDATE schedules SET updated_at = NOW()`
	var args []interface{}
	argIdx := 1

	set := func(col string, val interface{}) {
		query += `, ` + col + ` = $` + strconv.Itoa(argIdx)
		args = append(args, val)
		argIdx++
	}

	if req.Day != nil {
		set("day", *req.Day)
	}
	if req.Hour != nil {
		set("hour", *req.Hour)
	}
	if req.Subject != nil {
		set("subject", *req.Subject)
	}
	if req.Teacher != nil {
		set("teacher", *req.Teacher)
	}
	if req.Classroom != nil {
		set("classroom", *req.Classroom)
	}
	if req.SchoolYear != nil {
		set("school_year", *req.SchoolYear)
	}

	query += ` WHERE id = $` + strconv.Itoa(argIdx) + ` AND owner_id = $` + strconv.Itoa(argIdx+1)
	args = append(args, id, ownerID)

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrSlotTaken
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one of the owner's timetable slots.
func (r *ScheduleRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
