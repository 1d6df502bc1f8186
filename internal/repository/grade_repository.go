package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/simoamogit/student-tracker/internal/model"
)

const gradeColumns = `id, owner_id, subject, value, date, grade_type, weight, notes, school_year, semester, created_at, updated_at`

// GradeRepository handles grade data access. Every query is scoped to an
// owner so one user can never see or touch another user's grades.
type GradeRepository struct {
	pool *pgxpool.Pool
}

// NewGradeRepository creates a new GradeRepository.
func NewGradeRepository(pool *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{pool: pool}
}

// Create inserts a new grade.
func (r *GradeRepository) Create(ctx context.Context, g *model.Grade) error {
	g.ID = uuid.New()
	return r.pool.QueryRow(ctx,
		`INSERT INTO grades (id, owner_id, subject, value, date, grade_type, weight, notes, school_year, semester)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at, updated_at`,
		g.ID, g.OwnerID, g.Subject, g.Value, g.Date, g.GradeType, g.Weight, g.Notes, g.SchoolYear, g.Semester,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
}

// List retrieves an owner's grades matching the filter, newest first.
// Returns an empty slice, never an error, when nothing matches.
func (r *GradeRepository) List(ctx context.Context, ownerID uuid.UUID, filter model.GradeFilter) ([]model.Grade, error) {
	query := `SELECT ` + gradeColumns + ` FROM grades WHERE owner_id = $1`
	args := []interface{}{ownerID}
	argIdx := 2

	if filter.SchoolYear != "" {
		query += ` AND school_year = $` + strconv.Itoa(argIdx)
		args = append(args, filter.SchoolYear)
		argIdx++
	}
	if filter.Subject != "" {
		query += ` AND subject = $` + strconv.Itoa(argIdx)
		args = append(args, filter.Subject)
		argIdx++
	}
	if filter.GradeType != "" {
		query += ` AND grade_type = $` + strconv.Itoa(argIdx)
		args = append(args, filter.GradeType)
		argIdx++
	}
	if filter.Semester != nil {
		query += ` AND semester = $` + strconv.Itoa(argIdx)
		args = append(args, *filter.Semester)
		argIdx++
	}
	if filter.DateFrom != nil {
		query += ` AND date >= $` + strconv.Itoa(argIdx)
		args = append(args, *filter.DateFrom)
		argIdx++
	}
	if filter.DateTo != nil {
		query += ` AND date <= $` + strconv.Itoa(argIdx)
		args = append(args, *filter.DateTo)
		argIdx++
	}

	query += ` ORDER BY date DESC`

	return r.queryGrades(ctx, query, args...)
}

// Recent retrieves the owner's most recent grades for a school year.
func (r *GradeRepository) Recent(ctx context.Context, ownerID uuid.UUID, schoolYear string, limit int) ([]model.Grade, error) {
	return r.queryGrades(ctx,
		`SELECT `+gradeColumns+` FROM grades
		 WHERE owner_id = $1 AND school_year = $2
		 ORDER BY date DESC LIMIT $3`,
		ownerID, schoolYear, limit)
}

// GetByID retrieves one of the owner's grades.
func (r *GradeRepository) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*model.Grade, error) {
	g := &model.Grade{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+gradeColumns+` FROM grades WHERE id = $1 AND owner_id = $2`, id, ownerID,
	).Scan(&g.ID, &g.OwnerID, &g.Subject, &g.Value, &g.Date, &g.GradeType, &g.Weight, &g.Notes, &g.SchoolYear, &g.Semester, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

// Update applies a partial update to one of the owner's grades. Absent
// fields keep their stored values; updated_at is always stamped.
func (r *GradeRepository) Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateGradeRequest) error {
	query := `UPDATE grades SET updated_at = NOW()`
	var args []interface{}
	argIdx := 1

	set := func(col string, val interface{}) {
		query += `, ` + col + ` = $` + strconv.Itoa(argIdx)
		args = append(args, val)
		argIdx++
	}

	if req.Subject != nil {
		set("subject", *req.Subject)
	}
	if req.Value != nil {
		set("value", *req.Value)
	}
	if req.Date != nil {
		set("date", *req.Date)
	}
	if req.GradeType != nil {
		set("grade_type", *req.GradeType)
	}
	if req.Weight != nil {
		set("weight", *req.Weight)
	}
	if req.Notes != nil {
		set("notes", *req.Notes)
	}
	if req.SchoolYear != nil {
		set("school_year", *req.SchoolYear)
	}
	if req.Semester != nil {
		set("semester", *req.Semester)
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

// Delete removes one of the owner's grades.
func (r *GradeRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM grades WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GradeRepository) queryGrades(ctx context.Context, query string, args ...interface{}) ([]model.Grade, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := []model.Grade{}
	for rows.Next() {
		var g model.Grade
		if err := rows.Scan(&g.ID, &g.OwnerID, &g.Subject, &g.Value, &g.Date, &g.GradeType, &g.Weight, &g.Notes, &g.SchoolYear, &g.Semester, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		grades = append(grades, g)
	}
	return grades, rows.Err()
}
