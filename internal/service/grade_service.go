package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/simoamogit/student-tracker/internal/config"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
	"github.com/simoamogit/student-tracker/internal/schoolyear"
)

// GradeService handles grade business logic and the statistics cache.
//
// Computed statistics are cached in Redis under a key that includes a
// per-user version counter. Every grade mutation bumps the counter, so
// stale entries are simply never read again and expire with their TTL.
type GradeService struct {
	gradeRepo *repository.GradeRepository
	rdb       *redis.Client
	cacheTTL  time.Duration
	log       zerolog.Logger
}

// NewGradeService creates a new GradeService.
func NewGradeService(gradeRepo *repository.GradeRepository, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *GradeService {
	return &GradeService{
		gradeRepo: gradeRepo,
		rdb:       rdb,
		cacheTTL:  cfg.StatsCacheTTL,
		log:       log,
	}
}

// Create records a grade for the owner. Weight defaults to 1.0 and
// school_year to the owner's current school-year context.
func (s *GradeService) Create(ctx context.Context, owner *model.User, req model.CreateGradeRequest) (*model.Grade, error) {
	weight := req.Weight
	if weight == 0 {
		weight = 1.0
	}

	grade := &model.Grade{
		OwnerID:    owner.ID,
		Subject:    req.Subject,
		Value:      *req.Value,
		Date:       req.Date,
		GradeType:  req.GradeType,
		Weight:     weight,
		Notes:      req.Notes,
		SchoolYear: defaultSchoolYear(req.SchoolYear, owner),
		Semester:   req.Semester,
	}
	if err := s.gradeRepo.Create(ctx, grade); err != nil {
		return nil, err
	}
	s.bumpStatsVersion(ctx, owner.ID)
	return grade, nil
}

// List retrieves the owner's grades matching the filter, newest first.
// An empty school-year filter resolves to the owner's current year.
func (s *GradeService) List(ctx context.Context, owner *model.User, filter model.GradeFilter) ([]model.Grade, error) {
	filter.SchoolYear = defaultSchoolYear(filter.SchoolYear, owner)
	return s.gradeRepo.List(ctx, owner.ID, filter)
}

// Recent retrieves the owner's most recent grades for a school year.
func (s *GradeService) Recent(ctx context.Context, ownerID uuid.UUID, schoolYear string, limit int) ([]model.Grade, error) {
	return s.gradeRepo.Recent(ctx, ownerID, schoolYear, limit)
}

// Get retrieves one of the owner's grades.
func (s *GradeService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Grade, error) {
	return s.gradeRepo.GetByID(ctx, ownerID, id)
}

// Update applies a partial update to one of the owner's grades.
func (s *GradeService) Update(ctx context.Context, ownerID, id uuid.UUID, req model.UpdateGradeRequest) (*model.Grade, error) {
	if err := s.gradeRepo.Update(ctx, ownerID, id, req); err != nil {
		return nil, err
	}
	s.bumpStatsVersion(ctx, ownerID)
	return s.gradeRepo.GetByID(ctx, ownerID, id)
}

// Delete removes one of the owner's grades.
func (s *GradeService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.gradeRepo.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	s.bumpStatsVersion(ctx, ownerID)
	return nil
}

// Stats computes the owner's grade statistics for a school year, optionally
// narrowed to a semester, serving from cache when a fresh entry exists.
func (s *GradeService) Stats(ctx context.Context, owner *model.User, schoolYear string, semester *int) (*model.GradeStats, error) {
	schoolYear = defaultSchoolYear(schoolYear, owner)

	sem := 0
	if semester != nil {
		sem = *semester
	}

	version := s.statsVersion(ctx, owner.ID)
	cacheKey := config.CacheKey.StatsKey(owner.ID, schoolYear, sem, version)

	if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
		stats := &model.GradeStats{}
		if err := json.Unmarshal([]byte(cached), stats); err == nil {
			return stats, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("stats cache read failed")
	}

	grades, err := s.gradeRepo.List(ctx, owner.ID, model.GradeFilter{
		SchoolYear: schoolYear,
		Semester:   semester,
	})
	if err != nil {
		return nil, err
	}

	stats := ComputeGradeStats(grades)

	if payload, err := json.Marshal(stats); err == nil {
		if err := s.rdb.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("stats cache write failed")
		}
	}

	return stats, nil
}

// statsVersion reads the owner's stats version counter; a missing counter
// means no mutation happened yet and reads as 0.
func (s *GradeService) statsVersion(ctx context.Context, ownerID uuid.UUID) int64 {
	v, err := s.rdb.Get(ctx, config.CacheKey.StatsVersionKey(ownerID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("stats version read failed")
	}
	return v
}

// bumpStatsVersion invalidates every cached stats entry of the owner.
// Cache maintenance is best effort: a Redis failure only costs a
// recomputation, never correctness of stored grades.
func (s *GradeService) bumpStatsVersion(ctx context.Context, ownerID uuid.UUID) {
	if err := s.rdb.Incr(ctx, config.CacheKey.StatsVersionKey(ownerID)).Err(); err != nil {
		s.log.Warn().Err(err).Msg("stats version bump failed")
	}
}

// defaultSchoolYear resolves the school year to operate on: the explicit
// value, else the owner's current context, else the calendar's current year.
func defaultSchoolYear(year string, owner *model.User) string {
	if year != "" {
		return year
	}
	if current := owner.CurrentSchoolYear(); current != "" {
		return current
	}
	return schoolyear.Current(time.Now())
}
