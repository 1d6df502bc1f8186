package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/simoamogit/student-tracker/internal/middleware"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
	"github.com/simoamogit/student-tracker/internal/response"
	"github.com/simoamogit/student-tracker/internal/service"
	"github.com/simoamogit/student-tracker/internal/validator"
)

// GradeHandler handles grade endpoints.
type GradeHandler struct {
	gradeService *service.GradeService
	log          zerolog.Logger
}

// NewGradeHandler creates a new GradeHandler.
func NewGradeHandler(gradeService *service.GradeService, log zerolog.Logger) *GradeHandler {
	return &GradeHandler{gradeService: gradeService, log: log}
}

// Create godoc
// POST /api/v1/grades
func (h *GradeHandler) Create(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	var req model.CreateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Create(c.Request.Context(), user, req)
	if err != nil {
		h.log.Error().Err(err).Msg("grade create failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, grade)
}

// List godoc
// GET /api/v1/grades
// Optional filters: school_year, semester, subject, grade_type,
// start_date/end_date (inclusive bounds on the grade date).
func (h *GradeHandler) List(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	semester, ok := parseIntQuery(c, "semester")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	dateFrom, ok := parseTimeQuery(c, "start_date")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}
	dateTo, ok := parseTimeQuery(c, "end_date")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	grades, err := h.gradeService.List(c.Request.Context(), user, model.GradeFilter{
		SchoolYear: c.Query("school_year"),
		Subject:    c.Query("subject"),
		GradeType:  c.Query("grade_type"),
		Semester:   semester,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("grade list failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, grades)
}

// Get godoc
// GET /api/v1/grades/:id
func (h *GradeHandler) Get(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	grade, err := h.gradeService.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("grade get failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, grade)
}

// Update godoc
// PUT /api/v1/grades/:id
// Partial update; absent fields keep their stored values.
func (h *GradeHandler) Update(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateGradeRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	grade, err := h.gradeService.Update(c.Request.Context(), user.ID, id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("grade update failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, grade)
}

// Delete godoc
// DELETE /api/v1/grades/:id
func (h *GradeHandler) Delete(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.gradeService.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("grade delete failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}

// Stats godoc
// GET /api/v1/grades/stats
// Aggregated averages for the school year, optionally per semester.
func (h *GradeHandler) Stats(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	semester, ok := parseIntQuery(c, "semester")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	stats, err := h.gradeService.Stats(c.Request.Context(), user, c.Query("school_year"), semester)
	if err != nil {
		h.log.Error().Err(err).Msg("grade stats failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, stats)
}
