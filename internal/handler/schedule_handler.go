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

// ScheduleHandler handles weekly timetable endpoints.
type ScheduleHandler struct {
	scheduleService *service.ScheduleService
	log             zerolog.Logger
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService *service.ScheduleService, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, log: log}
}

// Create godoc
// POST /api/v1/schedule
// Adds a timetable slot; posting an occupied (day, hour, school_year) slot
// replaces it in place. Responds 201 on insert, 200 on replace.
func (h *ScheduleHandler) Create(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	var req model.CreateScheduleItemRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	item, created, err := h.scheduleService.Upsert(c.Request.Context(), user, req)
	if err != nil {
		h.log.Error().Err(err).Msg("schedule upsert failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, item)
}

// List godoc
// GET /api/v1/schedule
// Optional filters: school_year, day. Ordered by (day, hour).
func (h *ScheduleHandler) List(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	day, ok := parseIntQuery(c, "day")
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
		return
	}

	items, err := h.scheduleService.List(c.Request.Context(), user, c.Query("school_year"), day)
	if err != nil {
		h.log.Error().Err(err).Msg("schedule list failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Today godoc
// GET /api/v1/schedule/today
// The current weekday's slots, ordered by hour.
func (h *ScheduleHandler) Today(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	items, err := h.scheduleService.Today(c.Request.Context(), user, c.Query("school_year"))
	if err != nil {
		h.log.Error().Err(err).Msg("today schedule failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Get godoc
// GET /api/v1/schedule/:id
func (h *ScheduleHandler) Get(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	item, err := h.scheduleService.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("schedule get failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, item)
}

// Update godoc
// PUT /api/v1/schedule/:id
// Partial update; moving onto an occupied slot fails with 409.
func (h *ScheduleHandler) Update(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateScheduleItemRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	item, err := h.scheduleService.Update(c.Request.Context(), user.ID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, repository.ErrSlotTaken):
			response.Fail(c, http.StatusConflict, response.ErrConflict)
		default:
			h.log.Error().Err(err).Msg("schedule update failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, item)
}

// Delete godoc
// DELETE /api/v1/schedule/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("schedule delete failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
