package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/simoamogit/student-tracker/internal/middleware"
	"github.com/simoamogit/student-tracker/internal/model"
	"github.com/simoamogit/student-tracker/internal/repository"
	"github.com/simoamogit/student-tracker/internal/response"
	"github.com/simoamogit/student-tracker/internal/service"
	"github.com/simoamogit/student-tracker/internal/validator"
)

// EventHandler handles calendar event endpoints.
type EventHandler struct {
	eventService *service.EventService
	log          zerolog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService *service.EventService, log zerolog.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, log: log}
}

// Create godoc
// POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	var req model.CreateEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), user, req)
	if err != nil {
		h.log.Error().Err(err).Msg("event create failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, event)
}

// List godoc
// GET /api/v1/events
// Optional filters: school_year, event_type, subject, start_date/end_date
// (inclusive bounds on the event start). Ordered by start date.
func (h *EventHandler) List(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

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

	events, err := h.eventService.List(c.Request.Context(), user, model.EventFilter{
		SchoolYear: c.Query("school_year"),
		EventType:  c.Query("event_type"),
		Subject:    c.Query("subject"),
		DateFrom:   dateFrom,
		DateTo:     dateTo,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("event list failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, events)
}

// Upcoming godoc
// GET /api/v1/events/upcoming
// Events starting within the next `days` days (default 7).
func (h *EventHandler) Upcoming(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	days := service.DefaultUpcomingDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidPayload)
			return
		}
		days = n
	}

	events, err := h.eventService.Upcoming(c.Request.Context(), user, c.Query("school_year"), days)
	if err != nil {
		h.log.Error().Err(err).Msg("upcoming events failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, events)
}

// Get godoc
// GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("event get failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Update godoc
// PUT /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateEventRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), user.ID, id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.Is(err, service.ErrEndBeforeStart):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, map[string]string{
				"end_date": "end_date must not be earlier than start_date",
			})
		default:
			h.log.Error().Err(err).Msg("event update failed")
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, event)
}

// Delete godoc
// DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	id, ok := parseID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), user.ID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		h.log.Error().Err(err).Msg("event delete failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{})
}
