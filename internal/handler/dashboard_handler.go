package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/simoamogit/student-tracker/internal/middleware"
	"github.com/simoamogit/student-tracker/internal/response"
	"github.com/simoamogit/student-tracker/internal/service"
)

// DashboardHandler serves the aggregated home-screen payload.
type DashboardHandler struct {
	dashboardService *service.DashboardService
	log              zerolog.Logger
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, log: log}
}

// Overview godoc
// GET /api/v1/dashboard
// Today's schedule, upcoming events, recent grades and overall statistics.
func (h *DashboardHandler) Overview(c *gin.Context) {
	user := middleware.GetCurrentUser(c)

	dashboard, err := h.dashboardService.Overview(c.Request.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Msg("dashboard failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}
