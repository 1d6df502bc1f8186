package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/simoamogit/student-tracker/internal/config"
	"github.com/simoamogit/student-tracker/internal/handler"
	"github.com/simoamogit/student-tracker/internal/middleware"
	"github.com/simoamogit/student-tracker/internal/response"
	"github.com/simoamogit/student-tracker/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Grade     *handler.GradeHandler
	Schedule  *handler.ScheduleHandler
	Event     *handler.EventHandler
	Dashboard *handler.DashboardHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// Every route except /health, register and login sits behind RequireAuth.
func SetupRouter(
	authService *service.AuthService,
	userService *service.UserService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	requireAuth := middleware.RequireAuth(authService, userService)

	// Rate limiter for credential routes (30 requests per minute per IP).
	authLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Auth Group ────────────────────────────────────────────────────
	auth := router.Group("/api/v1/auth")
	auth.Use(authLimiter.Middleware())
	{
		auth.POST("/register", handlers.Auth.Register)
		auth.POST("/login", handlers.Auth.Login)

		auth.GET("/me", requireAuth, handlers.Auth.Me)
		auth.PUT("/change-password", requireAuth, handlers.Auth.ChangePassword)
		auth.PUT("/update-profile", requireAuth, handlers.Auth.UpdateProfile)
	}

	// ─── Grades ────────────────────────────────────────────────────────
	grades := router.Group("/api/v1/grades")
	grades.Use(requireAuth)
	{
		grades.POST("", handlers.Grade.Create)
		grades.GET("", handlers.Grade.List)
		grades.GET("/stats", handlers.Grade.Stats)
		grades.GET("/:id", handlers.Grade.Get)
		grades.PUT("/:id", handlers.Grade.Update)
		grades.DELETE("/:id", handlers.Grade.Delete)
	}

	// ─── Schedule ──────────────────────────────────────────────────────
	schedule := router.Group("/api/v1/schedule")
	schedule.Use(requireAuth)
	{
		schedule.POST("", handlers.Schedule.Create)
		schedule.GET("", handlers.Schedule.List)
		schedule.GET("/today", handlers.Schedule.Today)
		schedule.GET("/:id", handlers.Schedule.Get)
		schedule.PUT("/:id", handlers.Schedule.Update)
		schedule.DELETE("/:id", handlers.Schedule.Delete)
	}

	// ─── Events ────────────────────────────────────────────────────────
	events := router.Group("/api/v1/events")
	events.Use(requireAuth)
	{
		events.POST("", handlers.Event.Create)
		events.GET("", handlers.Event.List)
		events.GET("/upcoming", handlers.Event.Upcoming)
		events.GET("/:id", handlers.Event.Get)
		events.PUT("/:id", handlers.Event.Update)
		events.DELETE("/:id", handlers.Event.Delete)
	}

	// ─── Dashboard ─────────────────────────────────────────────────────
	router.GET("/api/v1/dashboard", requireAuth, handlers.Dashboard.Overview)

	return router
}
