package api

import (
	"alcyxob/fitness-portal/internal/metrics"
	"alcyxob/fitness-portal/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries everything NewRouter wires into the engine.
type RouterConfig struct {
	JWTSecret string

	AuthService       service.AuthService
	WorkoutService    service.WorkoutService
	CompletionService service.CompletionService
	CalendarService   service.CalendarService
	ReportService     service.ReportService

	Metrics         *metrics.Manager
	MetricsGatherer prometheus.Gatherer

	// RateLimiter guards the report routes. Nil disables rate limiting.
	RateLimiter      RequestRateLimiter
	ReportsPerMinute int
}

// NewRouter builds the gin engine with middleware and all routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(PanicRecovery(cfg.Metrics), LogRequest())
	if cfg.Metrics != nil {
		router.Use(RequestMetrics(cfg.Metrics))
	}
	SetupRoutes(router, cfg)
	return router
}

func SetupRoutes(router *gin.Engine, cfg RouterConfig) {
	authHandler := NewAuthHandler(cfg.AuthService)
	workoutHandler := NewWorkoutHandler(cfg.WorkoutService)
	completionHandler := NewCompletionHandler(cfg.CompletionService)
	calendarHandler := NewCalendarHandler(cfg.CalendarService)
	reportHandler := NewReportHandler(cfg.ReportService)

	authMiddleware := AuthMiddleware(cfg.JWTSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if cfg.MetricsGatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.MetricsGatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", authHandler.Me)

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:workoutId", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:workoutId", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)

			// POST /api/v1/workouts/{workoutId}/completions
			workoutGroup.POST("/:workoutId/completions", completionHandler.MarkCompleted)
			// DELETE /api/v1/workouts/{workoutId}/completions?date=YYYY-MM-DD
			workoutGroup.DELETE("/:workoutId/completions", completionHandler.UnmarkCompleted)
		}

		// --- Calendar ---
		calendarGroup := protected.Group("/calendar")
		{
			calendarGroup.GET("/months/:year/:month", calendarHandler.MonthCalendar)
			calendarGroup.GET("/days/:date", calendarHandler.DayWorkouts)
		}

		// --- Reports ---
		reportGroup := protected.Group("/reports")
		if cfg.RateLimiter != nil {
			reportGroup.Use(RateLimit(cfg.RateLimiter, "reports", cfg.ReportsPerMinute, cfg.Metrics))
		}
		{
			reportGroup.GET("/monthly/:year/:month", reportHandler.MonthlyReport)
			reportGroup.POST("/monthly/:year/:month/export", reportHandler.ExportMonthlyReport)
			reportGroup.GET("/exports", reportHandler.ListExports)
		}
	}
}
