package main

import (
	"alcyxob/fitness-portal/internal/api"
	"alcyxob/fitness-portal/internal/cache"
	"alcyxob/fitness-portal/internal/config"
	"alcyxob/fitness-portal/internal/logging"
	"alcyxob/fitness-portal/internal/metrics"
	"alcyxob/fitness-portal/internal/report"
	"alcyxob/fitness-portal/internal/repository/mongo"
	"alcyxob/fitness-portal/internal/service"
	"alcyxob/fitness-portal/internal/storage"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	log "github.com/sirupsen/logrus"
)

// @title Fitness Portal API
// @version 1.0
// @description Workouts, per-day completion tracking, calendar views and monthly history reports.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %s", err)
	}

	logging.Setup(cfg.Log)
	log.Println("starting fitness portal server...")

	if cfg.Server.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI, cfg.Database.ConnectTimeout)
	if err != nil {
		log.Fatalf("could not connect to MongoDB: %s", err)
	}
	defer func() {
		log.Println("disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("failed to disconnect MongoDB: %s", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("database connection established")

	// --- Ensure Indexes ---
	indexesDone := make(chan struct{})
	go func() {
		defer close(indexesDone)
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts"))
		mongo.EnsureReportUploadIndexes(ctx, appDB.Collection("report_uploads"))
		log.Debugln("index creation completed")
	}()

	// --- Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	reportUploadRepo := mongo.NewMongoReportUploadRepository(appDB)

	// --- Metrics & Cache ---
	promRegistry := metrics.SetupPrometheus()
	metricsManager := metrics.NewManager(promRegistry)
	monthCounts := cache.NewMonthCounts(cfg.Cache.SizeMB, cfg.Cache.TTL)

	// --- Storage ---
	var fileStorage storage.FileStorage
	if cfg.S3.Enabled() {
		fileStorage, err = storage.NewS3Storage(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("failed to initialize S3 storage: %s", err)
		}
	} else {
		log.Warnln("s3.bucket_name is empty, report exports are disabled")
	}

	// --- Rate Limiting ---
	var rateLimiter api.RequestRateLimiter
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Errorf("failed to close redis client: %s", err)
			}
		}()

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warnf("redis at %s is not reachable yet: %s", cfg.Redis.Address, err)
		}
		pingCancel()

		rateLimiter = redis_rate.NewLimiter(rdb)
		log.Printf("report routes limited to %d requests per minute", cfg.RateLimit.ReportsPerMinute)
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	workoutService := service.NewWorkoutService(workoutRepo, monthCounts, time.Now)
	completionService := service.NewCompletionService(workoutRepo, monthCounts, metricsManager, time.Now, cfg.Completion.MaxSaveAttempts)
	calendarService := service.NewCalendarService(workoutRepo, monthCounts, metricsManager)
	reportService := service.NewReportService(
		calendarService,
		userRepo,
		reportUploadRepo,
		fileStorage,
		report.NewRenderer(),
		metricsManager,
		cfg.S3.PresignExpiry,
		time.Now,
	)

	// --- Router ---
	router := api.NewRouter(api.RouterConfig{
		JWTSecret:         cfg.JWT.Secret,
		AuthService:       authService,
		WorkoutService:    workoutService,
		CompletionService: completionService,
		CalendarService:   calendarService,
		ReportService:     reportService,
		Metrics:           metricsManager,
		MetricsGatherer:   promRegistry,
		RateLimiter:       rateLimiter,
		ReportsPerMinute:  cfg.RateLimit.ReportsPerMinute,
	})

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen and serve: %s", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Errorf("server forced to shutdown: %s", err)
	}
	<-indexesDone

	log.Println("server exiting")
}
