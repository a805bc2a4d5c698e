package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-booking-backend/config"
	_ "clinic-booking-backend/docs" // Important for Swagger
	"clinic-booking-backend/internal/booking"
	v1 "clinic-booking-backend/internal/delivery/http/v1"
	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/internal/repository/postgres"
	"clinic-booking-backend/internal/usecase"
	"clinic-booking-backend/pkg/audit"
	"clinic-booking-backend/pkg/database"
	"clinic-booking-backend/pkg/logger"
	"clinic-booking-backend/pkg/metrics"
	"clinic-booking-backend/pkg/redis"
	"clinic-booking-backend/pkg/scheduler"
	"clinic-booking-backend/pkg/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// @title           Clinic Booking API
// @version         1.0
// @description     Appointment request handoff for a medical clinic booking page.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting clinic booking backend", "port", cfg.Port, "timezone", cfg.TimeZone)

	auditLogger := audit.Init("clinic-booking", audit.Environment())
	defer auditLogger.Sync()

	ctx := context.Background()
	probes := map[string]usecase.Probe{}

	// 3. Optional audit database
	var dbPool *pgxpool.Pool
	if cfg.DBUrl != "" {
		dbPool, err = database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database, audit events are only logged", "error", err)
		} else {
			defer dbPool.Close()
			probes["database"] = dbPool.Ping
		}
	}
	if dbPool != nil && cfg.AuditLogToDB {
		eventRepo := postgres.NewSubmissionEventRepository(dbPool)
		auditLogger.SetPersistFunc(submissionPersister(eventRepo))
	}
	defer auditLogger.Wait()

	// 4. Optional shared rate limiter store
	if cfg.UpstashRedisURL != "" {
		if err := redis.Initialize(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting stays in memory", "error", err)
		} else {
			defer redis.Close()
			probes["redis"] = redis.HealthCheck
		}
	}

	// 5. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	bookingMetrics := metrics.NewBookingMetrics(registry)

	// 6. Setup UseCases
	sched := scheduler.System()
	schedule, err := booking.NewSchedule(sched, booking.ScheduleRules{
		WindowDays: cfg.BookingWindowDays,
		Open:       cfg.OpenTime,
		Close:      cfg.CloseTime,
		Step:       time.Duration(cfg.SlotMinutes) * time.Minute,
		Location:   cfg.Location,
	})
	if err != nil {
		logger.Log.Error("Invalid schedule configuration", "error", err)
		os.Exit(1)
	}

	appointmentUC := usecase.NewAppointmentUsecase(
		schedule,
		sched,
		validation.New(),
		bookingMetrics,
		auditLogger,
		logger.Log,
		usecase.AppointmentOptions{
			Handoff: booking.Handoff{Host: cfg.MessagingHost, Contact: cfg.WhatsAppNumber},
			Timing: booking.Timing{
				HandoffDelay: cfg.HandoffDelay,
				ResetDelay:   cfg.ResetDelay,
			},
			NotificationTTL: cfg.NotificationTTL,
			SubmitTimeout:   cfg.SubmitTimeout,
			Locale:          cfg.Locale,
		},
	)
	healthUC := usecase.NewHealthUsecase(probes)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AppointmentUC: appointmentUC,
		HealthUC:      healthUC,
		Config:        cfg,
		Gatherer:      registry,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second+cfg.HandoffDelay)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// submissionPersister stores submission outcomes; other audit events stay in the log.
func submissionPersister(repo domain.SubmissionEventRepository) func(context.Context, audit.Event) error {
	return func(ctx context.Context, e audit.Event) error {
		if e.SubmissionID == "" {
			return nil
		}
		return repo.Create(ctx, &domain.SubmissionEvent{
			ID:        e.SubmissionID,
			RequestID: e.RequestID,
			Outcome:   domain.SubmissionOutcome(e.Outcome),
			PhoneHash: e.PhoneHash,
			ClientIP:  e.IP,
			CreatedAt: e.Timestamp,
		})
	}
}
