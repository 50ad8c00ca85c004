package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nurselink/booking-api/config"
	"github.com/nurselink/booking-api/internal/email"
	"github.com/nurselink/booking-api/internal/handler"
	appointmenthandler "github.com/nurselink/booking-api/internal/handler/appointment"
	authhandler "github.com/nurselink/booking-api/internal/handler/auth"
	directoryhandler "github.com/nurselink/booking-api/internal/handler/directory"
	profilehandler "github.com/nurselink/booking-api/internal/handler/profile"
	reviewhandler "github.com/nurselink/booking-api/internal/handler/review"
	"github.com/nurselink/booking-api/internal/middleware"
	"github.com/nurselink/booking-api/internal/repository/postgres"
	redisrepo "github.com/nurselink/booking-api/internal/repository/redis"
	"github.com/nurselink/booking-api/internal/router"
	appointmentservice "github.com/nurselink/booking-api/internal/service/appointment"
	authservice "github.com/nurselink/booking-api/internal/service/auth"
	directoryservice "github.com/nurselink/booking-api/internal/service/directory"
	profileservice "github.com/nurselink/booking-api/internal/service/profile"
	reviewservice "github.com/nurselink/booking-api/internal/service/review"
	"github.com/nurselink/booking-api/pkg/auth"
	"github.com/nurselink/booking-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Console:    cfg.Log.Console,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	redisClient, err := redisrepo.NewClient(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()

	// Repositories
	nurseRepo := postgres.NewNurseRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	nurseProfileRepo := postgres.NewNurseProfileRepository(db)
	patientProfileRepo := postgres.NewPatientProfileRepository(db)
	revocationStore := redisrepo.NewTokenRevocationStore(redisClient)

	// Services
	tokenSvc := auth.NewJWTService(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
		cfg.JWT.Issuer,
	)
	mailer := email.NewSender(cfg.SMTP)
	directorySvc := directoryservice.NewService(nurseRepo, cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	authSvc := authservice.NewService(nurseRepo, patientRepo, tokenSvc, revocationStore, directorySvc)
	appointmentSvc := appointmentservice.NewService(appointmentRepo, nurseRepo, patientRepo, patientProfileRepo, mailer, log)
	reviewSvc := reviewservice.NewService(reviewRepo, nurseRepo, patientRepo, cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	profileSvc := profileservice.NewService(nurseProfileRepo, patientProfileRepo, nurseRepo, patientRepo)

	// Handlers
	h := handler.NewHandler(db)
	authHandler := authhandler.NewHandler(authSvc)
	directoryHandler := directoryhandler.NewHandler(directorySvc)
	appointmentHandler := appointmenthandler.NewHandler(appointmentSvc)
	reviewHandler := reviewhandler.NewHandler(reviewSvc)
	profileHandler := profilehandler.NewHandler(profileSvc)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMiddleware,
		authHandler,
		directoryHandler,
		appointmentHandler,
		reviewHandler,
		profileHandler,
		h,
		log,
		router.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitRPS:     cfg.RateLimit.RequestsPerSecond,
			RateLimitBurst:   cfg.RateLimit.Burst,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        r.Engine(),
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
