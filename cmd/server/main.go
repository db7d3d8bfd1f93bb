package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/gstmate/gstmate/internal/adapter/http"
	"github.com/gstmate/gstmate/internal/adapter/http/handler"
	postgresRepo "github.com/gstmate/gstmate/internal/adapter/repository/postgres"
	redisRepo "github.com/gstmate/gstmate/internal/adapter/repository/redis"
	"github.com/gstmate/gstmate/internal/adapter/summarizer/gemini"
	"github.com/gstmate/gstmate/internal/infrastructure/auth"
	"github.com/gstmate/gstmate/internal/infrastructure/config"
	"github.com/gstmate/gstmate/internal/infrastructure/logger"
	"github.com/gstmate/gstmate/internal/infrastructure/postgres"
	"github.com/gstmate/gstmate/internal/infrastructure/redis"
	"github.com/gstmate/gstmate/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set: identity verification cannot run against an empty key")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	appLogger.Info().Msg("connected to postgres")

	// Run migrations when a path is configured
	if migrationsPath := os.Getenv("MIGRATIONS_PATH"); migrationsPath != "" {
		if err := postgres.RunMigrations(appLogger, cfg.DatabaseURL, migrationsPath); err != nil {
			appLogger.Fatal().Err(err).Msg("failed to run migrations")
		}
	}

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	appLogger.Info().Msg("connected to redis")

	// Gemini summarizer (needs GEMINI_API_KEY in the environment)
	summarizer, err := gemini.New(ctx, cfg.GeminiModel, cfg.SummaryTimeout)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to create gemini client")
	}
	appLogger.Info().Str("model", cfg.GeminiModel).Msg("gemini summarizer ready")

	// Initialize repositories
	idGen := postgresRepo.NewULIDGenerator()
	calcRepo := postgresRepo.NewCalculationRepository(pool, idGen)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	calcUC := usecase.NewCalculationUseCase(calcRepo, cfg.HistoryLimit, appLogger)
	summaryUC := usecase.NewSummaryUseCase(summarizer)

	// Initialize handlers
	calcHandler := handler.NewCalculationHandler(calcUC, summaryUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CalculationHandler: calcHandler,
		HealthHandler:      healthHandler,
		TokenManager:       tokenManager,
		IdempotencyStore:   idempotencyStore,
		Logger:             appLogger,
		SummaryRateLimit:   cfg.SummaryRateLimit,
		SummaryRateBurst:   cfg.SummaryRateBurst,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
