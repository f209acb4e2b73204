package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
	"github.com/bookstore/fulfillment-saga/steps-service/config"
	"github.com/bookstore/fulfillment-saga/steps-service/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := sharedconfig.ReadConfig(config.ServiceName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dependencies
	deps, err := config.BuildDependencies(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build dependencies: %v", err)
	}
	defer func() {
		if err := deps.Close(); err != nil {
			log.Printf("Error closing dependencies: %v", err)
		}
	}()

	logger := deps.Platform.Logger
	logger.Info("service_starting", zap.String("port", cfg.Port))

	// Start activity pollers
	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		if err := deps.ActivityRunner.Run(ctx); err != nil {
			logger.Error("activity_runner_stopped", zap.Error(err))
		}
	}()

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: setupRouter(deps),
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server_failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("service_stopping")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_forced_to_shutdown", zap.Error(err))
	}

	select {
	case <-runnerDone:
	case <-shutdownCtx.Done():
		logger.Warn("activity_runner_shutdown_timeout")
	}

	logger.Info("service_stopped")
}

func setupRouter(deps *config.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(telemetry.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Metrics endpoint for Prometheus
	r.Handle("/metrics", handlers.NewMetricsHandler())

	// Register step routes
	deps.StepHTTPHandlers.RegisterRoutes(r)

	return r
}
