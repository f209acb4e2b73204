package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookstore/fulfillment-saga/courier-service/config"
	"github.com/bookstore/fulfillment-saga/courier-service/handlers"
	sharedconfig "github.com/bookstore/fulfillment-saga/shared/config"
	"github.com/bookstore/fulfillment-saga/shared/telemetry"
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

	// Start queue subscriber
	if err := deps.EventSubscriber.Subscribe(ctx); err != nil {
		logger.Fatal("subscriber_failed", zap.Error(err))
	}

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: setupRouter(),
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

	if err := deps.EventSubscriber.Close(shutdownCtx); err != nil {
		logger.Error("subscriber_forced_to_stop", zap.Error(err))
	}

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_forced_to_shutdown", zap.Error(err))
	}

	logger.Info("service_stopped")
}

func setupRouter() *chi.Mux {
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

	return r
}
