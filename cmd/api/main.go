package main

// @title Emergency Locator API
// @version 1.0.0
// @description Service for locating emergency facilities (hospitals, police stations, fire stations) and routing users to them.
// @description
// @description Main capabilities:
// @description - Nearest emergency facility lookup with turn-by-turn directions
// @description - Radius search over facilities with category filtering
// @description - Facility registry management and user reviews
// @description - Point-to-point routing

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/emergency-locator/docs"
	"github.com/emergency-locator/internal/config"
	httpDelivery "github.com/emergency-locator/internal/delivery/http"
	"github.com/emergency-locator/internal/delivery/http/handler"
	"github.com/emergency-locator/internal/infrastructure/directions"
	"github.com/emergency-locator/internal/pkg/logger"
	"github.com/emergency-locator/internal/repository/postgres"
	"github.com/emergency-locator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Emergency Locator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("directions_provider", cfg.Directions.Provider),
		zap.String("store_distance_metric", cfg.Directions.Metric),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 5. Initialize repositories
	serviceRepo := postgres.NewServiceRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	directionsRepo, err := directions.New(&cfg.Directions, log)
	if err != nil {
		log.Fatal("Failed to initialize directions provider", zap.Error(err))
	}
	log.Info("Repositories initialized")

	// 6. Initialize use cases
	serviceUC := usecase.NewServiceUseCase(serviceRepo, log)
	reviewUC := usecase.NewReviewUseCase(reviewRepo, serviceRepo, log)
	routingUC := usecase.NewRoutingUseCase(serviceUC, directionsRepo, log)
	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	serviceHandler := handler.NewServiceHandler(serviceUC, log)
	reviewHandler := handler.NewReviewHandler(reviewUC, log)
	routingHandler := handler.NewRoutingHandler(routingUC, log)
	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, serviceHandler, reviewHandler, routingHandler)
	log.Info("HTTP server initialized")

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
