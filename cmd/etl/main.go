package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/emergency-locator/internal/config"
	"github.com/emergency-locator/internal/etl"
	"github.com/emergency-locator/internal/pkg/logger"
	"github.com/emergency-locator/internal/repository/postgres"
)

// One-shot ingestion: pull emergency amenities from OpenStreetMap for the
// configured bounding box and load them into the facility store.
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

	log.Info("Starting ingestion run")

	bbox, err := etl.ParseBBox(cfg.ETL.BBox)
	if err != nil {
		log.Fatal("Invalid ETL_BBOX", zap.Error(err))
	}

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

	// 4. Run the pipeline; Ctrl-C aborts the run cleanly
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := etl.NewOverpassClient(&cfg.ETL, log)
	pipeline := etl.NewPipeline(client, postgres.NewServiceRepository(db), cfg.ETL.BatchSize, log)

	stats, err := pipeline.Run(ctx, bbox)
	if err != nil {
		if stats != nil {
			log.Error("Ingestion aborted",
				zap.Int("fetched", stats.Fetched),
				zap.Int("loaded", stats.Loaded),
				zap.Int("skipped", stats.Skipped),
				zap.Error(err),
			)
		}
		log.Fatal("Ingestion failed", zap.Error(err))
	}

	log.Info("Ingestion finished",
		zap.Int("fetched", stats.Fetched),
		zap.Int("loaded", stats.Loaded),
		zap.Int("skipped", stats.Skipped),
	)
}
