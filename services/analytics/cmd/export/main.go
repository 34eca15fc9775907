package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"content-analytics/pkg/config"
	"content-analytics/pkg/database"
	"content-analytics/pkg/logger"
	"content-analytics/pkg/s3"
	"content-analytics/services/analytics/internal/export"
	"content-analytics/services/analytics/internal/repo/persistent"
	"content-analytics/services/analytics/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}
	defer database.Close(db)

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Uncached: reports come straight from the committed dataset.
	analyticsRepo := persistent.NewAnalyticsRepository(db)
	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsRepo, nil, 0, time.Now, log)

	manifest, err := export.NewExporter(analyticsUseCase, s3Client, time.Now, log).Run(ctx)
	if err != nil {
		log.Error("Failed to export reports: %v", err)
		panic(err)
	}

	log.Info("Exported %d reports, manifest at %s", len(manifest.Reports), manifest.URL)
}
