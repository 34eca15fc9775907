package main

import (
	"content-analytics/pkg/cache"
	"content-analytics/pkg/config"
	"content-analytics/pkg/database"
	"content-analytics/pkg/logger"
	analyticsApp "content-analytics/services/analytics/internal/app"

	"github.com/gin-gonic/gin"
)

// @title           Content Analytics API
// @version         1.0
// @description     Engagement reports over the generated content analytics dataset.
// @host      localhost:3000
// @BasePath  /api

func init() {
	gin.SetMode(gin.ReleaseMode)
}

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

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, serving reports uncached: %v", err)
		redisClient = nil
	}

	app := analyticsApp.NewApp(cfg, log, db, redisClient)
	app.Run()
	app.Wait()
	if err := app.Shutdown(); err != nil {
		panic(err)
	}
}
