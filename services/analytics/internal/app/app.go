package internal

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"content-analytics/pkg/config"
	"content-analytics/pkg/database"
	"content-analytics/pkg/logger"
	"content-analytics/pkg/middleware"
	analyticsHTTP "content-analytics/services/analytics/internal/controller/http"
	"content-analytics/services/analytics/internal/repo/persistent"
	"content-analytics/services/analytics/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "content-analytics/services/analytics/docs" // Swagger docs
)

const (
	rateLimitWindow = time.Minute
	shutdownTimeout = 5 * time.Second
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	server      *http.Server
}

// NewApp wires the analytics service. redisClient may be nil; reports are then
// served uncached and requests are not rate limited.
func NewApp(cfg *config.Config, log *logger.Logger, db *gorm.DB, redisClient *redis.Client) *App {
	// Initialize Repository
	analyticsRepo := persistent.NewAnalyticsRepository(db)

	// Initialize UseCase
	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsRepo, redisClient, cfg.CacheTTL, time.Now, log)

	// Initialize HTTP handlers
	analyticsHandler := analyticsHTTP.NewAnalyticsHandler(analyticsUseCase, log)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		server: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: newRouter(cfg, analyticsHandler, redisClient),
		},
	}
}

func newRouter(cfg *config.Config, analyticsHandler *analyticsHTTP.AnalyticsHandler, redisClient *redis.Client) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	r.GET("/", analyticsHandler.Index)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(redisClient, cfg.RateLimit, rateLimitWindow))
	{
		api.GET("/trends/engagement", analyticsHandler.GetEngagementTrend)
		api.GET("/analysis/top-authors", analyticsHandler.GetTopAuthors)
		api.GET("/analysis/engagement-patterns", analyticsHandler.GetEngagementPatterns)
		api.GET("/analysis/low-engagement-authors", analyticsHandler.GetLowEngagementAuthors)
		api.GET("/analysis/engagement-over-time", analyticsHandler.GetEngagementOverTime)
	}

	return r
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run starts serving in the background. A listen failure panics.
func (a *App) Run() {
	go func() {
		a.log.Info("Analytics service starting on port %s", a.cfg.ServerPort)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()
}

// Wait blocks until SIGINT or SIGTERM.
func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	signal.Stop(quit)
}

// Shutdown drains in-flight requests for up to five seconds, then closes
// Redis and the database pool.
func (a *App) Shutdown() error {
	a.log.Info("Shutting down analytics service...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		errs = append(errs, err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
			errs = append(errs, err)
		}
	}

	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.log.Error("Error closing database: %v", err)
			errs = append(errs, err)
		}
	}

	a.log.Info("Analytics service exited")
	return errors.Join(errs...)
}
