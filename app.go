package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pulmocare/appointments/backend/internal/cache"
	"github.com/pulmocare/appointments/backend/internal/config"
	"github.com/pulmocare/appointments/backend/internal/logger"
	"github.com/pulmocare/appointments/backend/internal/metrics"
)

// App holds all application dependencies.
//
// The REST handlers, auth middleware and message consumers are separate
// collaborators; this process owns the cache store's lifecycle: one store per
// process, an optional sweeper ticking at the configured interval, and an
// optional monitoring endpoint.
type App struct {
	ctx     context.Context
	Config  *config.Config
	logger  logger.Logger
	Cache   cache.Service
	sweeper *cache.Sweeper
	metrics *metrics.Server
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config, log logger.Logger) *App {
	if cfg.App.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	store := cache.NewMemoryService(log)

	// When metrics are enabled, callers get the instrumented view of the store
	var cacheService cache.Service = store
	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		registry := metrics.NewRegistry()
		cacheService = cache.NewInstrumentedService(store, registry)
		metricsServer = metrics.NewServer(&cfg.Metrics, registry, log)
	}

	var sweeper *cache.Sweeper
	if cfg.Cache.CleanupInterval > 0 {
		sweeper = cache.NewSweeper(cacheService, cfg.Cache.CleanupInterval, log)
	}

	return &App{
		ctx:     ctx,
		Config:  cfg,
		logger:  log,
		Cache:   cacheService,
		sweeper: sweeper,
		metrics: metricsServer,
	}
}

// Run starts the background parts of the application
func (a *App) Run() {
	if a.sweeper != nil {
		a.sweeper.Start(a.ctx)
	}
	if a.metrics != nil {
		a.metrics.Start()
	}

	a.logger.LogInfo("Application started", map[string]interface{}{
		"service":     a.Config.App.Name,
		"environment": a.Config.App.Environment,
	})
}

// Shutdown stops background work and releases resources
func (a *App) Shutdown() error {
	if a.sweeper != nil {
		a.sweeper.Stop()
	}

	if a.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.metrics.Shutdown(ctx); err != nil {
			return a.logger.LogError(err, "Failed to shut down metrics server")
		}
	}

	a.logger.LogInfo("Application stopped", nil)
	return nil
}
