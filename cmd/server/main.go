// Package main provides the entry point for the KPI HTTP server.
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	appConfig "github.com/jschweizer/kpi-service/internal/config"
	dbConfig "github.com/jschweizer/kpi-service/internal/database/config"
	"github.com/jschweizer/kpi-service/internal/database/database"
	"github.com/jschweizer/kpi-service/internal/database/migrate"
	"github.com/jschweizer/kpi-service/internal/health"
	kpiCache "github.com/jschweizer/kpi-service/internal/kpi/cache"
	kpiRouter "github.com/jschweizer/kpi-service/internal/kpi/router"
	"github.com/jschweizer/kpi-service/internal/middleware"
	"github.com/jschweizer/kpi-service/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	db, err := database.New()
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to apply migrations", "error", err)
	}

	// The cache holds its own connection so that a cache backend outage
	// never takes the tracker read path down with it. Reconnection is
	// attempted lazily before each cache operation.
	cacheCfg := dbConfig.LoadConfigFromEnv()
	cacheStore := kpiCache.New(func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dbConfig.BuildDSN(cacheCfg)), &gorm.Config{})
	}, zapLogger)
	defer func() { _ = cacheStore.Close() }()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	kpiRouter.RegisterRoutes(r, db, cacheStore, zapLogger)

	address := cfg.Server.GetAddress()
	zapLogger.Infow("starting server", "address", address)
	if err := r.Run(address); err != nil {
		zapLogger.Fatalw("failed to start server", "error", err)
	}
}
