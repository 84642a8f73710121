package main

// @title           ReadingNest API
// @version         1.0
// @description     Personal reading tracker with AI-assisted lookups, recommendations and note reflections.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/readingnest/server/internal/ai"
	"github.com/readingnest/server/internal/config"
	docs "github.com/readingnest/server/internal/docs"
	"github.com/readingnest/server/internal/handler"
	"github.com/readingnest/server/internal/storage"
	"github.com/readingnest/server/internal/store"
)

const appVersion = "0.1.0"

func main() {
	startTime := time.Now()

	cfg := config.Load()

	gin.SetMode(cfg.GinMode)

	snap, err := openSnapshot(cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}

	lib := store.New(snap)
	if err := lib.Load(context.Background()); err != nil {
		log.Fatalf("load library: %v", err)
	}

	var aiOpts []ai.Option
	if cfg.GeminiModel != "" {
		aiOpts = append(aiOpts, ai.WithModel(cfg.GeminiModel))
	}
	gateway := ai.NewGeminiClient(cfg.GeminiAPIKey, aiOpts...)

	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	docs.SwaggerInfo.BasePath = "/api"

	healthHandler := handler.NewHealthHandler(snap, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	api := e.Group("/api")
	{
		bookHandler := handler.NewBookHandler(lib)
		bookHandler.RegisterRoutes(api)

		aiHandler := handler.NewAIHandler(gateway, lib)
		aiHandler.RegisterRoutes(api)

		statsHandler := handler.NewStatsHandler(lib)
		statsHandler.RegisterRoutes(api)
	}

	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	e.Run(":" + cfg.Port)
}

func openSnapshot(cfg *config.Config) (storage.Snapshot, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		return storage.OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return storage.OpenPostgres(cfg.DSN())
	default:
		return storage.NewFileSnapshot(cfg.LibraryFile), nil
	}
}
