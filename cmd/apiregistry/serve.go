package main

import (
	"context"
	"fmt"

	"github.com/Aidin1998/apiregistry/api"
	"github.com/Aidin1998/apiregistry/docs"
	"github.com/Aidin1998/apiregistry/internal/endpoints"
	"github.com/Aidin1998/apiregistry/internal/infrastructure/config"
	"github.com/Aidin1998/apiregistry/internal/infrastructure/database"
	"github.com/Aidin1998/apiregistry/internal/infrastructure/server"
	"github.com/Aidin1998/apiregistry/internal/infrastructure/tracing"
	"github.com/Aidin1998/apiregistry/pkg/logger"
	"github.com/Aidin1998/apiregistry/pkg/metrics"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

func serve(ctx context.Context, cfg *config.Config) error {
	zapLogger, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	zapLogger.Info("starting apiregistry",
		zap.String("version", Version),
		zap.String("environment", cfg.Environment))

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := tracing.Setup(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			zapLogger.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	db, err := database.Open(ctx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zapLogger.Warn("failed to close database", zap.Error(err))
		}
	}()

	if sqlDB, err := db.DB(); err == nil {
		if err := metrics.RegisterDBStats(sqlDB, "apiregistry"); err != nil {
			zapLogger.Warn("failed to register database metrics", zap.Error(err))
		}
	}

	docs.SwaggerInfo.BasePath = cfg.Server.BasePath
	docs.SwaggerInfo.Version = Version

	svc := endpoints.NewService(zapLogger, endpoints.NewRepository(db))

	apiServer, err := api.NewServer(api.Options{
		Logger:    zapLogger,
		Config:    cfg.Server,
		Endpoints: svc,
		Ready: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
		Build: api.BuildInfo{
			Service: cfg.Tracing.ServiceName,
			Version: Version,
			Commit:  Commit,
			Date:    BuildDate,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create API server: %w", err)
	}

	httpServer, err := server.NewHTTPServer(cfg.Server, apiServer.Router(), zapLogger)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server: %w", err)
	}

	if err := httpServer.Run(ctx); err != nil {
		zapLogger.Error("HTTP server stopped with error", zap.Error(err))
		return err
	}
	zapLogger.Info("apiregistry stopped")
	return nil
}
