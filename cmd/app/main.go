package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/garden-advisor/internal/advisor"
	"github.com/osse101/garden-advisor/internal/augment"
	"github.com/osse101/garden-advisor/internal/catalog"
	"github.com/osse101/garden-advisor/internal/config"
	"github.com/osse101/garden-advisor/internal/logger"
	"github.com/osse101/garden-advisor/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Init(logger.NewConfig(cfg.LogLevel, cfg.LogFormat))

	cat, err := catalog.NewLoader().Load(cfg.CatalogPath)
	if err != nil {
		slog.Error("Failed to load item catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Item catalog loaded", "path", cfg.CatalogPath, "items", cat.Len())

	advisorSvc := advisor.NewService(cat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var source augment.Source
	if cfg.AugmentationEnabled() {
		source, err = augment.NewGeminiSource(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			// Augmentation is optional; the rule engine carries the service
			slog.Warn("Augmentation source unavailable, continuing without it", "error", err)
			source = nil
		} else {
			slog.Info("Augmentation enabled", "model", cfg.GeminiModel)
		}
	} else {
		slog.Info("Augmentation disabled, rule engine only")
	}

	selector := augment.NewSelector(advisorSvc, source, augment.Options{
		Timeout:   cfg.AugmentTimeout,
		CacheSize: cfg.AugmentCacheSize,
		CacheTTL:  cfg.AugmentCacheTTL,
	})

	srv := server.NewServer(cfg.Port, nil, cat, advisorSvc, selector)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
