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

	"catalog/backend/internal/config"
	productdomain "catalog/backend/internal/domain/product"
	"catalog/backend/internal/httpserver"
	"catalog/backend/internal/infrastructure/memory"
	"catalog/backend/internal/infrastructure/postgres"
	"catalog/backend/internal/logging"
	productusecase "catalog/backend/internal/usecase/product"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	rootCtx := context.Background()

	var repo productdomain.Repository
	if cfg.DatabaseURL == "" {
		slog.Warn("no database configured, falling back to in-memory store")
		repo = memory.NewProductRepository()
	} else {
		db, err := postgres.New(rootCtx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "err", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.Migrate(rootCtx); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			os.Exit(1)
		}
		repo = postgres.NewProductRepository(db.Pool)
	}

	productService := productusecase.NewService(repo)

	server := httpserver.NewServer(cfg, productService)
	slog.Info("HTTP server listening", "addr", server.Addr())

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				slog.Info("HTTP server closed")
				return
			}
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	} else {
		slog.Info("graceful shutdown completed")
	}
}
