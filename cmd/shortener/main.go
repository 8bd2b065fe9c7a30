package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/aseptimu/shortmyurl/internal/app/config"
	"github.com/aseptimu/shortmyurl/internal/app/server"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Shortener failed: %v", err)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sugar := logger.Sugar()
	sugar.Infow("Starting shortener",
		"address", cfg.ServerAddress,
		"baseDomain", cfg.BaseDomain,
		"storagePath", cfg.FileStoragePath,
		"database", cfg.DSN != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err := server.Run(ctx, cfg, sugar); err != nil {
		sugar.Errorw("Server stopped with error", "error", err)
		return err
	}
	sugar.Info("Server stopped")
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	return cfg.Build()
}
