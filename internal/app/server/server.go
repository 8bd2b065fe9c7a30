// Package server выбирает хранилище, собирает сервисы и хендлеры и запускает сервер.
package server

import (
	"context"
	"fmt"

	"github.com/aseptimu/shortmyurl/internal/app/config"
	handlers "github.com/aseptimu/shortmyurl/internal/app/handlers/http"
	httpserver "github.com/aseptimu/shortmyurl/internal/app/server/http"
	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/aseptimu/shortmyurl/internal/app/store"
	"go.uber.org/zap"
)

const migrationsDir = "./migrations"

// NewStore возвращает хранилище по конфигурации: PostgreSQL, если задан DSN,
// иначе JSON-файл, иначе память процесса. closeFn освобождает ресурсы хранилища.
func NewStore(ctx context.Context, cfg *config.ConfigType, logger *zap.SugaredLogger) (service.Store, func(), error) {
	switch {
	case cfg.DSN != "":
		logger.Infow("Database mode enabled")
		if err := store.MigrateDB(cfg.DSN, migrationsDir, logger); err != nil {
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		db, err := store.NewDB(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case cfg.FileStoragePath != "":
		logger.Infow("File storage mode enabled", "storagePath", cfg.FileStoragePath)
		fs := store.NewFileStore(cfg.FileStoragePath, logger)
		if _, err := fs.Load(ctx); err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return fs, func() {}, nil
	default:
		logger.Warn("No storage configured, links are kept in memory only")
		return store.NewStore(), func() {}, nil
	}
}

// Run блокируется до отмены ctx.
func Run(ctx context.Context, cfg *config.ConfigType, logger *zap.SugaredLogger) error {
	linkStore, closeStore, err := NewStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	h := handlers.New(
		service.NewURLService(linkStore, cfg.BaseDomain),
		service.NewGetURLService(linkStore),
		linkStore,
		logger,
	)

	return httpserver.NewServer(cfg.ServerAddress, cfg.ShutdownTimeout, logger, h).Run(ctx)
}
