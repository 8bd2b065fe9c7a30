package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

// MigrateDB применяет к базе ps миграции из каталога dir.
// Относительный dir разрешается от рабочего каталога процесса.
// База в состоянии dirty не мигрируется: её нужно починить вручную.
func MigrateDB(ps string, dir string, logger *zap.SugaredLogger) (err error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir %s: %w", dir, err)
	}
	if info, statErr := os.Stat(absDir); statErr != nil {
		return fmt.Errorf("migrations dir %s: %w", absDir, statErr)
	} else if !info.IsDir() {
		return fmt.Errorf("migrations dir %s is not a directory", absDir)
	}

	db, err := sql.Open("pgx", ps)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return fmt.Errorf("create migrate driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+filepath.ToSlash(absDir), "postgres", driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	from, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	case dirty:
		return fmt.Errorf("schema version %d is dirty", from)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Infow("Schema is up to date", "version", from, "dir", absDir)
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	to, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	logger.Infow("Migrations applied", "from", from, "to", to, "dir", absDir)
	return nil
}
