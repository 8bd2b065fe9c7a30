package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aseptimu/shortmyurl/internal/app/config"
	"github.com/aseptimu/shortmyurl/internal/app/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Database хранит ссылки в PostgreSQL: таблица links и история переходов link_visits.
type Database struct {
	dbpool *pgxpool.Pool
	logger *zap.SugaredLogger
}

func NewDB(ctx context.Context, ps string, logger *zap.SugaredLogger) (*Database, error) {
	dbpool, err := pgxpool.New(ctx, ps)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Database{dbpool, logger}, nil
}

func (db *Database) Close() {
	db.dbpool.Close()
}

func (db *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()
	return db.dbpool.Ping(ctx)
}

const CreateLinkQuery = `INSERT INTO links (name, target_url, short_url, created_at, created_by_ip, visits)
         VALUES ($1, $2, $3, $4, $5, 0)
         ON CONFLICT (name) DO NOTHING`

func (db *Database) Create(ctx context.Context, record service.ShortLinkRecord) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	cmdTag, err := db.dbpool.Exec(ctx, CreateLinkQuery,
		record.Name, record.TargetURL, record.ShortURL, record.CreatedAt, record.CreatedByIP)
	if err != nil {
		db.logger.Errorw("Failed to insert link", "name", record.Name, "err", err)
		return fmt.Errorf("insert link %s: %w", record.Name, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNameTaken
	}

	db.logger.Debugw("Link stored", "name", record.Name, "targetURL", record.TargetURL)
	return nil
}

const GetLinkQuery = `SELECT name, target_url, short_url, created_at, created_by_ip, visits
         FROM links WHERE name = $1`

const IncrementVisitsQuery = `UPDATE links SET visits = visits + 1 WHERE name = $1
         RETURNING name, target_url, short_url, created_at, created_by_ip, visits`

const InsertVisitQuery = "INSERT INTO link_visits (name, ip, visited_at) VALUES ($1, $2, $3)"

const GetVisitsQuery = "SELECT ip, visited_at FROM link_visits WHERE name = $1 ORDER BY id"

type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func scanLink(row pgx.Row) (service.ShortLinkRecord, error) {
	var rec service.ShortLinkRecord
	err := row.Scan(&rec.Name, &rec.TargetURL, &rec.ShortURL, &rec.CreatedAt, &rec.CreatedByIP, &rec.VisitCount)
	if errors.Is(err, pgx.ErrNoRows) {
		return service.ShortLinkRecord{}, service.ErrNotFound
	}
	if err != nil {
		return service.ShortLinkRecord{}, err
	}
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}

func loadVisits(ctx context.Context, q querier, name string) ([]service.Visit, error) {
	rows, err := q.Query(ctx, GetVisitsQuery, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	visits := []service.Visit{}
	for rows.Next() {
		var v service.Visit
		if err := rows.Scan(&v.IP, &v.Timestamp); err != nil {
			return nil, err
		}
		v.Timestamp = v.Timestamp.UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// RecordVisit увеличивает счётчик и пишет историю в одной транзакции.
// UPDATE блокирует строку, поэтому параллельные переходы не теряются.
func (db *Database) RecordVisit(ctx context.Context, name string, visit service.Visit) (service.ShortLinkRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	tx, err := db.dbpool.Begin(ctx)
	if err != nil {
		return service.ShortLinkRecord{}, err
	}
	defer tx.Rollback(ctx)

	rec, err := scanLink(tx.QueryRow(ctx, IncrementVisitsQuery, name))
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			db.logger.Errorw("Failed to increment visits", "name", name, "err", err)
		}
		return service.ShortLinkRecord{}, err
	}

	if _, err = tx.Exec(ctx, InsertVisitQuery, name, visit.IP, visit.Timestamp); err != nil {
		db.logger.Errorw("Failed to insert visit", "name", name, "err", err)
		return service.ShortLinkRecord{}, err
	}

	rec.VisitHistory, err = loadVisits(ctx, tx, name)
	if err != nil {
		return service.ShortLinkRecord{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return service.ShortLinkRecord{}, err
	}
	return rec, nil
}

func (db *Database) Get(ctx context.Context, name string) (service.ShortLinkRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	rec, err := scanLink(db.dbpool.QueryRow(ctx, GetLinkQuery, name))
	if err != nil {
		return service.ShortLinkRecord{}, err
	}

	rec.VisitHistory, err = loadVisits(ctx, db.dbpool, name)
	if err != nil {
		db.logger.Errorw("Failed to load visit history", "name", name, "err", err)
		return service.ShortLinkRecord{}, err
	}
	return rec, nil
}
