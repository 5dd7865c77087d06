// Package infrastructure provides core service initialization for application
// startup. It assembles the shared dependencies (logging, database) and the
// domain systems built on top of them.
package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stmtkit/stmtkit/internal/config"
	"github.com/stmtkit/stmtkit/internal/exports"
	"github.com/stmtkit/stmtkit/internal/files"
	"github.com/stmtkit/stmtkit/internal/jobs"
	"github.com/stmtkit/stmtkit/internal/logger"
	"github.com/stmtkit/stmtkit/internal/stats"
	"github.com/stmtkit/stmtkit/internal/transactions"
)

// Infrastructure holds the shared systems an API layer or worker requires:
// one logger, one connection pool, and a repository per domain.
type Infrastructure struct {
	Config *config.Config
	Logger *slog.Logger
	DB     *sql.DB

	Files        files.System
	Jobs         jobs.System
	Transactions transactions.System
	Exports      exports.System
	Stats        stats.System
}

// New initializes all systems from the application configuration.
// The configuration must already be finalized.
func New(cfg *config.Config) (*Infrastructure, error) {
	log := logger.New(&cfg.Logging)

	db, err := openDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Config:       cfg,
		Logger:       log,
		DB:           db,
		Files:        files.New(db, log, cfg.Pagination, cfg.Uploads),
		Jobs:         jobs.New(db, log, cfg.Pagination),
		Transactions: transactions.New(db, log, cfg.Pagination),
		Exports:      exports.New(db, log),
		Stats:        stats.New(db, log),
	}, nil
}

// Close releases the database connection pool.
func (i *Infrastructure) Close() error {
	return i.DB.Close()
}

func openDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeoutDuration())
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
