package exports

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an export record repository.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "exports"),
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*ExportRecord, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO export_records(id, extraction_job_id, format, filename, file_path)
		VALUES($1, $2, $3, $4, $5)
		RETURNING ` + exportColumns

	record, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (ExportRecord, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.ExtractionJobID, string(cmd.Format), cmd.Filename, cmd.FilePath,
		}, scanExport)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrJobNotFound)
	}

	r.logger.Info("export recorded",
		"id", record.ID,
		"extraction_job_id", record.ExtractionJobID,
		"format", record.Format,
	)
	return &record, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*ExportRecord, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("ID", id)

	record, err := repository.QueryOne(ctx, r.db, q, args, scanExport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrJobNotFound)
	}
	return &record, nil
}

func (r *repo) ListForJob(ctx context.Context, jobID uuid.UUID) ([]ExportRecord, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("ExtractionJobID", jobID).
		BuildSelect()

	records, err := repository.QueryMany(ctx, r.db, q, args, scanExport)
	if err != nil {
		return nil, fmt.Errorf("query exports: %w", err)
	}
	return records, nil
}

func (r *repo) RecordDownload(ctx context.Context, id uuid.UUID) (*ExportRecord, error) {
	q := `UPDATE export_records
		SET download_count = download_count + 1
		WHERE id = $1
		RETURNING ` + exportColumns

	record, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (ExportRecord, error) {
		return repository.QueryOne(ctx, tx, q, []any{id}, scanExport)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrJobNotFound)
	}

	r.logger.Info("download recorded", "id", record.ID, "download_count", record.DownloadCount)
	return &record, nil
}
