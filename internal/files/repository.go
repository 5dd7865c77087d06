package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/internal/config"
	"github.com/stmtkit/stmtkit/pkg/pagination"
	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	uploads    config.UploadsConfig
}

// New creates an uploaded file repository.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config, uploads config.UploadsConfig) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "files"),
		pagination: pagination,
		uploads:    uploads,
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*UploadedFile, error) {
	if err := cmd.Validate(&r.uploads); err != nil {
		return nil, err
	}

	q := `INSERT INTO uploaded_files(id, filename, file_path, file_size, content_type)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, filename, file_path, file_size, content_type, upload_date`

	file, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (UploadedFile, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.Filename, cmd.FilePath, cmd.FileSize, cmd.ContentType,
		}, scanFile)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrNotFound)
	}

	r.logger.Info("file recorded", "id", file.ID, "filename", file.Filename, "size", file.FileSize)
	return &file, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*UploadedFile, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("ID", id)

	file, err := repository.QueryOne(ctx, r.db, q, args, scanFile)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrNotFound)
	}
	return &file, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[UploadedFile], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderBy(page.Sort...)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.Count(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count uploaded files: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFile)
	if err != nil {
		return nil, fmt.Errorf("query uploaded files: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}

// Delete removes an uploaded file record. Deleting a missing file is a
// silent no-op so cleanup retries stay idempotent; a file referenced by
// extraction jobs returns ErrInUse.
func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := `DELETE FROM uploaded_files WHERE id = $1`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		return struct{}{}, repository.ExecExpectOne(ctx, tx, q, id)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return repository.MapError(err, ErrNotFound, ErrDuplicate, ErrInUse)
	}

	r.logger.Info("file deleted", "id", id)
	return nil
}
