package jobs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/pagination"
	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an extraction job repository.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "jobs"),
		pagination: pagination,
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*JobDetail, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO extraction_jobs(id, uploaded_file_id)
		VALUES($1, $2)
		RETURNING ` + jobColumns

	job, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (ExtractionJob, error) {
		return repository.QueryOne(ctx, tx, q, []any{uuid.New(), cmd.UploadedFileID}, scanJob)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrFileNotFound)
	}

	r.logger.Info("job queued", "id", job.ID, "uploaded_file_id", job.UploadedFileID)
	return r.Find(ctx, job.ID)
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*JobDetail, error) {
	q, args := query.
		NewBuilder(detailProjection).
		BuildSingle("ID", id)

	detail, err := repository.QueryOne(ctx, r.db, q, args, scanJobDetail)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrFileNotFound)
	}
	return &detail, nil
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[JobDetail], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(detailProjection, defaultSort).
		WhereSearch(page.Search, "Filename", "ErrorMessage")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderBy(page.Sort...)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.Count(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count jobs: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	details, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanJobDetail)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	result := pagination.NewPageResult(details, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Start(ctx context.Context, id uuid.UUID) (*ExtractionJob, error) {
	q := `UPDATE extraction_jobs
		SET status = 'processing', started_at = NOW()
		WHERE id = $1 AND status = 'pending'
		RETURNING ` + jobColumns

	job, err := r.transition(ctx, id, q, []any{id})
	if err != nil {
		return nil, err
	}

	r.logger.Info("job started", "id", job.ID)
	return job, nil
}

func (r *repo) Complete(ctx context.Context, id uuid.UUID, totalFound int, metadata Metadata) (*ExtractionJob, error) {
	if totalFound < 0 {
		var errs validation.Errors
		errs.Add("total_transactions_found", "must be non-negative")
		return nil, errs.Err()
	}

	q := `UPDATE extraction_jobs
		SET status = 'completed', completed_at = NOW(),
			total_transactions_found = $2, extraction_metadata = $3
		WHERE id = $1 AND status = 'processing'
		RETURNING ` + jobColumns

	job, err := r.transition(ctx, id, q, []any{id, totalFound, metadata})
	if err != nil {
		return nil, err
	}

	r.logger.Info("job completed", "id", job.ID, "transactions_found", job.TotalTransactionsFound)
	return job, nil
}

func (r *repo) Fail(ctx context.Context, id uuid.UUID, message string) (*ExtractionJob, error) {
	var errs validation.Errors
	errs.Required("error_message", message)
	errs.MaxLength("error_message", message, MaxErrorMessageLength)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	q := `UPDATE extraction_jobs
		SET status = 'failed', completed_at = NOW(), error_message = $2
		WHERE id = $1 AND status IN ('pending', 'processing')
		RETURNING ` + jobColumns

	job, err := r.transition(ctx, id, q, []any{id, message})
	if err != nil {
		return nil, err
	}

	r.logger.Info("job failed", "id", job.ID, "error", message)
	return job, nil
}

// transition runs a guarded status update. A zero-row result means either
// the job is missing or its current status fails the guard; the two are
// distinguished so callers see ErrInvalidTransition rather than a spurious
// not-found.
func (r *repo) transition(ctx context.Context, id uuid.UUID, q string, args []any) (*ExtractionJob, error) {
	job, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (ExtractionJob, error) {
		return repository.QueryOne(ctx, tx, q, args, scanJob)
	})

	if err == nil {
		return &job, nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		var exists bool
		check := `SELECT EXISTS(SELECT 1 FROM extraction_jobs WHERE id = $1)`
		if checkErr := r.db.QueryRowContext(ctx, check, id).Scan(&exists); checkErr == nil && exists {
			return nil, ErrInvalidTransition
		}
		return nil, ErrNotFound
	}

	return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrFileNotFound)
}
