package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stmtkit/stmtkit/internal/jobs"
	"github.com/stmtkit/stmtkit/internal/transactions"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a statistics repository.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "stats"),
	}
}

func (r *repo) Summarize(ctx context.Context, jobID uuid.UUID) (*ExtractionSummary, error) {
	q := `SELECT j.id, f.filename, j.status, COUNT(t.id),
			MIN(t.transaction_date), MAX(t.transaction_date), SUM(t.amount),
			EXTRACT(EPOCH FROM (j.completed_at - j.started_at))
		FROM extraction_jobs j
		JOIN uploaded_files f ON f.id = j.uploaded_file_id
		LEFT JOIN transactions t ON t.extraction_job_id = j.id
		WHERE j.id = $1
		GROUP BY j.id, f.filename, j.status, j.started_at, j.completed_at`

	var (
		summary   ExtractionSummary
		status    string
		startDate sql.NullTime
		endDate   sql.NullTime
		total     decimal.NullDecimal
		seconds   sql.NullFloat64
	)

	err := r.db.QueryRowContext(ctx, q, jobID).Scan(
		&summary.JobID,
		&summary.Filename,
		&status,
		&summary.TotalTransactions,
		&startDate,
		&endDate,
		&total,
		&seconds,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, jobs.ErrNotFound
		}
		return nil, fmt.Errorf("summarize job: %w", err)
	}

	summary.Status = jobs.Status(status)
	if err := summary.Status.Validate(); err != nil {
		return nil, err
	}

	if startDate.Valid && endDate.Valid {
		summary.DateRange = &DateRange{
			Start: transactions.DateOf(startDate.Time).String(),
			End:   transactions.DateOf(endDate.Time).String(),
		}
	}
	if total.Valid {
		s := transactions.FormatAmount(total.Decimal)
		summary.TotalAmount = &s
	}
	if seconds.Valid {
		summary.ProcessingTime = &seconds.Float64
	}

	return &summary, nil
}

func (r *repo) Statistics(ctx context.Context) (*ProcessingStatistics, error) {
	q := `SELECT
			(SELECT COUNT(*) FROM uploaded_files),
			(SELECT COUNT(*) FROM extraction_jobs WHERE status = 'completed'),
			(SELECT COUNT(*) FROM transactions),
			(SELECT AVG(EXTRACT(EPOCH FROM (completed_at - started_at)))
				FROM extraction_jobs WHERE status = 'completed'),
			(SELECT COUNT(*) FROM extraction_jobs WHERE status IN ('completed', 'failed'))`

	var (
		result   ProcessingStatistics
		average  sql.NullFloat64
		terminal int
	)

	err := r.db.QueryRowContext(ctx, q).Scan(
		&result.TotalFilesUploaded,
		&result.TotalJobsCompleted,
		&result.TotalTransactionsExtracted,
		&average,
		&terminal,
	)
	if err != nil {
		return nil, fmt.Errorf("query statistics: %w", err)
	}

	if average.Valid {
		result.AverageProcessingTime = &average.Float64
	}
	result.SuccessRate = SuccessRate(result.TotalJobsCompleted, terminal)

	return &result, nil
}

// SuccessRate returns completed as a percentage of terminal jobs, or zero
// when no job has reached a terminal state.
func SuccessRate(completed, terminal int) float64 {
	if terminal == 0 {
		return 0
	}
	return float64(completed) / float64(terminal) * 100
}
