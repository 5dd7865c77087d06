package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/internal/exports"
	"github.com/stmtkit/stmtkit/internal/jobs"
	"github.com/stmtkit/stmtkit/internal/transactions"
)

func init() {
	registerSeeder(&StatementSeeder{})
}

// StatementSeeder populates a representative extraction history: a fully
// processed statement with transactions and an export, a queued statement,
// and a failed one.
type StatementSeeder struct{}

// Name returns "statements" as the seeder identifier.
func (s *StatementSeeder) Name() string {
	return "statements"
}

// Description returns a human-readable description of this seeder.
func (s *StatementSeeder) Description() string {
	return "Seeds sample uploaded files, extraction jobs, transactions, and exports"
}

type seedTransaction struct {
	date        string
	description string
	amount      string
	page        int
	line        int
}

var seedTransactions = []seedTransaction{
	{"2026-07-03", "GROCERY MART #1042", "84.17", 1, 12},
	{"2026-07-09", "CITY TRANSIT MONTHLY PASS", "96.00", 1, 19},
	{"2026-07-14", "BOOKSHOP ON MAIN", "32.50", 2, 4},
	{"2026-07-21", "STREAMING SERVICE", "15.99", 2, 11},
	{"2026-07-28", "AIRLINE REFUND", "-120.00", 3, 2},
}

// Seed inserts the sample statement history. File rows are keyed on
// file_path so reruns reuse them; jobs and transactions are appended.
func (s *StatementSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	completedFile, err := s.seedFile(ctx, tx, "statement_2026_07.pdf", 482_113)
	if err != nil {
		return err
	}

	if err := s.seedCompletedJob(ctx, tx, completedFile); err != nil {
		return err
	}

	pendingFile, err := s.seedFile(ctx, tx, "statement_2026_08.pdf", 511_902)
	if err != nil {
		return err
	}
	if err := s.seedPendingJob(ctx, tx, pendingFile); err != nil {
		return err
	}

	failedFile, err := s.seedFile(ctx, tx, "statement_scan_blurry.pdf", 1_204_558)
	if err != nil {
		return err
	}
	return s.seedFailedJob(ctx, tx, failedFile)
}

func (s *StatementSeeder) seedFile(ctx context.Context, tx *sql.Tx, filename string, size int64) (uuid.UUID, error) {
	id := uuid.New()
	path := fmt.Sprintf("/data/uploads/%s", filename)

	q := `INSERT INTO uploaded_files(id, filename, file_path, file_size, content_type)
		VALUES($1, $2, $3, $4, 'application/pdf')
		ON CONFLICT (file_path) DO UPDATE SET filename = EXCLUDED.filename
		RETURNING id`

	if err := tx.QueryRowContext(ctx, q, id, filename, path, size).Scan(&id); err != nil {
		return uuid.Nil, fmt.Errorf("seed file %s: %w", filename, err)
	}
	return id, nil
}

func (s *StatementSeeder) seedCompletedJob(ctx context.Context, tx *sql.Tx, fileID uuid.UUID) error {
	jobID := uuid.New()
	started := time.Now().Add(-2 * time.Hour)
	completed := started.Add(42 * time.Second)

	metadata, err := json.Marshal(jobs.Metadata{
		"parser":     jobs.String("table-v2"),
		"pages":      jobs.Int(3),
		"confidence": jobs.Float(0.97),
	})
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	q := `INSERT INTO extraction_jobs(id, uploaded_file_id, status, started_at, completed_at,
			total_transactions_found, extraction_metadata)
		VALUES($1, $2, $3, $4, $5, $6, $7)`

	_, err = tx.ExecContext(ctx, q, jobID, fileID, string(jobs.StatusCompleted),
		started, completed, len(seedTransactions), metadata)
	if err != nil {
		return fmt.Errorf("seed completed job: %w", err)
	}

	for _, st := range seedTransactions {
		date, err := transactions.ParseDate(st.date)
		if err != nil {
			return err
		}
		amount, err := transactions.ParseAmount(st.amount)
		if err != nil {
			return err
		}

		raw := fmt.Sprintf("%s  %s  %s", st.date, st.description, st.amount)
		insert := `INSERT INTO transactions(id, extraction_job_id, transaction_date,
				description, amount, raw_text, page_number, line_number)
			VALUES($1, $2, $3, $4, $5, $6, $7, $8)`

		_, err = tx.ExecContext(ctx, insert, uuid.New(), jobID, date,
			st.description, amount, raw, st.page, st.line)
		if err != nil {
			return fmt.Errorf("seed transaction %s: %w", st.description, err)
		}
	}

	export := `INSERT INTO export_records(id, extraction_job_id, format, filename, file_path, download_count)
		VALUES($1, $2, $3, $4, $5, 2)
		ON CONFLICT (file_path) DO NOTHING`

	filename := fmt.Sprintf("statement_2026_07.%s", exports.FormatExcel.Extension())
	_, err = tx.ExecContext(ctx, export, uuid.New(), jobID, string(exports.FormatExcel),
		filename, fmt.Sprintf("/data/exports/%s", filename))
	if err != nil {
		return fmt.Errorf("seed export: %w", err)
	}

	return nil
}

func (s *StatementSeeder) seedPendingJob(ctx context.Context, tx *sql.Tx, fileID uuid.UUID) error {
	q := `INSERT INTO extraction_jobs(id, uploaded_file_id) VALUES($1, $2)`
	if _, err := tx.ExecContext(ctx, q, uuid.New(), fileID); err != nil {
		return fmt.Errorf("seed pending job: %w", err)
	}
	return nil
}

func (s *StatementSeeder) seedFailedJob(ctx context.Context, tx *sql.Tx, fileID uuid.UUID) error {
	started := time.Now().Add(-30 * time.Minute)

	q := `INSERT INTO extraction_jobs(id, uploaded_file_id, status, started_at, completed_at, error_message)
		VALUES($1, $2, $3, $4, $5, $6)`

	_, err := tx.ExecContext(ctx, q, uuid.New(), fileID, string(jobs.StatusFailed),
		started, started.Add(3*time.Second), "no transaction table detected in document")
	if err != nil {
		return fmt.Errorf("seed failed job: %w", err)
	}
	return nil
}
