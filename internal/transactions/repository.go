package transactions

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/pagination"
	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a transaction repository.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "transactions"),
		pagination: pagination,
	}
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Transaction, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `INSERT INTO transactions(id, extraction_job_id, transaction_date, billing_date,
			description, amount, raw_text, page_number, line_number)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + transactionColumns

	var billing any
	if cmd.BillingDate != nil {
		billing = *cmd.BillingDate
	}

	txn, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Transaction, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			uuid.New(), cmd.ExtractionJobID, cmd.TransactionDate, billing,
			cmd.Description, cmd.Amount, cmd.RawText, cmd.PageNumber, cmd.LineNumber,
		}, scanTransaction)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrJobNotFound)
	}

	r.logger.Info("transaction recorded",
		"id", txn.ID,
		"extraction_job_id", txn.ExtractionJobID,
		"amount", FormatAmount(txn.Amount),
	)
	return &txn, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q, args := query.
		NewBuilder(projection).
		BuildSingle("ID", id)

	txn, err := repository.QueryOne(ctx, r.db, q, args, scanTransaction)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrJobNotFound)
	}
	return &txn, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Transaction, error) {
	if cmd.Empty() {
		return nil, ErrNoChanges
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	q := `UPDATE transactions
		SET transaction_date = COALESCE($2, transaction_date),
			billing_date = COALESCE($3, billing_date),
			description = COALESCE($4, description),
			amount = COALESCE($5, amount)
		WHERE id = $1
		RETURNING ` + transactionColumns

	txn, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Transaction, error) {
		return repository.QueryOne(ctx, tx, q, []any{
			id, cmd.TransactionDate, cmd.BillingDate, cmd.Description, cmd.Amount,
		}, scanTransaction)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate, ErrJobNotFound)
	}

	r.logger.Info("transaction updated", "id", txn.ID)
	return &txn, nil
}

func (r *repo) List(ctx context.Context, jobID uuid.UUID, page pagination.PageRequest, filter Filter) (*pagination.PageResult[Transaction], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("ExtractionJobID", jobID).
		WhereSearch(page.Search, "Description", "RawText")

	filter.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderBy(page.Sort...)
	}

	countSQL, countArgs := qb.BuildCount()
	total, err := repository.Count(ctx, r.db, countSQL, countArgs)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	records, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	result := pagination.NewPageResult(records, total, page.Page, page.PageSize)
	return &result, nil
}
