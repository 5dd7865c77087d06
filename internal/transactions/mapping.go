package transactions

import (
	"database/sql"

	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "transactions", "t").
	Project("id", "ID").
	Project("extraction_job_id", "ExtractionJobID").
	Project("transaction_date", "TransactionDate").
	Project("billing_date", "BillingDate").
	Project("description", "Description").
	Project("amount", "Amount").
	Project("raw_text", "RawText").
	Project("page_number", "PageNumber").
	Project("line_number", "LineNumber").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "TransactionDate"}

const transactionColumns = `id, extraction_job_id, transaction_date, billing_date,
		description, amount, raw_text, page_number, line_number, created_at`

func scanTransaction(s repository.Scanner) (Transaction, error) {
	var t Transaction
	var billing sql.NullTime
	err := s.Scan(
		&t.ID,
		&t.ExtractionJobID,
		&t.TransactionDate,
		&billing,
		&t.Description,
		&t.Amount,
		&t.RawText,
		&t.PageNumber,
		&t.LineNumber,
		&t.CreatedAt,
	)
	if err != nil {
		return t, err
	}

	if billing.Valid {
		d := DateOf(billing.Time)
		t.BillingDate = &d
	}
	return t, nil
}
