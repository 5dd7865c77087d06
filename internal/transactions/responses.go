package transactions

import (
	"time"

	"github.com/google/uuid"
)

// TransactionResponse is the transfer shape for transaction output. Dates
// and amounts are strings so no precision is lost crossing the wire.
type TransactionResponse struct {
	ID              uuid.UUID `json:"id"`
	TransactionDate string    `json:"transaction_date"`
	BillingDate     *string   `json:"billing_date,omitempty"`
	Description     string    `json:"description"`
	Amount          string    `json:"amount"`
	PageNumber      *int      `json:"page_number,omitempty"`
	LineNumber      *int      `json:"line_number,omitempty"`
	CreatedAt       string    `json:"created_at"`
}

// NewTransactionResponse renders a transaction for API output.
func NewTransactionResponse(t *Transaction) TransactionResponse {
	var billing *string
	if t.BillingDate != nil {
		s := t.BillingDate.String()
		billing = &s
	}

	return TransactionResponse{
		ID:              t.ID,
		TransactionDate: t.TransactionDate.String(),
		BillingDate:     billing,
		Description:     t.Description,
		Amount:          FormatAmount(t.Amount),
		PageNumber:      t.PageNumber,
		LineNumber:      t.LineNumber,
		CreatedAt:       t.CreatedAt.UTC().Format(time.RFC3339),
	}
}
