// Package transactions provides the domain system for credit card line items
// extracted from statement PDFs. Amounts are fixed-point decimals and dates
// are calendar dates, both carried as strings across the API boundary.
package transactions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// Column length limits enforced by the transactions schema.
const (
	MaxDescriptionLength = 500
	MaxRawTextLength     = 1000
)

// Transaction represents one extracted credit card line item.
type Transaction struct {
	ID              uuid.UUID       `json:"id"`
	ExtractionJobID uuid.UUID       `json:"extraction_job_id"`
	TransactionDate Date            `json:"transaction_date"`
	BillingDate     *Date           `json:"billing_date,omitempty"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	RawText         *string         `json:"raw_text,omitempty"`
	PageNumber      *int            `json:"page_number,omitempty"`
	LineNumber      *int            `json:"line_number,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreateCommand contains the data required to record an extracted transaction.
type CreateCommand struct {
	ExtractionJobID uuid.UUID       `json:"extraction_job_id"`
	TransactionDate Date            `json:"transaction_date"`
	BillingDate     *Date           `json:"billing_date,omitempty"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	RawText         *string         `json:"raw_text,omitempty"`
	PageNumber      *int            `json:"page_number,omitempty"`
	LineNumber      *int            `json:"line_number,omitempty"`
}

// Validate checks the command against schema limits.
func (c CreateCommand) Validate() error {
	var errs validation.Errors

	if c.ExtractionJobID == uuid.Nil {
		errs.Add("extraction_job_id", "is required")
	}
	if c.TransactionDate.IsZero() {
		errs.Add("transaction_date", "is required")
	}

	errs.Required("description", c.Description)
	errs.MaxLength("description", c.Description, MaxDescriptionLength)

	if err := ValidateAmount(c.Amount); err != nil {
		errs.Add("amount", "%s", err.Error())
	}

	if c.RawText != nil {
		errs.MaxLength("raw_text", *c.RawText, MaxRawTextLength)
	}
	if c.PageNumber != nil && *c.PageNumber < 1 {
		errs.Add("page_number", "must be positive")
	}
	if c.LineNumber != nil && *c.LineNumber < 1 {
		errs.Add("line_number", "must be positive")
	}

	return errs.Err()
}

// UpdateCommand contains the fields that can be modified on an existing
// transaction. Nil fields are left unchanged.
type UpdateCommand struct {
	TransactionDate *Date            `json:"transaction_date,omitempty"`
	BillingDate     *Date            `json:"billing_date,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
}

// Validate checks the provided fields against schema limits.
func (c UpdateCommand) Validate() error {
	var errs validation.Errors

	if c.TransactionDate != nil && c.TransactionDate.IsZero() {
		errs.Add("transaction_date", "must be a valid date")
	}
	if c.Description != nil {
		errs.Required("description", *c.Description)
		errs.MaxLength("description", *c.Description, MaxDescriptionLength)
	}
	if c.Amount != nil {
		if err := ValidateAmount(*c.Amount); err != nil {
			errs.Add("amount", "%s", err.Error())
		}
	}

	return errs.Err()
}

// Empty reports whether the command carries no changes.
func (c UpdateCommand) Empty() bool {
	return c.TransactionDate == nil &&
		c.BillingDate == nil &&
		c.Description == nil &&
		c.Amount == nil
}
