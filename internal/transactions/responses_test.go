package transactions_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stmtkit/stmtkit/internal/transactions"
)

func TestNewTransactionResponse(t *testing.T) {
	billing := transactions.NewDate(2024, time.March, 18)
	page := 2

	txn := &transactions.Transaction{
		ID:              uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		TransactionDate: transactions.NewDate(2024, time.March, 15),
		BillingDate:     &billing,
		Description:     "AIRLINE TICKET",
		Amount:          decimal.RequireFromString("349.9"),
		PageNumber:      &page,
		CreatedAt:       time.Date(2024, time.March, 20, 8, 30, 0, 0, time.UTC),
	}

	resp := transactions.NewTransactionResponse(txn)

	if resp.TransactionDate != "2024-03-15" {
		t.Errorf("TransactionDate = %q, want 2024-03-15", resp.TransactionDate)
	}
	if resp.BillingDate == nil || *resp.BillingDate != "2024-03-18" {
		t.Errorf("BillingDate = %v, want 2024-03-18", resp.BillingDate)
	}
	if resp.Amount != "349.90" {
		t.Errorf("Amount = %q, want 349.90", resp.Amount)
	}
	if resp.CreatedAt != "2024-03-20T08:30:00Z" {
		t.Errorf("CreatedAt = %q, want 2024-03-20T08:30:00Z", resp.CreatedAt)
	}
	if resp.PageNumber == nil || *resp.PageNumber != 2 {
		t.Errorf("PageNumber = %v, want 2", resp.PageNumber)
	}
}

func TestNewTransactionResponse_OptionalsOmitted(t *testing.T) {
	txn := &transactions.Transaction{
		ID:              uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		TransactionDate: transactions.NewDate(2024, time.March, 15),
		Description:     "GAS STATION",
		Amount:          decimal.RequireFromString("-52.00"),
		CreatedAt:       time.Date(2024, time.March, 20, 8, 30, 0, 0, time.UTC),
	}

	resp := transactions.NewTransactionResponse(txn)

	if resp.BillingDate != nil {
		t.Errorf("BillingDate = %v, want nil", resp.BillingDate)
	}
	if resp.Amount != "-52.00" {
		t.Errorf("Amount = %q, want -52.00", resp.Amount)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, absent := range []string{"billing_date", "page_number", "line_number"} {
		if strings.Contains(string(data), absent) {
			t.Errorf("Marshal() = %s, want %s omitted", data, absent)
		}
	}
	if !strings.Contains(string(data), `"amount":"-52.00"`) {
		t.Errorf("Marshal() = %s, want amount as string", data)
	}
}
