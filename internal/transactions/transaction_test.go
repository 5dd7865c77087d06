package transactions_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stmtkit/stmtkit/internal/transactions"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

func validCreateCommand() transactions.CreateCommand {
	return transactions.CreateCommand{
		ExtractionJobID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		TransactionDate: transactions.NewDate(2024, time.March, 15),
		Description:     "COFFEE SHOP PURCHASE",
		Amount:          decimal.RequireFromString("4.75"),
	}
}

func TestCreateCommand_Validate(t *testing.T) {
	intPtr := func(n int) *int { return &n }

	tests := []struct {
		name      string
		modify    func(c *transactions.CreateCommand)
		wantField string
	}{
		{
			"valid command",
			func(c *transactions.CreateCommand) {},
			"",
		},
		{
			"missing job id",
			func(c *transactions.CreateCommand) { c.ExtractionJobID = uuid.Nil },
			"extraction_job_id",
		},
		{
			"missing transaction date",
			func(c *transactions.CreateCommand) { c.TransactionDate = transactions.Date{} },
			"transaction_date",
		},
		{
			"empty description",
			func(c *transactions.CreateCommand) { c.Description = "" },
			"description",
		},
		{
			"description at limit",
			func(c *transactions.CreateCommand) { c.Description = strings.Repeat("a", 500) },
			"",
		},
		{
			"description over limit",
			func(c *transactions.CreateCommand) { c.Description = strings.Repeat("a", 501) },
			"description",
		},
		{
			"multibyte description at limit",
			func(c *transactions.CreateCommand) { c.Description = strings.Repeat("é", 500) },
			"",
		},
		{
			"multibyte description over limit",
			func(c *transactions.CreateCommand) { c.Description = strings.Repeat("é", 501) },
			"description",
		},
		{
			"amount with too many decimal places",
			func(c *transactions.CreateCommand) { c.Amount = decimal.RequireFromString("1.005") },
			"amount",
		},
		{
			"raw text over limit",
			func(c *transactions.CreateCommand) {
				raw := strings.Repeat("x", 1001)
				c.RawText = &raw
			},
			"raw_text",
		},
		{
			"zero page number",
			func(c *transactions.CreateCommand) { c.PageNumber = intPtr(0) },
			"page_number",
		},
		{
			"negative line number",
			func(c *transactions.CreateCommand) { c.LineNumber = intPtr(-1) },
			"line_number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := validCreateCommand()
			tt.modify(&cmd)

			err := cmd.Validate()

			if tt.wantField == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			var verrs validation.Errors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error = %v, want validation.Errors", err)
			}
			found := false
			for _, fe := range verrs {
				if fe.Field == tt.wantField {
					found = true
				}
			}
			if !found {
				t.Errorf("Validate() errors = %v, want failure on %q", verrs, tt.wantField)
			}
		})
	}
}

func TestCreateCommand_ValidateCollectsAll(t *testing.T) {
	cmd := transactions.CreateCommand{}

	err := cmd.Validate()

	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		t.Fatalf("Validate() error = %v, want validation.Errors", err)
	}
	if len(verrs) < 3 {
		t.Errorf("Validate() collected %d failures, want at least 3", len(verrs))
	}
}

func TestUpdateCommand_Validate(t *testing.T) {
	strPtr := func(s string) *string { return &s }
	amtPtr := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	tests := []struct {
		name    string
		cmd     transactions.UpdateCommand
		wantErr bool
	}{
		{
			"empty command valid",
			transactions.UpdateCommand{},
			false,
		},
		{
			"description only",
			transactions.UpdateCommand{Description: strPtr("GROCERY STORE")},
			false,
		},
		{
			"blank description rejected",
			transactions.UpdateCommand{Description: strPtr("")},
			true,
		},
		{
			"description over limit rejected",
			transactions.UpdateCommand{Description: strPtr(strings.Repeat("a", 501))},
			true,
		},
		{
			"valid amount",
			transactions.UpdateCommand{Amount: amtPtr("19.99")},
			false,
		},
		{
			"amount precision rejected",
			transactions.UpdateCommand{Amount: amtPtr("1.999")},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()

			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateCommand_Empty(t *testing.T) {
	var cmd transactions.UpdateCommand

	if !cmd.Empty() {
		t.Error("Empty() on zero command = false, want true")
	}

	d := transactions.NewDate(2024, time.April, 1)
	cmd.BillingDate = &d

	if cmd.Empty() {
		t.Error("Empty() with billing date = true, want false")
	}
}
