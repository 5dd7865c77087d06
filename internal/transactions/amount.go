package transactions

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Amount constraints matching the NUMERIC(10, 2) column: at most ten total
// digits, two of them after the decimal point.
const (
	AmountMaxDigits = 10
	AmountScale     = 2
)

// amountLimit is the first value with too many integer digits: 10^8.
var amountLimit = decimal.New(1, AmountMaxDigits-AmountScale)

// ValidateAmount checks a monetary amount against the column precision.
// Amounts must be exact fixed-point values; binary floats never enter here.
func ValidateAmount(d decimal.Decimal) error {
	if d.Exponent() < -AmountScale {
		return fmt.Errorf("amount %s has more than %d decimal places", d.String(), AmountScale)
	}
	if d.Abs().Cmp(amountLimit) >= 0 {
		return fmt.Errorf("amount %s exceeds %d total digits", d.String(), AmountMaxDigits)
	}
	return nil
}

// ParseAmount parses a decimal string and validates its precision.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// FormatAmount renders an amount with exactly two decimal places, the
// lossless wire representation.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountScale)
}
