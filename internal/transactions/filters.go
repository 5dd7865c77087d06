package transactions

import (
	"net/url"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/stmtkit/stmtkit/pkg/query"
)

// Filter contains optional predicates for transaction queries, AND-combined.
// Absent predicates impose no constraint; date and amount ranges are inclusive.
type Filter struct {
	StartDate           *Date
	EndDate             *Date
	MinAmount           *decimal.Decimal
	MaxAmount           *decimal.Decimal
	DescriptionContains *string
	PageNumber          *int
}

// FilterFromQuery extracts transaction filter predicates from URL query
// parameters. Unparseable values are ignored rather than matched.
func FilterFromQuery(values url.Values) Filter {
	var f Filter

	if raw := values.Get("start_date"); raw != "" {
		if d, err := ParseDate(raw); err == nil {
			f.StartDate = &d
		}
	}
	if raw := values.Get("end_date"); raw != "" {
		if d, err := ParseDate(raw); err == nil {
			f.EndDate = &d
		}
	}
	if raw := values.Get("min_amount"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			f.MinAmount = &d
		}
	}
	if raw := values.Get("max_amount"); raw != "" {
		if d, err := decimal.NewFromString(raw); err == nil {
			f.MaxAmount = &d
		}
	}
	if raw := values.Get("description_contains"); raw != "" {
		f.DescriptionContains = &raw
	}
	if raw := values.Get("page_number"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			f.PageNumber = &n
		}
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filter) Apply(b *query.Builder) *query.Builder {
	if f.StartDate != nil {
		b.WhereGte("TransactionDate", *f.StartDate)
	}
	if f.EndDate != nil {
		b.WhereLte("TransactionDate", *f.EndDate)
	}
	if f.MinAmount != nil {
		b.WhereGte("Amount", *f.MinAmount)
	}
	if f.MaxAmount != nil {
		b.WhereLte("Amount", *f.MaxAmount)
	}
	b.WhereContains("Description", f.DescriptionContains)
	if f.PageNumber != nil {
		b.WhereEquals("PageNumber", *f.PageNumber)
	}
	return b
}
