package query_test

import (
	"strings"
	"testing"

	"github.com/stmtkit/stmtkit/pkg/query"
)

func newTestProjection() *query.ProjectionMap {
	return query.NewProjectionMap("public", "transactions", "t").
		Project("id", "ID").
		Project("transaction_date", "TransactionDate").
		Project("description", "Description").
		Project("amount", "Amount").
		Project("page_number", "PageNumber")
}

func strPtr(s string) *string { return &s }

func TestBuilder_BuildCount(t *testing.T) {
	b := query.NewBuilder(newTestProjection())

	sql, args := b.BuildCount()

	want := "SELECT COUNT(*) FROM public.transactions t"
	if sql != want {
		t.Errorf("BuildCount() sql = %q, want %q", sql, want)
	}
	if len(args) != 0 {
		t.Errorf("BuildCount() args = %v, want empty", args)
	}
}

func TestBuilder_BuildPage(t *testing.T) {
	b := query.NewBuilder(newTestProjection(), query.SortField{Field: "TransactionDate"})

	sql, args := b.BuildPage(2, 10)

	if !strings.HasPrefix(sql, "SELECT t.id, t.transaction_date, t.description, t.amount, t.page_number FROM public.transactions t") {
		t.Errorf("BuildPage() sql = %q, missing select list", sql)
	}
	if !strings.Contains(sql, "ORDER BY t.transaction_date ASC") {
		t.Errorf("BuildPage() sql = %q, missing default order", sql)
	}
	if !strings.HasSuffix(sql, "LIMIT 10 OFFSET 10") {
		t.Errorf("BuildPage() sql = %q, want LIMIT 10 OFFSET 10", sql)
	}
	if len(args) != 0 {
		t.Errorf("BuildPage() args = %v, want empty", args)
	}
}

func TestBuilder_BuildSingle(t *testing.T) {
	b := query.NewBuilder(newTestProjection())

	sql, args := b.BuildSingle("ID", "abc")

	if !strings.HasSuffix(sql, "WHERE t.id = $1") {
		t.Errorf("BuildSingle() sql = %q, want WHERE t.id = $1 suffix", sql)
	}
	if len(args) != 1 || args[0] != "abc" {
		t.Errorf("BuildSingle() args = %v, want [abc]", args)
	}
}

func TestBuilder_Conditions(t *testing.T) {
	tests := []struct {
		name     string
		build    func(b *query.Builder)
		wantSQL  string
		wantArgs []any
	}{
		{
			"where equals",
			func(b *query.Builder) {
				b.WhereEquals("PageNumber", 3)
			},
			"WHERE t.page_number = $1",
			[]any{3},
		},
		{
			"where contains wraps pattern",
			func(b *query.Builder) {
				b.WhereContains("Description", strPtr("coffee"))
			},
			"WHERE t.description ILIKE $1",
			[]any{"%coffee%"},
		},
		{
			"where contains nil ignored",
			func(b *query.Builder) {
				b.WhereContains("Description", nil)
			},
			"",
			nil,
		},
		{
			"where gte and lte number sequentially",
			func(b *query.Builder) {
				b.WhereGte("TransactionDate", "2024-01-01")
				b.WhereLte("TransactionDate", "2024-01-31")
			},
			"WHERE t.transaction_date >= $1 AND t.transaction_date <= $2",
			[]any{"2024-01-01", "2024-01-31"},
		},
		{
			"where in",
			func(b *query.Builder) {
				b.WhereIn("PageNumber", []any{1, 2, 3})
			},
			"WHERE t.page_number IN ($1, $2, $3)",
			[]any{1, 2, 3},
		},
		{
			"where search across fields",
			func(b *query.Builder) {
				b.WhereSearch(strPtr("grocery"), "Description")
			},
			"WHERE (t.description ILIKE $1)",
			[]any{"%grocery%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection())
			tt.build(b)

			sql, args := b.BuildCount()

			if tt.wantSQL == "" {
				if strings.Contains(sql, "WHERE") {
					t.Errorf("BuildCount() sql = %q, want no WHERE clause", sql)
				}
			} else if !strings.HasSuffix(sql, tt.wantSQL) {
				t.Errorf("BuildCount() sql = %q, want suffix %q", sql, tt.wantSQL)
			}

			if len(args) != len(tt.wantArgs) {
				t.Fatalf("BuildCount() args = %v, want %v", args, tt.wantArgs)
			}
			for i := range args {
				if args[i] != tt.wantArgs[i] {
					t.Errorf("BuildCount() args[%d] = %v, want %v", i, args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestBuilder_OrderBy(t *testing.T) {
	tests := []struct {
		name      string
		sort      []query.SortField
		wantOrder string
	}{
		{
			"explicit sort overrides default",
			[]query.SortField{{Field: "Amount", Descending: true}},
			"ORDER BY t.amount DESC",
		},
		{
			"unknown fields ignored, falls back to default",
			[]query.SortField{{Field: "Bogus"}},
			"ORDER BY t.transaction_date ASC",
		},
		{
			"multiple sort fields",
			[]query.SortField{{Field: "Amount", Descending: true}, {Field: "ID"}},
			"ORDER BY t.amount DESC, t.id ASC",
		},
		{
			"no sort uses default",
			nil,
			"ORDER BY t.transaction_date ASC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := query.NewBuilder(newTestProjection(), query.SortField{Field: "TransactionDate"})
			b.OrderBy(tt.sort...)

			sql, _ := b.BuildSelect()

			if !strings.Contains(sql, tt.wantOrder) {
				t.Errorf("BuildSelect() sql = %q, want order %q", sql, tt.wantOrder)
			}
		})
	}
}
