package query_test

import (
	"testing"

	"github.com/stmtkit/stmtkit/pkg/query"
)

func TestProjectionMap_Table(t *testing.T) {
	p := query.NewProjectionMap("public", "extraction_jobs", "j").
		Project("id", "ID")

	if got, want := p.Table(), "public.extraction_jobs j"; got != want {
		t.Errorf("Table() = %q, want %q", got, want)
	}

	p.Join("JOIN public.uploaded_files f ON f.id = j.uploaded_file_id")

	want := "public.extraction_jobs j JOIN public.uploaded_files f ON f.id = j.uploaded_file_id"
	if got := p.Table(); got != want {
		t.Errorf("Table() with join = %q, want %q", got, want)
	}
}

func TestProjectionMap_Columns(t *testing.T) {
	p := query.NewProjectionMap("public", "extraction_jobs", "j").
		Project("id", "ID").
		Project("status", "Status").
		ProjectJoined("f.filename", "Filename")

	if got, want := p.Columns(), "j.id, j.status, f.filename"; got != want {
		t.Errorf("Columns() = %q, want %q", got, want)
	}
}

func TestProjectionMap_Column(t *testing.T) {
	p := query.NewProjectionMap("public", "transactions", "t").
		Project("transaction_date", "TransactionDate").
		ProjectJoined("f.filename", "Filename")

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{"base table field", "TransactionDate", "t.transaction_date"},
		{"joined field", "Filename", "f.filename"},
		{"unknown field", "Missing", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Column(tt.field); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.field, got, tt.want)
			}
		})
	}
}

func TestProjectionMap_HasField(t *testing.T) {
	p := query.NewProjectionMap("public", "transactions", "t").
		Project("amount", "Amount")

	if !p.HasField("Amount") {
		t.Error("HasField(Amount) = false, want true")
	}
	if p.HasField("amount") {
		t.Error("HasField(amount) = true, want false")
	}
}
