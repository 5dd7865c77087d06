package jobs_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/internal/jobs"
)

func TestNewExtractionJobResponse(t *testing.T) {
	started := time.Date(2024, time.March, 20, 9, 0, 0, 0, time.UTC)
	completed := time.Date(2024, time.March, 20, 9, 0, 42, 0, time.UTC)

	detail := &jobs.JobDetail{
		ExtractionJob: jobs.ExtractionJob{
			ID:                     uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			UploadedFileID:         uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Status:                 jobs.StatusCompleted,
			StartedAt:              &started,
			CompletedAt:            &completed,
			TotalTransactionsFound: 37,
		},
		Filename: "statement-march.pdf",
	}

	resp := jobs.NewExtractionJobResponse(detail)

	if resp.Status != jobs.StatusCompleted {
		t.Errorf("Status = %s, want completed", resp.Status)
	}
	if resp.StartedAt == nil || *resp.StartedAt != "2024-03-20T09:00:00Z" {
		t.Errorf("StartedAt = %v, want 2024-03-20T09:00:00Z", resp.StartedAt)
	}
	if resp.CompletedAt == nil || *resp.CompletedAt != "2024-03-20T09:00:42Z" {
		t.Errorf("CompletedAt = %v, want 2024-03-20T09:00:42Z", resp.CompletedAt)
	}
	if resp.TotalTransactionsFound != 37 {
		t.Errorf("TotalTransactionsFound = %d, want 37", resp.TotalTransactionsFound)
	}
	if resp.Filename != "statement-march.pdf" {
		t.Errorf("Filename = %q, want statement-march.pdf", resp.Filename)
	}
}

func TestNewExtractionJobResponse_PendingOmitsOptionals(t *testing.T) {
	detail := &jobs.JobDetail{
		ExtractionJob: jobs.ExtractionJob{
			ID:             uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			UploadedFileID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Status:         jobs.StatusPending,
		},
		Filename: "statement.pdf",
	}

	resp := jobs.NewExtractionJobResponse(detail)

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, absent := range []string{"started_at", "completed_at", "error_message"} {
		if strings.Contains(string(data), absent) {
			t.Errorf("Marshal() = %s, want %s omitted", data, absent)
		}
	}
	if !strings.Contains(string(data), `"total_transactions_found":0`) {
		t.Errorf("Marshal() = %s, want zero count present", data)
	}
}
