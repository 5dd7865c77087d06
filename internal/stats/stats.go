// Package stats provides read-only aggregate projections over the extraction
// schema: per-job summaries and service-wide processing statistics.
package stats

import (
	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/internal/jobs"
)

// DateRange bounds the transaction dates found in a job, both inclusive,
// rendered as ISO-8601 date strings.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ExtractionSummary is the transfer shape summarizing one job's results.
// Ranges, totals, and timing are absent until the data exists to compute them.
type ExtractionSummary struct {
	JobID             uuid.UUID   `json:"job_id"`
	Filename          string      `json:"filename"`
	Status            jobs.Status `json:"status"`
	TotalTransactions int         `json:"total_transactions"`
	DateRange         *DateRange  `json:"date_range,omitempty"`
	TotalAmount       *string     `json:"total_amount,omitempty"`
	ProcessingTime    *float64    `json:"processing_time,omitempty"`
}

// ProcessingStatistics is the transfer shape for service-wide aggregates.
// SuccessRate is the percentage of terminal jobs that completed.
type ProcessingStatistics struct {
	TotalFilesUploaded         int      `json:"total_files_uploaded"`
	TotalJobsCompleted         int      `json:"total_jobs_completed"`
	TotalTransactionsExtracted int      `json:"total_transactions_extracted"`
	AverageProcessingTime      *float64 `json:"average_processing_time,omitempty"`
	SuccessRate                float64  `json:"success_rate"`
}
