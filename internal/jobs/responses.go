package jobs

import (
	"time"

	"github.com/google/uuid"
)

// ExtractionJobResponse is the transfer shape for extraction job output.
// Timestamps are rendered as RFC 3339 strings; absent optionals stay null.
type ExtractionJobResponse struct {
	ID                     uuid.UUID `json:"id"`
	UploadedFileID         uuid.UUID `json:"uploaded_file_id"`
	Status                 Status    `json:"status"`
	StartedAt              *string   `json:"started_at,omitempty"`
	CompletedAt            *string   `json:"completed_at,omitempty"`
	ErrorMessage           *string   `json:"error_message,omitempty"`
	TotalTransactionsFound int       `json:"total_transactions_found"`
	Filename               string    `json:"filename"`
}

// NewExtractionJobResponse renders a job with its parent filename for API output.
func NewExtractionJobResponse(d *JobDetail) ExtractionJobResponse {
	return ExtractionJobResponse{
		ID:                     d.ID,
		UploadedFileID:         d.UploadedFileID,
		Status:                 d.Status,
		StartedAt:              formatTimestamp(d.StartedAt),
		CompletedAt:            formatTimestamp(d.CompletedAt),
		ErrorMessage:           d.ErrorMessage,
		TotalTransactionsFound: d.TotalTransactionsFound,
		Filename:               d.Filename,
	}
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
