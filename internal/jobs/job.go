// Package jobs provides the domain system for PDF extraction jobs. A job is
// one attempt to extract transactions from an uploaded file and moves through
// pending, processing, and a terminal completed or failed state.
package jobs

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// MaxErrorMessageLength is the error_message column limit.
const MaxErrorMessageLength = 1000

// Status represents the lifecycle state of an extraction job.
type Status string

// Status values. Transitions are monotonic: pending moves to processing,
// processing ends in completed or failed, and terminal states are final.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Validate checks if the status is a member of the enumeration.
func (s Status) Validate() error {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid job status: %q", string(s))
	}
}

// Terminal reports whether the status permits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// UnmarshalJSON rejects status values outside the enumeration.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	status := Status(raw)
	if err := status.Validate(); err != nil {
		return err
	}

	*s = status
	return nil
}

// ExtractionJob represents one attempt to extract transactions from an
// uploaded PDF.
type ExtractionJob struct {
	ID                     uuid.UUID  `json:"id"`
	UploadedFileID         uuid.UUID  `json:"uploaded_file_id"`
	Status                 Status     `json:"status"`
	StartedAt              *time.Time `json:"started_at,omitempty"`
	CompletedAt            *time.Time `json:"completed_at,omitempty"`
	ErrorMessage           *string    `json:"error_message,omitempty"`
	TotalTransactionsFound int        `json:"total_transactions_found"`
	Metadata               Metadata   `json:"extraction_metadata,omitempty"`
	CreatedAt              time.Time  `json:"created_at"`
}

// JobDetail joins an extraction job with its parent file's name for output.
type JobDetail struct {
	ExtractionJob
	Filename string `json:"filename"`
}

// CreateCommand contains the data required to queue a new extraction job.
type CreateCommand struct {
	UploadedFileID uuid.UUID `json:"uploaded_file_id"`
}

// Validate checks the command fields.
func (c CreateCommand) Validate() error {
	var errs validation.Errors

	if c.UploadedFileID == uuid.Nil {
		errs.Add("uploaded_file_id", "is required")
	}

	return errs.Err()
}
