// Package files provides the domain system for uploaded PDF statement files.
// Records are created once at upload time and immutable afterward; extraction
// jobs reference them by ID.
package files

import (
	"time"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/internal/config"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// Column length limits enforced by the uploaded_files schema.
const (
	MaxFilenameLength    = 255
	MaxFilePathLength    = 500
	MaxContentTypeLength = 100
)

// UploadedFile represents a stored PDF statement awaiting extraction.
type UploadedFile struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `json:"content_type"`
	UploadDate  time.Time `json:"upload_date"`
}

// CreateCommand contains the data required to record an uploaded file.
// The upload handler stores the bytes; this layer records where they live.
type CreateCommand struct {
	Filename    string `json:"filename"`
	FilePath    string `json:"file_path"`
	FileSize    int64  `json:"file_size"`
	ContentType string `json:"content_type"`
}

// Validate checks the command against schema limits and upload policy.
func (c CreateCommand) Validate(uploads *config.UploadsConfig) error {
	var errs validation.Errors

	errs.Required("filename", c.Filename)
	errs.MaxLength("filename", c.Filename, MaxFilenameLength)
	errs.Required("file_path", c.FilePath)
	errs.MaxLength("file_path", c.FilePath, MaxFilePathLength)
	errs.Required("content_type", c.ContentType)
	errs.MaxLength("content_type", c.ContentType, MaxContentTypeLength)

	if c.FileSize <= 0 {
		errs.Add("file_size", "must be positive")
	} else if max := uploads.MaxFileSizeBytes(); c.FileSize > max {
		errs.Add("file_size", "exceeds maximum upload size of %d bytes", max)
	}

	if c.ContentType != "" && !uploads.AllowsContentType(c.ContentType) {
		errs.Add("content_type", "%s is not an accepted content type", c.ContentType)
	}

	return errs.Err()
}
