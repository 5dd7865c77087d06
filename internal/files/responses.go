package files

import (
	"time"

	"github.com/google/uuid"
)

// FileUploadResponse is the transfer shape returned after an upload is
// recorded. Timestamps are rendered as RFC 3339 strings so the wire format
// is locale-independent.
type FileUploadResponse struct {
	FileID     uuid.UUID `json:"file_id"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"file_size"`
	UploadDate string    `json:"upload_date"`
	Message    string    `json:"message"`
}

// NewFileUploadResponse renders an uploaded file for API output.
func NewFileUploadResponse(f *UploadedFile, message string) FileUploadResponse {
	return FileUploadResponse{
		FileID:     f.ID,
		Filename:   f.Filename,
		FileSize:   f.FileSize,
		UploadDate: f.UploadDate.UTC().Format(time.RFC3339),
		Message:    message,
	}
}

// FileResponse is the transfer shape for uploaded file detail output.
type FileResponse struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	FileSize    int64     `json:"file_size"`
	ContentType string    `json:"content_type"`
	UploadDate  string    `json:"upload_date"`
}

// NewFileResponse renders an uploaded file for API output.
func NewFileResponse(f *UploadedFile) FileResponse {
	return FileResponse{
		ID:          f.ID,
		Filename:    f.Filename,
		FileSize:    f.FileSize,
		ContentType: f.ContentType,
		UploadDate:  f.UploadDate.UTC().Format(time.RFC3339),
	}
}
