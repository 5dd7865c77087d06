package exports

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ExportResponse is the transfer shape for export record output.
type ExportResponse struct {
	ExportID    uuid.UUID `json:"export_id"`
	Filename    string    `json:"filename"`
	Format      Format    `json:"format"`
	CreatedAt   string    `json:"created_at"`
	DownloadURL string    `json:"download_url"`
}

// NewExportResponse renders an export record for API output. The download
// URL is derived from the record ID; serving the file is the API layer's job.
func NewExportResponse(e *ExportRecord) ExportResponse {
	return ExportResponse{
		ExportID:    e.ID,
		Filename:    e.Filename,
		Format:      e.Format,
		CreatedAt:   e.CreatedAt.UTC().Format(time.RFC3339),
		DownloadURL: fmt.Sprintf("/exports/%s/download", e.ID),
	}
}
