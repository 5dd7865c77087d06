package exports

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for export record storage and retrieval operations.
// RecordDownload atomically increments the download counter.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*ExportRecord, error)
	Find(ctx context.Context, id uuid.UUID) (*ExportRecord, error)
	ListForJob(ctx context.Context, jobID uuid.UUID) ([]ExportRecord, error)
	RecordDownload(ctx context.Context, id uuid.UUID) (*ExportRecord, error)
}
