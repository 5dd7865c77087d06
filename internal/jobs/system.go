package jobs

import (
	"context"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/pagination"
)

// System defines the interface for extraction job storage and lifecycle operations.
// Start, Complete, and Fail are the worker-facing transitions; each only
// applies when the job is in the expected prior state.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*JobDetail, error)
	Find(ctx context.Context, id uuid.UUID) (*JobDetail, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[JobDetail], error)
	Start(ctx context.Context, id uuid.UUID) (*ExtractionJob, error)
	Complete(ctx context.Context, id uuid.UUID, totalFound int, metadata Metadata) (*ExtractionJob, error)
	Fail(ctx context.Context, id uuid.UUID, message string) (*ExtractionJob, error)
}
