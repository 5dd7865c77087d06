package stats

import (
	"context"

	"github.com/google/uuid"
)

// System defines the interface for aggregate reporting queries.
type System interface {
	Summarize(ctx context.Context, jobID uuid.UUID) (*ExtractionSummary, error)
	Statistics(ctx context.Context) (*ProcessingStatistics, error)
}
