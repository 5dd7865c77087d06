package files

import (
	"context"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/pagination"
)

// System defines the interface for uploaded file storage and retrieval operations.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*UploadedFile, error)
	Find(ctx context.Context, id uuid.UUID) (*UploadedFile, error)
	List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[UploadedFile], error)
	Delete(ctx context.Context, id uuid.UUID) error
}
