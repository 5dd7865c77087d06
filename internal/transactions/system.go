package transactions

import (
	"context"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/pagination"
)

// System defines the interface for transaction storage and retrieval operations.
// List is scoped to a single extraction job; the filter narrows within it.
type System interface {
	Create(ctx context.Context, cmd CreateCommand) (*Transaction, error)
	Find(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Transaction, error)
	List(ctx context.Context, jobID uuid.UUID, page pagination.PageRequest, filter Filter) (*pagination.PageResult[Transaction], error)
}
