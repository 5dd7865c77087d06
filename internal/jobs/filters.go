package jobs

import (
	"net/url"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/query"
)

// Filters contains optional criteria for filtering extraction job queries.
type Filters struct {
	UploadedFileID *uuid.UUID
	Status         *Status
}

// FiltersFromQuery extracts extraction job filters from URL query parameters.
// Invalid UUIDs and unknown statuses are ignored rather than matched.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if raw := values.Get("uploaded_file_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			f.UploadedFileID = &id
		}
	}

	if raw := values.Get("status"); raw != "" {
		status := Status(raw)
		if status.Validate() == nil {
			f.Status = &status
		}
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.UploadedFileID != nil {
		b.WhereEquals("UploadedFileID", *f.UploadedFileID)
	}
	if f.Status != nil {
		b.WhereEquals("Status", string(*f.Status))
	}
	return b
}
