package files

import (
	"net/url"

	"github.com/stmtkit/stmtkit/pkg/query"
)

// Filters contains optional criteria for filtering uploaded file queries.
type Filters struct {
	Filename    *string
	ContentType *string
}

// FiltersFromQuery extracts uploaded file filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("filename"); n != "" {
		f.Filename = &n
	}

	if ct := values.Get("content_type"); ct != "" {
		f.ContentType = &ct
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Filename", f.Filename).
		WhereContains("ContentType", f.ContentType)
}
