package jobs

import "github.com/stmtkit/stmtkit/pkg/decode"

// ExtractionDetails is the typed view of the well-known metadata keys the
// extraction worker records. Keys outside this set stay reachable through
// the raw Metadata map.
type ExtractionDetails struct {
	PagesProcessed   int     `json:"pages_processed"`
	ExtractionMethod string  `json:"extraction_method"`
	Confidence       float64 `json:"confidence"`
}

// Details projects the metadata into its typed view. Absent keys leave
// zero values; mismatched types surface as an error.
func (m Metadata) Details() (ExtractionDetails, error) {
	return decode.FromMap[ExtractionDetails](m.ToMap())
}
