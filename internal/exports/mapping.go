package exports

import (
	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "export_records", "e").
	Project("id", "ID").
	Project("extraction_job_id", "ExtractionJobID").
	Project("format", "Format").
	Project("filename", "Filename").
	Project("file_path", "FilePath").
	Project("created_at", "CreatedAt").
	Project("download_count", "DownloadCount")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

const exportColumns = `id, extraction_job_id, format, filename, file_path, created_at, download_count`

func scanExport(s repository.Scanner) (ExportRecord, error) {
	var e ExportRecord
	var format string
	err := s.Scan(
		&e.ID,
		&e.ExtractionJobID,
		&format,
		&e.Filename,
		&e.FilePath,
		&e.CreatedAt,
		&e.DownloadCount,
	)
	if err != nil {
		return e, err
	}

	e.Format = Format(format)
	if err := e.Format.Validate(); err != nil {
		return e, err
	}
	return e, nil
}
