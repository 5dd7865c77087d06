package jobs

import (
	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
)

// detailProjection joins the parent file so reads can surface its filename.
var detailProjection = query.
	NewProjectionMap("public", "extraction_jobs", "j").
	Join("JOIN public.uploaded_files f ON f.id = j.uploaded_file_id").
	Project("id", "ID").
	Project("uploaded_file_id", "UploadedFileID").
	Project("status", "Status").
	Project("started_at", "StartedAt").
	Project("completed_at", "CompletedAt").
	Project("error_message", "ErrorMessage").
	Project("total_transactions_found", "TotalTransactionsFound").
	Project("extraction_metadata", "Metadata").
	Project("created_at", "CreatedAt").
	ProjectJoined("f.filename", "Filename")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

const jobColumns = `id, uploaded_file_id, status, started_at, completed_at,
		error_message, total_transactions_found, extraction_metadata, created_at`

func scanJob(s repository.Scanner) (ExtractionJob, error) {
	var j ExtractionJob
	var status string
	err := s.Scan(
		&j.ID,
		&j.UploadedFileID,
		&status,
		&j.StartedAt,
		&j.CompletedAt,
		&j.ErrorMessage,
		&j.TotalTransactionsFound,
		&j.Metadata,
		&j.CreatedAt,
	)
	if err != nil {
		return j, err
	}

	j.Status = Status(status)
	if err := j.Status.Validate(); err != nil {
		return j, err
	}
	return j, nil
}

func scanJobDetail(s repository.Scanner) (JobDetail, error) {
	var d JobDetail
	var status string
	err := s.Scan(
		&d.ID,
		&d.UploadedFileID,
		&status,
		&d.StartedAt,
		&d.CompletedAt,
		&d.ErrorMessage,
		&d.TotalTransactionsFound,
		&d.Metadata,
		&d.CreatedAt,
		&d.Filename,
	)
	if err != nil {
		return d, err
	}

	d.Status = Status(status)
	if err := d.Status.Validate(); err != nil {
		return d, err
	}
	return d, nil
}
