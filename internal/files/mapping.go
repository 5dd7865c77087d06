package files

import (
	"github.com/stmtkit/stmtkit/pkg/query"
	"github.com/stmtkit/stmtkit/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "uploaded_files", "f").
	Project("id", "ID").
	Project("filename", "Filename").
	Project("file_path", "FilePath").
	Project("file_size", "FileSize").
	Project("content_type", "ContentType").
	Project("upload_date", "UploadDate")

var defaultSort = query.SortField{Field: "UploadDate", Descending: true}

func scanFile(s repository.Scanner) (UploadedFile, error) {
	var f UploadedFile
	err := s.Scan(
		&f.ID,
		&f.Filename,
		&f.FilePath,
		&f.FileSize,
		&f.ContentType,
		&f.UploadDate,
	)
	return f, err
}
