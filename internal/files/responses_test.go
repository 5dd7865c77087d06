package files_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/internal/files"
)

func testFile() *files.UploadedFile {
	return &files.UploadedFile{
		ID:          uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Filename:    "statement-march.pdf",
		FilePath:    "/uploads/2024/statement-march.pdf",
		FileSize:    204800,
		ContentType: "application/pdf",
		UploadDate:  time.Date(2024, time.March, 20, 8, 0, 0, 0, time.UTC),
	}
}

func TestNewFileUploadResponse(t *testing.T) {
	resp := files.NewFileUploadResponse(testFile(), "upload accepted")

	if resp.FileID != testFile().ID {
		t.Errorf("FileID = %v, want %v", resp.FileID, testFile().ID)
	}
	if resp.UploadDate != "2024-03-20T08:00:00Z" {
		t.Errorf("UploadDate = %q, want 2024-03-20T08:00:00Z", resp.UploadDate)
	}
	if resp.Message != "upload accepted" {
		t.Errorf("Message = %q, want upload accepted", resp.Message)
	}
}

func TestNewFileResponse_NormalizesToUTC(t *testing.T) {
	f := testFile()
	loc := time.FixedZone("UTC+2", 2*60*60)
	f.UploadDate = time.Date(2024, time.March, 20, 10, 0, 0, 0, loc)

	resp := files.NewFileResponse(f)

	if resp.UploadDate != "2024-03-20T08:00:00Z" {
		t.Errorf("UploadDate = %q, want 2024-03-20T08:00:00Z", resp.UploadDate)
	}
}
