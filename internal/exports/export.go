// Package exports provides the domain system for generated export files.
// Each record describes an Excel or CSV rendering of a job's transactions
// and tracks how often it has been downloaded.
package exports

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// Column length limits enforced by the export_records schema.
const (
	MaxFilenameLength = 255
	MaxFilePathLength = 500
)

// Format identifies a supported export file format.
type Format string

// Supported export formats.
const (
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

// Validate checks if the format is a member of the enumeration.
func (f Format) Validate() error {
	switch f {
	case FormatExcel, FormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid export format: %q", string(f))
	}
}

// Extension returns the file extension for the format.
func (f Format) Extension() string {
	if f == FormatExcel {
		return "xlsx"
	}
	return "csv"
}

// UnmarshalJSON rejects format values outside the enumeration.
func (f *Format) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	format := Format(raw)
	if err := format.Validate(); err != nil {
		return err
	}

	*f = format
	return nil
}

// ExportRecord represents a generated export file for a job's transactions.
type ExportRecord struct {
	ID              uuid.UUID `json:"id"`
	ExtractionJobID uuid.UUID `json:"extraction_job_id"`
	Format          Format    `json:"format"`
	Filename        string    `json:"filename"`
	FilePath        string    `json:"file_path"`
	CreatedAt       time.Time `json:"created_at"`
	DownloadCount   int       `json:"download_count"`
}

// ExportRequest is the transfer shape asking the export generator to render
// a job's transactions. Format defaults to excel when omitted.
type ExportRequest struct {
	ExtractionJobID uuid.UUID `json:"extraction_job_id"`
	Format          Format    `json:"format"`
	IncludeMetadata bool      `json:"include_metadata"`
}

// Validate checks the request fields, applying the format default.
func (r *ExportRequest) Validate() error {
	var errs validation.Errors

	if r.ExtractionJobID == uuid.Nil {
		errs.Add("extraction_job_id", "is required")
	}

	if r.Format == "" {
		r.Format = FormatExcel
	} else if err := r.Format.Validate(); err != nil {
		errs.Add("format", "%s", err.Error())
	}

	return errs.Err()
}

// CreateCommand contains the data required to record a generated export.
// The export generator writes the file; this layer records where it lives.
type CreateCommand struct {
	ExtractionJobID uuid.UUID `json:"extraction_job_id"`
	Format          Format    `json:"format"`
	Filename        string    `json:"filename"`
	FilePath        string    `json:"file_path"`
}

// Validate checks the command against schema limits.
func (c CreateCommand) Validate() error {
	var errs validation.Errors

	if c.ExtractionJobID == uuid.Nil {
		errs.Add("extraction_job_id", "is required")
	}
	if err := c.Format.Validate(); err != nil {
		errs.Add("format", "%s", err.Error())
	}

	errs.Required("filename", c.Filename)
	errs.MaxLength("filename", c.Filename, MaxFilenameLength)
	errs.Required("file_path", c.FilePath)
	errs.MaxLength("file_path", c.FilePath, MaxFilePathLength)

	return errs.Err()
}
