package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/docker/go-units"
)

const (
	// EnvUploadsMaxFileSize overrides the maximum accepted upload size.
	EnvUploadsMaxFileSize = "UPLOADS_MAX_FILE_SIZE"

	// EnvUploadsContentTypes overrides the accepted content types (comma-separated).
	EnvUploadsContentTypes = "UPLOADS_CONTENT_TYPES"
)

// UploadsConfig constrains the uploaded file metadata the files system accepts.
type UploadsConfig struct {
	// MaxFileSize is a human-readable size limit, e.g. "50MB".
	MaxFileSize    string   `toml:"max_file_size"`
	ContentTypes   []string `toml:"content_types"`
	maxFileSizeVal int64
}

// MaxFileSizeBytes returns the parsed size limit in bytes.
func (c *UploadsConfig) MaxFileSizeBytes() int64 {
	return c.maxFileSizeVal
}

// AllowsContentType reports whether the given MIME type is accepted.
func (c *UploadsConfig) AllowsContentType(contentType string) bool {
	for _, ct := range c.ContentTypes {
		if strings.EqualFold(ct, contentType) {
			return true
		}
	}
	return false
}

// Finalize applies defaults, loads environment overrides, and validates the uploads configuration.
func (c *UploadsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *UploadsConfig) Merge(overlay *UploadsConfig) {
	if overlay.MaxFileSize != "" {
		c.MaxFileSize = overlay.MaxFileSize
	}
	if len(overlay.ContentTypes) > 0 {
		c.ContentTypes = overlay.ContentTypes
	}
}

func (c *UploadsConfig) loadDefaults() {
	if c.MaxFileSize == "" {
		c.MaxFileSize = "50MB"
	}
	if len(c.ContentTypes) == 0 {
		c.ContentTypes = []string{"application/pdf"}
	}
}

func (c *UploadsConfig) loadEnv() {
	if v := os.Getenv(EnvUploadsMaxFileSize); v != "" {
		c.MaxFileSize = v
	}
	if v := os.Getenv(EnvUploadsContentTypes); v != "" {
		c.ContentTypes = strings.Split(v, ",")
	}
}

func (c *UploadsConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_file_size must be positive")
	}
	c.maxFileSizeVal = size

	return nil
}
