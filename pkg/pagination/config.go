// Package pagination provides page-request parsing and page-result shapes
// for the list operations of every domain system.
package pagination

import (
	"fmt"
	"os"
	"strconv"
)

// Fallback page sizes applied when the configuration leaves them unset.
const (
	FallbackDefaultPageSize = 20
	FallbackMaxPageSize     = 100
)

// Environment variable names for pagination configuration.
const (
	EnvPaginationDefaultPageSize = "PAGINATION_DEFAULT_PAGE_SIZE"
	EnvPaginationMaxPageSize     = "PAGINATION_MAX_PAGE_SIZE"
)

// Config bounds the page sizes list operations will serve. DefaultPageSize
// applies when a request names no size; MaxPageSize caps what a request
// may ask for.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// Finalize applies fallbacks, loads environment overrides, and validates
// the configuration.
func (c *Config) Finalize() error {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = FallbackDefaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = FallbackMaxPageSize
	}

	c.DefaultPageSize = envInt(EnvPaginationDefaultPageSize, c.DefaultPageSize)
	c.MaxPageSize = envInt(EnvPaginationMaxPageSize, c.MaxPageSize)

	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

func (c *Config) validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("pagination: default_page_size must be positive, got %d", c.DefaultPageSize)
	}
	if c.MaxPageSize < 1 {
		return fmt.Errorf("pagination: max_page_size must be positive, got %d", c.MaxPageSize)
	}
	if c.DefaultPageSize > c.MaxPageSize {
		return fmt.Errorf("pagination: default_page_size %d exceeds max_page_size %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
