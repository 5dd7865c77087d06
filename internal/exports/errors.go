package exports

import (
	"errors"
	"net/http"

	"github.com/stmtkit/stmtkit/pkg/repository"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// Domain errors for export record operations.
var (
	ErrNotFound    = errors.New("export record not found")
	ErrDuplicate   = errors.New("export file path already recorded")
	ErrJobNotFound = errors.New("extraction job not found")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrJobNotFound) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, repository.ErrConstraint) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
