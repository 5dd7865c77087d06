package files

import (
	"errors"
	"net/http"

	"github.com/stmtkit/stmtkit/pkg/repository"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// Domain errors for uploaded file operations.
var (
	ErrNotFound  = errors.New("uploaded file not found")
	ErrDuplicate = errors.New("file path already recorded")
	ErrInUse     = errors.New("uploaded file is referenced by extraction jobs")
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
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInUse) {
		return http.StatusConflict
	}
	if errors.Is(err, repository.ErrConstraint) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
