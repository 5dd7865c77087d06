package jobs

import (
	"errors"
	"net/http"

	"github.com/stmtkit/stmtkit/pkg/repository"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// Domain errors for extraction job operations.
var (
	ErrNotFound          = errors.New("extraction job not found")
	ErrDuplicate         = errors.New("extraction job already exists")
	ErrFileNotFound      = errors.New("uploaded file not found")
	ErrInvalidTransition = errors.New("job status does not permit this transition")
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
	if errors.Is(err, ErrFileNotFound) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidTransition) {
		return http.StatusConflict
	}
	if errors.Is(err, repository.ErrConstraint) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
