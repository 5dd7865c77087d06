package transactions

import (
	"errors"
	"net/http"

	"github.com/stmtkit/stmtkit/pkg/repository"
	"github.com/stmtkit/stmtkit/pkg/validation"
)

// Domain errors for transaction operations.
var (
	ErrNotFound    = errors.New("transaction not found")
	ErrDuplicate   = errors.New("transaction already exists")
	ErrJobNotFound = errors.New("extraction job not found")
	ErrNoChanges   = errors.New("update contains no changes")
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
	if errors.Is(err, ErrJobNotFound) || errors.Is(err, ErrNoChanges) {
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
