package contract

import (
	"errors"
	"net/http"

	"github.com/GuilhermeVerrone/process-mapper/internal/repository"
)

// StatusFor maps the error taxonomy onto the transport status codes the API
// boundary reports: validation and conflict failures are both client errors
// (the original API reports blocked deletes as 400, not 409), missing
// records are 404, credential failures are 401, everything else is 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, repository.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
