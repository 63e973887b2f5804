package handler

import (
	"errors"
	"net/http"

	"github.com/noteshare/noteshare-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

// mapError translates service errors to an HTTP status and a user-visible
// message. Validation rejections keep their specific reason; backend and
// internal failures deliberately collapse to generic messages so nothing
// from the storage layer (including its credentials) can leak.
func mapError(err error) (int, errorResponse) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, model.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Error: "authentication required"}
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access denied"}
	case errors.Is(err, model.ErrMissingFile),
		errors.Is(err, model.ErrMissingClassNumber),
		errors.Is(err, model.ErrFileTooLarge),
		errors.Is(err, model.ErrInvalidExtension),
		errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, model.ErrStoreFailed):
		return http.StatusBadGateway, errorResponse{Error: "file storage failed"}
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound, errorResponse{Error: "not found"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}
}
