package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"urlite/internal/auth"
	"urlite/internal/domain"
	"urlite/pkg/validator"
)

// Response helpers for consistent API responses.
// Every failure, the redirect route included, gets a JSON body — never an
// HTML error page.

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a successful response
type SuccessResponse struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message,omitempty"`
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing sensible left to do
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, ErrorResponse{
		Error: message,
	})
}

// respondSuccess sends a success response
func respondSuccess(w http.ResponseWriter, statusCode int, data interface{}, message string) {
	respondJSON(w, statusCode, SuccessResponse{
		Data:    data,
		Message: message,
	})
}

var validationErrors = []error{
	validator.ErrEmptyURL,
	validator.ErrInvalidURL,
	validator.ErrInvalidScheme,
	validator.ErrInvalidHost,
	validator.ErrInvalidAliasLength,
	validator.ErrInvalidAliasFormat,
	validator.ErrEmptyName,
	validator.ErrEmptyEmail,
	validator.ErrInvalidEmail,
	validator.ErrPasswordTooShort,
}

// respondServiceError maps a service-layer error onto the HTTP taxonomy:
// validation 400, auth 401, ownership 403, unknown 404, conflicts 409,
// anything unexpected 500 with a generic message.
func respondServiceError(w http.ResponseWriter, err error) {
	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrLoginRequired),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, auth.ErrNoToken),
		errors.Is(err, auth.ErrInvalidToken):
		respondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrNotOwner):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAliasTaken),
		errors.Is(err, domain.ErrEmailTaken):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "server error")
	}
}
