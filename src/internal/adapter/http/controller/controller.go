package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/securebank-core/src/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// httpStatus maps a failed service call to a response status. Validation
// failures are flagged through the response message, everything else through
// the domain sentinel errors.
func httpStatus(message string, err error) int {
	if message == "validation failed" {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, domain.ErrRecordNotFound), errors.Is(err, domain.ErrRecipientNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrInvalidAmount), errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
