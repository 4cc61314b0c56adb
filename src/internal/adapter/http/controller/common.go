package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mahfadha/wallet-gateway/src/internal/domain"
	"github.com/mahfadha/wallet-gateway/src/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps service errors onto HTTP statuses. Validation failures
// are 400 except the rate-limit kinds, which get 429 so clients can back off.
func statusForError(err error) int {
	var verr *validation.Error
	if errors.As(err, &verr) {
		switch verr.Kind {
		case validation.KindRateLimitCooldown, validation.KindRateLimitAttemptsExceeded:
			return http.StatusTooManyRequests
		default:
			return http.StatusBadRequest
		}
	}

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateTransfer):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnsupportedByDriver):
		return http.StatusNotImplemented
	case errors.Is(err, domain.ErrBackendUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
