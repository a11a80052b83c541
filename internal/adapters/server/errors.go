package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/core/domain"
)

// statusFor maps scheduler errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidPackagePath),
		errors.Is(err, domain.ErrNoPlatforms),
		errors.Is(err, domain.ErrInvalidConfig),
		errors.Is(err, domain.ErrChildSpawnFailed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrPackageNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSessionRunning):
		return http.StatusConflict
	case errors.Is(err, domain.ErrCookFailed):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, cookv1.ErrorResponse{Error: msg, Code: status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
