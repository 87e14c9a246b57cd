package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/marwanbukhori/commit-life/internal/ctxkeys"
	"github.com/marwanbukhori/commit-life/internal/repository"
	"github.com/marwanbukhori/commit-life/internal/service"
)

const maxBodyBytes = 1 << 20 // 1 MB

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON parses the request body into v with a size cap
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// respondServiceError maps service and repository sentinel errors to HTTP
// status codes. Unrecognized errors are logged and returned as 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrUserNotFound),
		errors.Is(err, repository.ErrPillarNotFound),
		errors.Is(err, repository.ErrHabitNotFound),
		errors.Is(err, repository.ErrCompanionNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrDuplicateEmail):
		respondError(w, http.StatusConflict, "an account with this email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, service.ErrUnauthorized):
		// Ownership failures read as absence so resource IDs can't be probed
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrPremiumRequired):
		respondError(w, http.StatusForbidden, "premium subscription required")
	case errors.Is(err, service.ErrPillarLimitReached):
		respondError(w, http.StatusForbidden, "free plan pillar limit reached, upgrade to add more")
	case errors.Is(err, service.ErrSelfTarget):
		respondError(w, http.StatusBadRequest, "cannot perform this action on your own account")
	default:
		slog.Error("request failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// location resolves the caller's timezone from the request context.
// Falls back to UTC for missing or unknown zones.
func location(r *http.Request) *time.Location {
	name := ctxkeys.Location(r.Context())
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
