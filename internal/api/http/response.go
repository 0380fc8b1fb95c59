package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/RupeshP0713/roomrent-backend/internal/domain"
	"github.com/RupeshP0713/roomrent-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

type errorBody struct {
	Error          string `json:"error"`
	HoursRemaining *int   `json:"hoursRemaining,omitempty"`
}

// writeError maps domain errors onto HTTP status codes. Admission denials are
// client errors and carry the remaining wait in whole hours.
func writeError(w http.ResponseWriter, err error) {
	var admission *domain.AdmissionError
	if errors.As(err, &admission) {
		hours := admission.HoursRemaining
		writeJSON(w, http.StatusBadRequest, errorBody{Error: admission.Error(), HoursRemaining: &hours})
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus), errors.Is(err, domain.ErrDuplicateID):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	default:
		logger.Error("internal error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
		return false
	}
	return true
}
