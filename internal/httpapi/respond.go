// ABOUTME: JSON response helpers and the store-error to status mapping.
// ABOUTME: Degraded writes answer 202 so clients can show saved-offline state.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hvilches/clubtrack/internal/club"
	"github.com/hvilches/clubtrack/internal/store"
)

type errorBody struct {
	Error string `json:"error"`
}

type writeBody struct {
	ID       string `json:"id"`
	Degraded bool   `json:"degraded,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// writeStoreError maps the error taxonomy onto HTTP statuses with the
// user-facing messages from the service layer.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, club.UserMessage(err))
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, club.UserMessage(err))
	case errors.Is(err, store.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, club.UserMessage(err))
	default:
		writeError(w, http.StatusBadRequest, err.Error())
	}
}

// writeResult answers a write: 200/201 on clean success, 202 when the record
// only reached the local fallback cache.
func writeResult(w http.ResponseWriter, created bool, res club.WriteResult) {
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	if res.Degraded {
		status = http.StatusAccepted
		degradedWrites.Inc()
	}
	writeJSON(w, status, writeBody{ID: res.ID, Degraded: res.Degraded})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}
