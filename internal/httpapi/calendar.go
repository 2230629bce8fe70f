// ABOUTME: Calendar feed handlers, including the SSE live subscription.
// ABOUTME: Watch streams full feed snapshots on every change.
package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func (s *Server) handleListCalendar(w http.ResponseWriter, r *http.Request) {
	activities, err := s.svc.ListActivities(r.Context(), sessionFrom(r.Context()),
		r.URL.Query().Get("date"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// handleWatchCalendar streams the tenant's feed as server-sent events, one
// full snapshot per change, until the client disconnects.
func (s *Server) handleWatchCalendar(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	snapshots, err := s.svc.WatchActivities(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for snap := range snapshots {
		data, err := json.Marshal(snap)
		if err != nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return
		}
		flusher.Flush()
	}
}
