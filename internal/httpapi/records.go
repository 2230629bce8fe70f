// ABOUTME: API handlers for the daily wellness and RPE questionnaires.
// ABOUTME: Submissions upsert by (player, local date); reads answer today.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/hvilches/clubtrack/internal/models"
)

func (s *Server) handleSubmitWellness(w http.ResponseWriter, r *http.Request) {
	var rec models.WellnessRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	res, err := s.svc.SubmitWellness(r.Context(), sessionFrom(r.Context()), &rec)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, true, res)
}

func (s *Server) handleTodayWellness(w http.ResponseWriter, r *http.Request) {
	rec, err := s.svc.TodayWellness(r.Context(), sessionFrom(r.Context()), r.URL.Query().Get("player"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleListWellness(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := s.svc.ListWellness(r.Context(), sessionFrom(r.Context()),
		r.URL.Query().Get("player"), limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleSubmitEffort(w http.ResponseWriter, r *http.Request) {
	var rec models.EffortRecord
	if !decodeBody(w, r, &rec) {
		return
	}
	res, err := s.svc.SubmitEffort(r.Context(), sessionFrom(r.Context()), &rec)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, true, res)
}

func (s *Server) handleTodayEffort(w http.ResponseWriter, r *http.Request) {
	rec, err := s.svc.TodayEffort(r.Context(), sessionFrom(r.Context()), r.URL.Query().Get("player"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
