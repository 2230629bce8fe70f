// ABOUTME: API handlers for rosters, fixtures, catalogs, and sessions.
// ABOUTME: Thin decode/call/respond wrappers over the club service.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hvilches/clubtrack/internal/models"
)

// Players

func (s *Server) handleListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := s.svc.ListPlayers(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (s *Server) handleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var p models.Player
	if !decodeBody(w, r, &p) {
		return
	}
	res, err := s.svc.CreatePlayer(r.Context(), sessionFrom(r.Context()), &p)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, true, res)
}

func (s *Server) handleUpdatePlayer(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if !decodeBody(w, r, &patch) {
		return
	}
	res, err := s.svc.UpdatePlayer(r.Context(), sessionFrom(r.Context()), mux.Vars(r)["id"], patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}

func (s *Server) handleDeactivatePlayer(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.DeactivatePlayer(r.Context(), sessionFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}

// Matches

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.svc.ListMatches(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleCreateMatch(w http.ResponseWriter, r *http.Request) {
	var m models.Match
	if !decodeBody(w, r, &m) {
		return
	}
	res, err := s.svc.CreateMatch(r.Context(), sessionFrom(r.Context()), &m)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, true, res)
}

func (s *Server) handleUpdateMatch(w http.ResponseWriter, r *http.Request) {
	var m models.Match
	if !decodeBody(w, r, &m) {
		return
	}
	res, err := s.svc.UpdateMatch(r.Context(), sessionFrom(r.Context()), mux.Vars(r)["id"], &m)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}

func (s *Server) handleDeleteMatch(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.DeleteMatch(r.Context(), sessionFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}

// Tasks and gym exercises

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := s.svc.ListTasks(r.Context(), sessionFrom(r.Context()), r.URL.Query().Get("kind"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var t models.Task
	if !decodeBody(w, r, &t) {
		return
	}
	res, err := s.svc.CreateTask(r.Context(), sessionFrom(r.Context()), &t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, true, res)
}

func (s *Server) handleClassifications(w http.ResponseWriter, r *http.Request) {
	values, err := s.svc.Classifications(r.Context(), sessionFrom(r.Context()), r.URL.Query().Get("kind"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, values)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if !decodeBody(w, r, &patch) {
		return
	}
	res, err := s.svc.UpdateTask(r.Context(), sessionFrom(r.Context()),
		r.URL.Query().Get("kind"), mux.Vars(r)["id"], patch)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	res, err := s.svc.DeleteTask(r.Context(), sessionFrom(r.Context()),
		r.URL.Query().Get("kind"), mux.Vars(r)["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}

// Training sessions

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.svc.ListSessions(r.Context(), sessionFrom(r.Context()), mux.Vars(r)["collection"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var ts models.TrainingSession
	if !decodeBody(w, r, &ts) {
		return
	}
	res, err := s.svc.CreateSession(r.Context(), sessionFrom(r.Context()), mux.Vars(r)["collection"], &ts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, true, res)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	var ts models.TrainingSession
	if !decodeBody(w, r, &ts) {
		return
	}
	vars := mux.Vars(r)
	res, err := s.svc.UpdateSession(r.Context(), sessionFrom(r.Context()), vars["collection"], vars["id"], &ts)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := s.svc.DeleteSession(r.Context(), sessionFrom(r.Context()), vars["collection"], vars["id"])
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeResult(w, false, res)
}
