// ABOUTME: Tenant administration handlers, admin role only.
// ABOUTME: Tenants are created, patched, and soft-deactivated here.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hvilches/clubtrack/internal/models"
)

// requireAdmin gates the tenant endpoints on the resolved role.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if sessionFrom(r.Context()).Role != models.RoleAdmin {
		writeError(w, http.StatusForbidden, "administrator role required")
		return false
	}
	return true
}

func (s *Server) handleListTenants(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	tenants, err := s.svc.ListTenants(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tenants)
}

func (s *Server) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var t models.Tenant
	if !decodeBody(w, r, &t) {
		return
	}
	id, err := s.svc.CreateTenant(r.Context(), &t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, writeBody{ID: id})
}

func (s *Server) handleUpdateTenant(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	var patch map[string]any
	if !decodeBody(w, r, &patch) {
		return
	}
	if err := s.svc.UpdateTenant(r.Context(), mux.Vars(r)["id"], patch); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, writeBody{ID: mux.Vars(r)["id"]})
}

func (s *Server) handleDeactivateTenant(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}
	if err := s.svc.DeactivateTenant(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, writeBody{ID: mux.Vars(r)["id"]})
}
