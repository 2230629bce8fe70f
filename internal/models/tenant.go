// ABOUTME: Tenant (client) and staff user models.
// ABOUTME: Tenants are soft-deactivated, never hard-deleted.
package models

import "time"

// Tenant status values.
const (
	StatusActive   = "activo"
	StatusInactive = "inactivo"
)

// Tenant represents one club account. All other documents carry the tenant's
// id in clienteId for isolation.
type Tenant struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"nombre"`
	Club      string    `json:"club,omitempty"`
	Features  []string  `json:"funcionalidades"`
	Status    string    `json:"estado"`
	Logo      string    `json:"logo,omitempty"` // embedded data URL
	CreatedAt time.Time `json:"creadoEn"`
}

// Active reports whether the tenant is enabled.
func (t *Tenant) Active() bool {
	return t.Status != StatusInactive
}

// HasFeature reports whether a feature flag is enabled for the tenant.
func (t *Tenant) HasFeature(name string) bool {
	for _, f := range t.Features {
		if f == name {
			return true
		}
	}
	return false
}

// Staff roles.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RolePlayer = "jugador"
)

// StaffUser is a staff or admin account, resolved by email at session start.
type StaffUser struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	TenantID string `json:"clienteId"`
	Role     string `json:"rol"`
	Status   string `json:"estado"`
}
