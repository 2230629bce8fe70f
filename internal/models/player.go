// ABOUTME: Player model for club rosters.
// ABOUTME: Provisioned by staff; carries position and physical attributes.
package models

import "time"

// Player is a club member who fills in the daily questionnaires.
type Player struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	TenantID  string    `json:"clienteId"`
	Status    string    `json:"estado"`
	Position  string    `json:"posicion,omitempty"`
	HeightCm  float64   `json:"altura,omitempty"`
	WeightKg  float64   `json:"peso,omitempty"`
	Photo     string    `json:"foto,omitempty"`
	CreatedAt time.Time `json:"creadoEn"`
}

// NewPlayer creates an active player for a tenant.
func NewPlayer(tenantID, name, email string) *Player {
	return &Player{
		Name:      name,
		Email:     email,
		TenantID:  tenantID,
		Status:    StatusActive,
		CreatedAt: time.Now(),
	}
}
