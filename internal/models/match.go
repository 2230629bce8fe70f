// ABOUTME: Match model for the club's competition schedule.
// ABOUTME: Match writes are mirrored into the tenant calendar.
package models

import "time"

// Match status values.
const (
	MatchScheduled = "programado"
	MatchPlayed    = "jugado"
	MatchCancelled = "cancelado"
)

// Match is one scheduled competition fixture.
type Match struct {
	ID         string    `json:"id,omitempty"`
	Tournament string    `json:"torneo"`
	Round      string    `json:"jornada,omitempty"`
	Opponent   string    `json:"rival"`
	Date       string    `json:"fecha"` // YYYY-MM-DD
	Time       string    `json:"horario"`
	Venue      string    `json:"sede,omitempty"`
	Status     string    `json:"estado"`
	Result     string    `json:"resultado,omitempty"`
	Notes      string    `json:"notas,omitempty"`
	TenantID   string    `json:"clienteId"`
	CreatedAt  time.Time `json:"creadoEn"`
}
