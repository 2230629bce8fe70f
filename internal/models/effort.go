// ABOUTME: Daily effort perception (RPE) record, keyed by (player, local date).
// ABOUTME: Single 1-10 ordinal with optional comments.
package models

import (
	"fmt"
	"time"
)

// EffortRecord is one daily RPE questionnaire answer. Same natural key and
// upsert lifecycle as WellnessRecord.
type EffortRecord struct {
	ID        string    `json:"id,omitempty"`
	PlayerID  string    `json:"jugadorId"`
	TenantID  string    `json:"clienteId"`
	Date      string    `json:"fecha"`
	Score     int       `json:"rpe"`
	Comments  string    `json:"comentarios"`
	CreatedAt time.Time `json:"creadoEn"`
	Timezone  string    `json:"zonaHoraria,omitempty"`
}

// Validate checks the RPE score range.
func (e *EffortRecord) Validate() error {
	if e.Score < 1 || e.Score > 10 {
		return fmt.Errorf("rpe must be between 1 and 10, got %d", e.Score)
	}
	return nil
}
