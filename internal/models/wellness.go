// ABOUTME: Daily wellness questionnaire record, keyed by (player, local date).
// ABOUTME: Holds the conditional soreness validation rule.
package models

import (
	"errors"
	"fmt"
	"time"
)

// Soreness detail answers.
const (
	SorenessGeneral  = "general"
	SorenessSpecific = "especifico"
)

// SorenessDetailThreshold is the soreness score at or above which the player
// must describe the pain. Scores below it never require the detail fields.
const SorenessDetailThreshold = 3

// WellnessRecord is one daily wellness questionnaire answer set. At most one
// record exists per (player, local calendar date); the invariant is enforced
// by query-then-upsert, not by the store.
type WellnessRecord struct {
	ID           string    `json:"id,omitempty"`
	PlayerID     string    `json:"jugadorId"`
	TenantID     string    `json:"clienteId"`
	Date         string    `json:"fecha"` // YYYY-MM-DD, player-local
	Mood         int       `json:"estadoAnimo"`
	SleepHours   int       `json:"horasSueno"`
	SleepQuality int       `json:"calidadSueno"`
	Recovery     int       `json:"nivelRecuperacion"`
	Soreness     int       `json:"dolorMuscular"`
	SorenessType string    `json:"tipoDolorMuscular,omitempty"`
	SorenessZone string    `json:"zonaDolorMuscular,omitempty"`
	Comments     string    `json:"comentarios"`
	CreatedAt    time.Time `json:"creadoEn"`
	Timezone     string    `json:"zonaHoraria,omitempty"`
}

var errSorenessType = errors.New("tipoDolorMuscular is required when dolorMuscular >= 3")
var errSorenessZone = errors.New("zonaDolorMuscular is required for specific soreness")

// Validate checks the questionnaire before it is stored. All five ordinal
// scores must be answered (1-5). When soreness reaches the detail threshold
// the type is required, and a "especifico" type additionally requires a zone.
func (w *WellnessRecord) Validate() error {
	ordinals := []struct {
		name  string
		value int
	}{
		{"estadoAnimo", w.Mood},
		{"horasSueno", w.SleepHours},
		{"calidadSueno", w.SleepQuality},
		{"nivelRecuperacion", w.Recovery},
		{"dolorMuscular", w.Soreness},
	}
	for _, o := range ordinals {
		if o.value < 1 || o.value > 5 {
			return fmt.Errorf("%s must be between 1 and 5, got %d", o.name, o.value)
		}
	}

	if w.Soreness >= SorenessDetailThreshold {
		if w.SorenessType == "" {
			return errSorenessType
		}
		if w.SorenessType == SorenessSpecific && w.SorenessZone == "" {
			return errSorenessZone
		}
	}
	return nil
}
