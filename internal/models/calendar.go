// ABOUTME: Calendar activity model, the denormalized weekly-feed entry.
// ABOUTME: Carries a source reference plus the legacy human-readable title.
package models

import (
	"fmt"
	"strings"
	"time"
)

// Calendar activity source types.
const (
	SourceMatch   = "partido"
	SourceSession = "sesion"
)

// Title tags. The legacy schema identified activity kinds only by these
// prefixes embedded in the title.
const (
	TagMatch        = "⚽"
	TagFieldSession = "🏃"
	TagGymSession   = "🏋️"
	TagIndivSession = "👤"
)

// CalendarActivity is one entry in a tenant's weekly activity feed. It is
// written as a side effect of match and training-session writes. SourceType
// and SourceID reference the originating document; legacy documents lack them
// and are reconciled by title substring instead.
type CalendarActivity struct {
	ID         string    `json:"id,omitempty"`
	Title      string    `json:"titulo"`
	Time       string    `json:"hora,omitempty"`
	Date       string    `json:"fecha"`
	TenantID   string    `json:"clienteId"`
	CreatedBy  string    `json:"creadoPor,omitempty"`
	CreatedAt  time.Time `json:"creadoEn"`
	SourceType string    `json:"origenTipo,omitempty"`
	SourceID   string    `json:"origenId,omitempty"`
}

// MatchActivityTitle builds the feed title for a match. The "vs {rival}"
// substring is load-bearing: legacy reconciliation matches on it.
func MatchActivityTitle(m *Match) string {
	title := fmt.Sprintf("%s vs %s", TagMatch, m.Opponent)
	if m.Tournament != "" {
		title += " - " + m.Tournament
	}
	return title
}

// SessionActivityTitle builds the feed title for a training session in the
// given collection, including the assignment count summary.
func SessionActivityTitle(collection string, s *TrainingSession) string {
	tag := TagFieldSession
	noun := "tareas"
	switch collection {
	case CollectionGymSess:
		tag = TagGymSession
		noun = "ejercicios"
	case CollectionIndivSess:
		tag = TagIndivSession
	}
	return fmt.Sprintf("%s Sesión %d - Microciclo %d (%d %s)",
		tag, s.Number, s.Microcycle, len(s.Assignments), noun)
}

// MatchesSource reports whether the activity mirrors the given source
// document. Activities with a stored reference match by id; legacy
// activities fall back to containment of the identifying substrings.
func (a *CalendarActivity) MatchesSource(sourceType, sourceID string, substrings ...string) bool {
	if a.SourceID != "" {
		return a.SourceType == sourceType && a.SourceID == sourceID
	}
	for _, sub := range substrings {
		if !strings.Contains(a.Title, sub) {
			return false
		}
	}
	return len(substrings) > 0
}
