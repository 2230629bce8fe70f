// ABOUTME: Tests for calendar activity titles and source matching.
// ABOUTME: Covers the legacy title-substring reconciliation fallback.
package models

import (
	"testing"
)

func TestMatchActivityTitle(t *testing.T) {
	tests := []struct {
		name  string
		match Match
		want  string
	}{
		{
			name:  "with tournament",
			match: Match{Opponent: "Rival FC", Tournament: "Liga Local"},
			want:  "⚽ vs Rival FC - Liga Local",
		},
		{
			name:  "without tournament",
			match: Match{Opponent: "Rival FC"},
			want:  "⚽ vs Rival FC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchActivityTitle(&tt.match); got != tt.want {
				t.Errorf("MatchActivityTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSessionActivityTitle(t *testing.T) {
	s := TrainingSession{
		Number:     2,
		Microcycle: 5,
		Assignments: []Assignment{
			{Task: "Rondo"}, {Task: "Finalización"}, {Task: "Vuelta a la calma"},
		},
	}

	tests := []struct {
		collection string
		want       string
	}{
		{CollectionFieldSess, "🏃 Sesión 2 - Microciclo 5 (3 tareas)"},
		{CollectionGymSess, "🏋️ Sesión 2 - Microciclo 5 (3 ejercicios)"},
		{CollectionIndivSess, "👤 Sesión 2 - Microciclo 5 (3 tareas)"},
	}

	for _, tt := range tests {
		t.Run(tt.collection, func(t *testing.T) {
			if got := SessionActivityTitle(tt.collection, &s); got != tt.want {
				t.Errorf("SessionActivityTitle(%s) = %q, want %q", tt.collection, got, tt.want)
			}
		})
	}
}

func TestMatchesSourceByReference(t *testing.T) {
	a := CalendarActivity{
		Title:      "⚽ vs Rival FC",
		SourceType: SourceMatch,
		SourceID:   "m1",
	}

	if !a.MatchesSource(SourceMatch, "m1", TagMatch, "vs Otro") {
		t.Error("expected match by source reference regardless of substrings")
	}
	if a.MatchesSource(SourceMatch, "m2", TagMatch, "vs Rival FC") {
		t.Error("expected mismatch for different source id")
	}
	if a.MatchesSource(SourceSession, "m1") {
		t.Error("expected mismatch for different source type")
	}
}

func TestMatchesSourceLegacyFallback(t *testing.T) {
	// Legacy activities carry no source reference; they match only when every
	// identifying substring appears in the title.
	a := CalendarActivity{Title: "⚽ vs Rival FC - Liga Local"}

	if !a.MatchesSource(SourceMatch, "m1", TagMatch, "vs Rival FC") {
		t.Error("expected legacy match by title substrings")
	}
	if a.MatchesSource(SourceMatch, "m1", TagMatch, "vs Otro Club") {
		t.Error("expected legacy mismatch for different opponent")
	}
	if a.MatchesSource(SourceMatch, "m1") {
		t.Error("expected no match without substrings")
	}
}
