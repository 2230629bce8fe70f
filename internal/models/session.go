// ABOUTME: Training session model with an ordered assignment list.
// ABOUTME: Decodes legacy documents that used numbered tarea1..tareaN fields.
package models

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Assignment is one task or exercise slot inside a training session, with its
// prescription parameters.
type Assignment struct {
	Task        string `json:"tarea"`
	Repetitions string `json:"repeticiones,omitempty"`
	Duration    string `json:"tiempo,omitempty"`
	Rest        string `json:"descanso,omitempty"`
}

// TrainingSession is one planned field, gym, or individual session. The
// legacy schema stored assignments as numbered dynamic fields (tarea1,
// tarea2, ...); here they are an explicit ordered list, and UnmarshalJSON
// normalizes legacy documents on read, preserving numeric order.
type TrainingSession struct {
	ID          string       `json:"id,omitempty"`
	Date        string       `json:"fecha"`
	Time        string       `json:"hora,omitempty"`
	Microcycle  int          `json:"microciclo"`
	Number      int          `json:"numeroSesion"`
	Assignments []Assignment `json:"tareas"`
	TenantID    string       `json:"clienteId"`
	CreatedBy   string       `json:"creadoPor,omitempty"`
	CreatedAt   time.Time    `json:"creadoEn"`
}

// trainingSessionAlias avoids UnmarshalJSON recursion.
type trainingSessionAlias TrainingSession

// UnmarshalJSON decodes a session document, accepting both the current
// "tareas" list and the legacy tarea1..tareaN numbered fields.
func (s *TrainingSession) UnmarshalJSON(data []byte) error {
	var alias trainingSessionAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*s = TrainingSession(alias)
	if len(s.Assignments) > 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Assignments = legacyAssignments(raw)
	return nil
}

// legacyAssignments collects tarea1..tareaN fields in numeric order. Each
// value may be a bare task name or a full assignment object.
func legacyAssignments(raw map[string]json.RawMessage) []Assignment {
	type numbered struct {
		n int
		a Assignment
	}
	var found []numbered
	for key, val := range raw {
		rest, ok := strings.CutPrefix(key, "tarea")
		if !ok || rest == "" {
			continue
		}
		n, err := strconv.Atoi(rest)
		if err != nil || n < 1 {
			continue
		}

		var a Assignment
		if err := json.Unmarshal(val, &a); err != nil {
			var name string
			if err := json.Unmarshal(val, &name); err != nil || name == "" {
				continue
			}
			a = Assignment{Task: name}
		}
		found = append(found, numbered{n: n, a: a})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })
	out := make([]Assignment, 0, len(found))
	for _, f := range found {
		out = append(out, f.a)
	}
	return out
}
