// ABOUTME: Training task and gym exercise catalog models.
// ABOUTME: Classification is free text, autocompleted from prior values.
package models

import "time"

// Task kinds.
const (
	TaskKindField = "campo"
	TaskKindGym   = "gimnasio"
)

// Task is a reusable training exercise definition. Field tasks and gym
// exercises share the shape; gym exercises additionally list muscle groups.
type Task struct {
	ID             string    `json:"id,omitempty"`
	Name           string    `json:"nombre"`
	Classification string    `json:"clasificacion"`
	Objective      string    `json:"objetivo,omitempty"`
	ImageURL       string    `json:"imagenUrl,omitempty"`
	Link           string    `json:"enlace,omitempty"`
	TenantID       string    `json:"clienteId"`
	Kind           string    `json:"tipoTarea"`
	MuscleGroups   []string  `json:"gruposMusculares,omitempty"`
	CreatedAt      time.Time `json:"creadoEn"`
}
