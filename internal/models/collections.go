// ABOUTME: Collection name constants for the document store.
// ABOUTME: Names match the legacy schema so stored documents stay compatible.
package models

// Collection names. The calendar collection is logically nested per tenant
// (calendario/{tenantId}/actividades in the legacy schema); the store flattens
// that to the same tenant-scoped key space as every other collection.
const (
	CollectionTenants    = "clientes"
	CollectionStaff      = "staff"
	CollectionUsers      = "users"
	CollectionPlayers    = "jugadores"
	CollectionWellness   = "bienestar"
	CollectionEffort     = "percepcion-esfuerzo"
	CollectionMatches    = "partidos"
	CollectionTasks      = "tarea"
	CollectionGym        = "gimnasio"
	CollectionFieldSess  = "sesion-campo"
	CollectionGymSess    = "sesion-gimnasio"
	CollectionIndivSess  = "sesion-individual"
	CollectionActivities = "actividades"
)

// SessionCollections lists the training-session collections in display order.
var SessionCollections = []string{
	CollectionFieldSess, CollectionGymSess, CollectionIndivSess,
}
