// ABOUTME: Tests for the task and gym-exercise catalogs.
// ABOUTME: Covers kind routing and classification autocomplete.
package club

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hvilches/clubtrack/internal/models"
)

func TestCreateTaskRoutesByKind(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, staffSession, &models.Task{Name: "Rondo 4v2"})
	require.NoError(t, err)
	_, err = svc.CreateTask(ctx, staffSession, &models.Task{
		Name: "Sentadilla", Kind: models.TaskKindGym,
	})
	require.NoError(t, err)

	field, err := svc.ListTasks(ctx, staffSession, models.TaskKindField)
	require.NoError(t, err)
	require.Len(t, field, 1)
	require.Equal(t, "Rondo 4v2", field[0].Name)
	require.Equal(t, models.TaskKindField, field[0].Kind, "empty kind defaults to campo")

	gym, err := svc.ListTasks(ctx, staffSession, models.TaskKindGym)
	require.NoError(t, err)
	require.Len(t, gym, 1)
	require.Equal(t, "Sentadilla", gym[0].Name)
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateTask(ctx, staffSession, &models.Task{})
	require.ErrorContains(t, err, "name")
	_, err = svc.CreateTask(ctx, staffSession, &models.Task{Name: "x", Kind: "bogus"})
	require.ErrorContains(t, err, "unknown task kind")
}

func TestClassificationsDistinctSorted(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	seed := []models.Task{
		{Name: "Rondo 4v2", Classification: "posesion"},
		{Name: "Rondo 5v2", Classification: "posesion"},
		{Name: "Tiro a puerta", Classification: "finalizacion"},
		{Name: "Sin clasificar"},
	}
	for i := range seed {
		_, err := svc.CreateTask(ctx, staffSession, &seed[i])
		require.NoError(t, err)
	}
	// Gym classifications live in their own catalog.
	_, err := svc.CreateTask(ctx, staffSession, &models.Task{
		Name: "Sentadilla", Kind: models.TaskKindGym, Classification: "fuerza",
	})
	require.NoError(t, err)

	got, err := svc.Classifications(ctx, staffSession, models.TaskKindField)
	require.NoError(t, err)
	require.Equal(t, []string{"finalizacion", "posesion"}, got)
}

func TestDeleteTaskLeavesSessionsUntouched(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateTask(ctx, staffSession, &models.Task{Name: "Rondo 4v2"})
	require.NoError(t, err)

	ts := fieldSession()
	_, err = svc.CreateSession(ctx, staffSession, models.CollectionFieldSess, ts)
	require.NoError(t, err)

	_, err = svc.DeleteTask(ctx, staffSession, models.TaskKindField, res.ID)
	require.NoError(t, err)

	sessions, err := svc.ListSessions(ctx, staffSession, models.CollectionFieldSess)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Equal(t, "Rondo 4v2", sessions[0].Assignments[1].Task,
		"sessions keep their copied task names")
}

func TestUpdateTask(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateTask(ctx, staffSession, &models.Task{Name: "Rondo 4v2"})
	require.NoError(t, err)

	_, err = svc.UpdateTask(ctx, staffSession, models.TaskKindField, res.ID,
		map[string]any{"clasificacion": "posesion"})
	require.NoError(t, err)

	tasks, err := svc.ListTasks(ctx, staffSession, models.TaskKindField)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "posesion", tasks[0].Classification)
}
