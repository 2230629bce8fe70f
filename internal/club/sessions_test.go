// ABOUTME: Tests for training session planning and its calendar mirror.
// ABOUTME: Covers the three session collections and the watch stream.
package club

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
)

func fieldSession() *models.TrainingSession {
	return &models.TrainingSession{
		Date:       "2024-05-06",
		Time:       "18:00",
		Number:     1,
		Microcycle: 2,
		Assignments: []models.Assignment{
			{Task: "Activación"},
			{Task: "Rondo 4v2", Repetitions: "3"},
		},
	}
}

func TestCreateSessionMirrorsCalendar(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateSession(ctx, staffSession, models.CollectionFieldSess, fieldSession())
	require.NoError(t, err)
	require.False(t, res.Degraded)

	acts := activitiesOn(t, svc, "2024-05-06")
	require.Len(t, acts, 1)
	require.Equal(t, "🏃 Sesión 1 - Microciclo 2 (2 tareas)", acts[0].Title)
	require.Equal(t, models.SourceSession, acts[0].SourceType)
	require.Equal(t, res.ID, acts[0].SourceID)
}

func TestCreateSessionGymTitle(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CreateSession(context.Background(), staffSession,
		models.CollectionGymSess, fieldSession())
	require.NoError(t, err)

	acts := activitiesOn(t, svc, "2024-05-06")
	require.Len(t, acts, 1)
	require.Equal(t, "🏋️ Sesión 1 - Microciclo 2 (2 ejercicios)", acts[0].Title)
}

func TestCreateSessionRejectsUnknownCollection(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CreateSession(context.Background(), staffSession, "bogus", fieldSession())
	require.ErrorContains(t, err, "unknown session collection")

	_, err = svc.ListSessions(context.Background(), staffSession, "bogus")
	require.ErrorContains(t, err, "unknown session collection")
}

func TestCreateSessionRequiresDate(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	ts := fieldSession()
	ts.Date = ""
	_, err := svc.CreateSession(context.Background(), staffSession,
		models.CollectionFieldSess, ts)
	require.ErrorContains(t, err, "date")
}

func TestUpdateSessionMovesActivity(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateSession(ctx, staffSession, models.CollectionFieldSess, fieldSession())
	require.NoError(t, err)

	moved := fieldSession()
	moved.Date = "2024-05-07"
	moved.Assignments = append(moved.Assignments, models.Assignment{Task: "Finalización"})
	_, err = svc.UpdateSession(ctx, staffSession, models.CollectionFieldSess, res.ID, moved)
	require.NoError(t, err)

	require.Empty(t, activitiesOn(t, svc, "2024-05-06"))
	acts := activitiesOn(t, svc, "2024-05-07")
	require.Len(t, acts, 1)
	require.Equal(t, "🏃 Sesión 1 - Microciclo 2 (3 tareas)", acts[0].Title)
}

func TestDeleteSessionRemovesActivity(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreateSession(ctx, staffSession, models.CollectionFieldSess, fieldSession())
	require.NoError(t, err)

	_, err = svc.DeleteSession(ctx, staffSession, models.CollectionFieldSess, res.ID)
	require.NoError(t, err)

	_, err = svc.GetSession(ctx, staffSession, models.CollectionFieldSess, res.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Empty(t, activitiesOn(t, svc, "2024-05-06"))
}

func TestSessionCollectionsAreIndependent(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateSession(ctx, staffSession, models.CollectionFieldSess, fieldSession())
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, staffSession, models.CollectionGymSess, fieldSession())
	require.NoError(t, err)

	field, err := svc.ListSessions(ctx, staffSession, models.CollectionFieldSess)
	require.NoError(t, err)
	require.Len(t, field, 1)

	indiv, err := svc.ListSessions(ctx, staffSession, models.CollectionIndivSess)
	require.NoError(t, err)
	require.Empty(t, indiv)
}

func TestWatchActivitiesStreamsSnapshots(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := svc.WatchActivities(ctx, staffSession)
	require.NoError(t, err)

	require.Empty(t, recvActivities(t, ch), "initial snapshot is empty")

	scheduleTestMatch(t, svc)
	snap := recvActivities(t, ch)
	require.Len(t, snap, 1)
	require.Equal(t, "⚽ vs Rival FC - Liga Local", snap[0].Title)
}

func recvActivities(t *testing.T, ch <-chan []models.CalendarActivity) []models.CalendarActivity {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for calendar snapshot")
		return nil
	}
}
