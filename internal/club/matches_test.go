// ABOUTME: Tests for match scheduling and its calendar mirror.
// ABOUTME: Covers the delete-then-recreate reconciliation on updates.
package club

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hvilches/clubtrack/internal/localcache"
	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/pkg/logger"
)

func scheduleTestMatch(t *testing.T, svc *Service) WriteResult {
	t.Helper()
	res, err := svc.CreateMatch(context.Background(), staffSession, &models.Match{
		Opponent:   "Rival FC",
		Tournament: "Liga Local",
		Date:       "2024-06-01",
		Time:       "16:00",
	})
	require.NoError(t, err)
	return res
}

func activitiesOn(t *testing.T, svc *Service, date string) []models.CalendarActivity {
	t.Helper()
	acts, err := svc.ListActivities(context.Background(), staffSession, date)
	require.NoError(t, err)
	return acts
}

func TestCreateMatchMirrorsCalendar(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	res := scheduleTestMatch(t, svc)
	require.False(t, res.Degraded)

	acts := activitiesOn(t, svc, "2024-06-01")
	require.Len(t, acts, 1)
	require.Equal(t, "⚽ vs Rival FC - Liga Local", acts[0].Title)
	require.Equal(t, "16:00", acts[0].Time)
	require.Equal(t, models.SourceMatch, acts[0].SourceType)
	require.Equal(t, res.ID, acts[0].SourceID)
	require.Equal(t, staffSession.Email, acts[0].CreatedBy)
}

func TestCreateMatchValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateMatch(ctx, staffSession, &models.Match{Date: "2024-06-01"})
	require.ErrorContains(t, err, "opponent")
	_, err = svc.CreateMatch(ctx, staffSession, &models.Match{Opponent: "Rival FC"})
	require.ErrorContains(t, err, "date")
}

func TestCreateMatchDefaultsStatus(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	res := scheduleTestMatch(t, svc)

	m, err := svc.GetMatch(context.Background(), staffSession, res.ID)
	require.NoError(t, err)
	require.Equal(t, models.MatchScheduled, m.Status)
}

func TestUpdateMatchMovesCalendarActivity(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res := scheduleTestMatch(t, svc)

	updated := &models.Match{
		Opponent:   "Rival FC",
		Tournament: "Liga Local",
		Date:       "2024-06-03",
		Time:       "18:30",
	}
	_, err := svc.UpdateMatch(ctx, staffSession, res.ID, updated)
	require.NoError(t, err)

	require.Empty(t, activitiesOn(t, svc, "2024-06-01"),
		"the old date's activity is removed")

	acts := activitiesOn(t, svc, "2024-06-03")
	require.Len(t, acts, 1)
	require.Equal(t, "18:30", acts[0].Time)
	require.Equal(t, res.ID, acts[0].SourceID)
}

func TestUpdateMatchReconcilesLegacyActivity(t *testing.T) {
	// Activities written before source references existed are matched by
	// title substring and cleaned up alongside the referenced one.
	svc, m, _, _ := newTestService(t)
	ctx := context.Background()

	res := scheduleTestMatch(t, svc)
	require.NoError(t, m.Create(ctx, models.CollectionActivities, staffSession.TenantID,
		"legacy-1", []byte(`{"titulo":"⚽ vs Rival FC","fecha":"2024-06-01"}`)))
	require.Len(t, activitiesOn(t, svc, "2024-06-01"), 2)

	updated := &models.Match{Opponent: "Rival FC", Date: "2024-06-03"}
	_, err := svc.UpdateMatch(ctx, staffSession, res.ID, updated)
	require.NoError(t, err)

	require.Empty(t, activitiesOn(t, svc, "2024-06-01"))
	require.Len(t, activitiesOn(t, svc, "2024-06-03"), 1)
}

func TestUpdateMatchLeavesOtherActivitiesAlone(t *testing.T) {
	svc, m, _, _ := newTestService(t)
	ctx := context.Background()

	res := scheduleTestMatch(t, svc)
	require.NoError(t, m.Create(ctx, models.CollectionActivities, staffSession.TenantID,
		"other-1", []byte(`{"titulo":"⚽ vs Otro Club","fecha":"2024-06-01"}`)))

	_, err := svc.UpdateMatch(ctx, staffSession, res.ID,
		&models.Match{Opponent: "Rival FC", Date: "2024-06-03"})
	require.NoError(t, err)

	acts := activitiesOn(t, svc, "2024-06-01")
	require.Len(t, acts, 1)
	require.Equal(t, "⚽ vs Otro Club", acts[0].Title)
}

func TestDeleteMatchRemovesActivity(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res := scheduleTestMatch(t, svc)

	_, err := svc.DeleteMatch(ctx, staffSession, res.ID)
	require.NoError(t, err)

	_, err = svc.GetMatch(ctx, staffSession, res.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	require.Empty(t, activitiesOn(t, svc, "2024-06-01"))
}

func TestUpdateMatchUnknownID(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.UpdateMatch(context.Background(), staffSession, "missing",
		&models.Match{Opponent: "Rival FC", Date: "2024-06-03"})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDegradedMatchWriteSkipsMirror(t *testing.T) {
	svc, m, _, _ := newTestService(t)
	ctx := context.Background()

	m.FailWrites(store.ErrUnavailable)
	res, err := svc.CreateMatch(ctx, staffSession, &models.Match{
		Opponent: "Rival FC", Date: "2024-06-01",
	})
	require.NoError(t, err)
	require.True(t, res.Degraded)

	m.FailWrites(nil)
	require.Empty(t, activitiesOn(t, svc, "2024-06-01"),
		"no activity mirrors a write that only reached the local cache")
}

// mirrorFailStore fails writes to the calendar collection only.
type mirrorFailStore struct {
	store.Store
}

func (s mirrorFailStore) Create(ctx context.Context, collection, tenantID, id string, data []byte) error {
	if collection == models.CollectionActivities {
		return store.ErrUnavailable
	}
	return s.Store.Create(ctx, collection, tenantID, id, data)
}

func TestMirrorFailureDoesNotFailTheWrite(t *testing.T) {
	m := store.NewMemory()
	cache, err := localcache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	svc := New(mirrorFailStore{Store: m}, cache, logger.Nop(), WithLocation(time.UTC))

	res, err := svc.CreateMatch(context.Background(), staffSession, &models.Match{
		Opponent: "Rival FC", Date: "2024-06-01",
	})
	require.NoError(t, err, "a failed mirror must never fail the primary write")
	require.False(t, res.Degraded)

	got, err := svc.GetMatch(context.Background(), staffSession, res.ID)
	require.NoError(t, err)
	require.Equal(t, "Rival FC", got.Opponent)

	acts, err := svc.ListActivities(context.Background(), staffSession, "2024-06-01")
	require.NoError(t, err)
	require.Empty(t, acts)
}
