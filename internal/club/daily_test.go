// ABOUTME: Tests for the daily questionnaire upserts.
// ABOUTME: Covers the one-record-per-day invariant and tenant scoping.
package club

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
)

func TestSubmitWellnessCreatesRecord(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.SubmitWellness(ctx, staffSession, validWellnessRecord())
	require.NoError(t, err)
	require.False(t, res.Degraded)
	require.NotEmpty(t, res.ID)

	got, err := svc.TodayWellness(ctx, staffSession, "p1")
	require.NoError(t, err)
	require.Equal(t, res.ID, got.ID)
	require.Equal(t, "2024-05-01", got.Date, "date defaults to today")
	require.Equal(t, staffSession.TenantID, got.TenantID)
	require.Equal(t, "UTC", got.Timezone)
}

func TestSubmitWellnessSameDayUpdatesInPlace(t *testing.T) {
	svc, _, _, clock := newTestService(t)
	ctx := context.Background()

	first, err := svc.SubmitWellness(ctx, staffSession, validWellnessRecord())
	require.NoError(t, err)
	created := clock.t

	// The player corrects their answers two hours later.
	clock.t = clock.t.Add(2 * time.Hour)
	second := validWellnessRecord()
	second.Mood = 5
	res, err := svc.SubmitWellness(ctx, staffSession, second)
	require.NoError(t, err)
	require.Equal(t, first.ID, res.ID, "same day resubmission keeps the record id")

	got, err := svc.TodayWellness(ctx, staffSession, "p1")
	require.NoError(t, err)
	require.Equal(t, 5, got.Mood, "the second submission's values win")
	require.True(t, got.CreatedAt.Equal(created), "creation time is preserved")

	records, err := svc.ListWellness(ctx, staffSession, "p1", 0)
	require.NoError(t, err)
	require.Len(t, records, 1, "at most one record per player per day")
}

func TestSubmitWellnessDifferentDaysAreSeparate(t *testing.T) {
	svc, _, _, clock := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitWellness(ctx, staffSession, validWellnessRecord())
	require.NoError(t, err)

	clock.t = clock.t.AddDate(0, 0, 1)
	_, err = svc.SubmitWellness(ctx, staffSession, validWellnessRecord())
	require.NoError(t, err)

	records, err := svc.ListWellness(ctx, staffSession, "p1", 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestSubmitWellnessValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.WellnessRecord)
		want   string
	}{
		{
			name:   "missing player",
			mutate: func(w *models.WellnessRecord) { w.PlayerID = "" },
			want:   "player id",
		},
		{
			name:   "mood out of range",
			mutate: func(w *models.WellnessRecord) { w.Mood = 6 },
			want:   "estadoAnimo",
		},
		{
			name:   "high soreness without type",
			mutate: func(w *models.WellnessRecord) { w.Soreness = 4 },
			want:   "tipoDolorMuscular",
		},
		{
			name: "specific soreness without zone",
			mutate: func(w *models.WellnessRecord) {
				w.Soreness = 4
				w.SorenessType = models.SorenessSpecific
			},
			want: "zonaDolorMuscular",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validWellnessRecord()
			tt.mutate(rec)
			_, err := svc.SubmitWellness(ctx, staffSession, rec)
			require.ErrorContains(t, err, tt.want)
		})
	}

	// Nothing was stored for any of the rejected submissions.
	_, err := svc.TodayWellness(ctx, staffSession, "p1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmitWellnessStoredFieldNames(t *testing.T) {
	// Stored documents keep the legacy schema's field names so existing data
	// and this code read each other.
	svc, m, _, _ := newTestService(t)
	ctx := context.Background()

	rec := validWellnessRecord()
	rec.Soreness = 4
	rec.SorenessType = models.SorenessSpecific
	rec.SorenessZone = "isquiotibiales"
	rec.Comments = "molestias leves"
	res, err := svc.SubmitWellness(ctx, staffSession, rec)
	require.NoError(t, err)

	raw, err := m.Get(ctx, models.CollectionWellness, staffSession.TenantID, res.ID)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw.Data, &doc))
	require.Equal(t, "p1", doc["jugadorId"])
	require.Equal(t, "cliente-demo", doc["clienteId"])
	require.Equal(t, "2024-05-01", doc["fecha"])
	require.Equal(t, float64(3), doc["estadoAnimo"])
	require.Equal(t, float64(4), doc["horasSueno"])
	require.Equal(t, float64(3), doc["calidadSueno"])
	require.Equal(t, float64(3), doc["nivelRecuperacion"])
	require.Equal(t, float64(4), doc["dolorMuscular"])
	require.Equal(t, "especifico", doc["tipoDolorMuscular"])
	require.Equal(t, "isquiotibiales", doc["zonaDolorMuscular"])
	require.Equal(t, "molestias leves", doc["comentarios"])
	require.Contains(t, doc, "creadoEn")
}

func TestListWellnessNewestFirstWithLimit(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, date := range []string{"2024-04-28", "2024-04-30", "2024-04-29"} {
		rec := validWellnessRecord()
		rec.Date = date
		_, err := svc.SubmitWellness(ctx, staffSession, rec)
		require.NoError(t, err)
	}

	records, err := svc.ListWellness(ctx, staffSession, "p1", 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "2024-04-30", records[0].Date)
	require.Equal(t, "2024-04-29", records[1].Date)
}

func TestListWellnessFiltersByPlayer(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitWellness(ctx, staffSession, validWellnessRecord())
	require.NoError(t, err)
	other := validWellnessRecord()
	other.PlayerID = "p2"
	_, err = svc.SubmitWellness(ctx, staffSession, other)
	require.NoError(t, err)

	records, err := svc.ListWellness(ctx, staffSession, "p2", 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "p2", records[0].PlayerID)

	all, err := svc.ListWellness(ctx, staffSession, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestWellnessTenantIsolation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SubmitWellness(ctx, staffSession, validWellnessRecord())
	require.NoError(t, err)

	other := tenant.Session{
		Email: "coach@otro.test", TenantID: "cliente-otro", Role: models.RoleStaff,
	}
	records, err := svc.ListWellness(ctx, other, "", 0)
	require.NoError(t, err)
	require.Empty(t, records, "records never leak across tenants")

	_, err = svc.TodayWellness(ctx, other, "p1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestSubmitEffortUpserts(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.SubmitEffort(ctx, staffSession,
		&models.EffortRecord{PlayerID: "p1", Score: 6})
	require.NoError(t, err)

	res, err := svc.SubmitEffort(ctx, staffSession,
		&models.EffortRecord{PlayerID: "p1", Score: 8, Comments: "doble sesión"})
	require.NoError(t, err)
	require.Equal(t, first.ID, res.ID)

	got, err := svc.TodayEffort(ctx, staffSession, "p1")
	require.NoError(t, err)
	require.Equal(t, 8, got.Score)
	require.Equal(t, "doble sesión", got.Comments)
}

func TestSubmitEffortValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, score := range []int{0, 11} {
		_, err := svc.SubmitEffort(ctx, staffSession,
			&models.EffortRecord{PlayerID: "p1", Score: score})
		require.ErrorContains(t, err, "rpe")
	}

	_, err := svc.SubmitEffort(ctx, staffSession, &models.EffortRecord{Score: 5})
	require.ErrorContains(t, err, "player id")
}

func TestTodayEffortNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.TodayEffort(context.Background(), staffSession, "p1")
	require.ErrorIs(t, err, store.ErrNotFound)
}
