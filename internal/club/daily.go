// ABOUTME: Daily questionnaire upserts keyed by (player, local date).
// ABOUTME: Query-then-upsert keeps at most one record per player per day.
package club

import (
	"context"
	"fmt"
	"time"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
)

const (
	featureWellness = "bienestar"
	featureEffort   = "percepcion-esfuerzo"
)

// SubmitWellness validates and upserts today's wellness questionnaire for a
// player. A same-day resubmission updates the existing record in place, the
// second submission's values winning; creation time and id are preserved.
func (s *Service) SubmitWellness(ctx context.Context, sess tenant.Session, rec *models.WellnessRecord) (WriteResult, error) {
	if rec.PlayerID == "" {
		return WriteResult{}, fmt.Errorf("player id is required")
	}
	if rec.Date == "" {
		rec.Date = s.DateKey()
	}
	rec.TenantID = sess.TenantID
	if rec.Timezone == "" {
		rec.Timezone = s.loc.String()
	}
	if err := rec.Validate(); err != nil {
		return WriteResult{}, err
	}

	existing, created, err := s.findDaily(ctx, sess, models.CollectionWellness, rec.PlayerID, rec.Date)
	if err != nil {
		// The read path is down; fall straight through to the degraded
		// create so the answers are not lost.
		rec.CreatedAt = s.now()
		return s.createDoc(ctx, sess, models.CollectionWellness, featureWellness, rec, rec.Date)
	}

	if existing != "" {
		rec.ID = existing
		rec.CreatedAt = created
		return s.updateDoc(ctx, sess, models.CollectionWellness, featureWellness, existing, rec, rec.Date)
	}

	rec.CreatedAt = s.now()
	return s.createDoc(ctx, sess, models.CollectionWellness, featureWellness, rec, rec.Date)
}

// TodayWellness returns the player's record for today, or ErrNotFound.
func (s *Service) TodayWellness(ctx context.Context, sess tenant.Session, playerID string) (*models.WellnessRecord, error) {
	records, err := s.dailyRecords(ctx, sess, models.CollectionWellness, playerID, s.DateKey())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, store.ErrNotFound
	}
	var rec models.WellnessRecord
	if err := records[0].Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode wellness record: %w", err)
	}
	if rec.ID == "" {
		rec.ID = records[0].ID
	}
	return &rec, nil
}

// ListWellness returns a player's history, newest first.
func (s *Service) ListWellness(ctx context.Context, sess tenant.Session, playerID string, limit int) ([]models.WellnessRecord, error) {
	opts := []store.ListOption{store.SortBy("fecha", true)}
	if playerID != "" {
		opts = append(opts, store.WhereEq("jugadorId", playerID))
	}
	if limit > 0 {
		opts = append(opts, store.Limit(limit))
	}
	records, err := s.store.List(ctx, models.CollectionWellness, sess.TenantID, opts...)
	if err != nil {
		return nil, fmt.Errorf("list wellness records: %w", err)
	}

	out := make([]models.WellnessRecord, 0, len(records))
	for _, r := range records {
		var rec models.WellnessRecord
		if err := r.Decode(&rec); err != nil {
			continue // skip invalid entries
		}
		if rec.ID == "" {
			rec.ID = r.ID
		}
		out = append(out, rec)
	}
	return out, nil
}

// SubmitEffort validates and upserts today's RPE answer for a player. Same
// natural key and lifecycle as SubmitWellness.
func (s *Service) SubmitEffort(ctx context.Context, sess tenant.Session, rec *models.EffortRecord) (WriteResult, error) {
	if rec.PlayerID == "" {
		return WriteResult{}, fmt.Errorf("player id is required")
	}
	if rec.Date == "" {
		rec.Date = s.DateKey()
	}
	rec.TenantID = sess.TenantID
	if rec.Timezone == "" {
		rec.Timezone = s.loc.String()
	}
	if err := rec.Validate(); err != nil {
		return WriteResult{}, err
	}

	existing, created, err := s.findDaily(ctx, sess, models.CollectionEffort, rec.PlayerID, rec.Date)
	if err != nil {
		rec.CreatedAt = s.now()
		return s.createDoc(ctx, sess, models.CollectionEffort, featureEffort, rec, rec.Date)
	}

	if existing != "" {
		rec.ID = existing
		rec.CreatedAt = created
		return s.updateDoc(ctx, sess, models.CollectionEffort, featureEffort, existing, rec, rec.Date)
	}

	rec.CreatedAt = s.now()
	return s.createDoc(ctx, sess, models.CollectionEffort, featureEffort, rec, rec.Date)
}

// TodayEffort returns the player's RPE answer for today, or ErrNotFound.
func (s *Service) TodayEffort(ctx context.Context, sess tenant.Session, playerID string) (*models.EffortRecord, error) {
	records, err := s.dailyRecords(ctx, sess, models.CollectionEffort, playerID, s.DateKey())
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, store.ErrNotFound
	}
	var rec models.EffortRecord
	if err := records[0].Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode effort record: %w", err)
	}
	if rec.ID == "" {
		rec.ID = records[0].ID
	}
	return &rec, nil
}

// findDaily locates an existing record for (player, date) and returns its id
// and creation time; "" when the day has no record yet.
func (s *Service) findDaily(ctx context.Context, sess tenant.Session, collection, playerID, date string) (string, time.Time, error) {
	records, err := s.dailyRecords(ctx, sess, collection, playerID, date)
	if err != nil {
		return "", time.Time{}, err
	}
	if len(records) == 0 {
		return "", time.Time{}, nil
	}

	id := records[0].Field("id")
	if id == "" {
		id = records[0].ID
	}
	created := time.Time{}
	if raw := records[0].Field("creadoEn"); raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			created = t
		}
	}
	if created.IsZero() {
		created = s.now()
	}
	return id, created, nil
}

func (s *Service) dailyRecords(ctx context.Context, sess tenant.Session, collection, playerID, date string) ([]store.Record, error) {
	records, err := s.store.List(ctx, collection, sess.TenantID,
		store.WhereEq("jugadorId", playerID),
		store.WhereEq("fecha", date),
		store.Limit(1))
	if err != nil {
		return nil, fmt.Errorf("query %s for %s on %s: %w", collection, playerID, date, err)
	}
	return records, nil
}
