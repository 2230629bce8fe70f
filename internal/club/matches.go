// ABOUTME: Match schedule operations with calendar mirroring.
// ABOUTME: Updates follow the legacy delete-then-recreate mirror flow.
package club

import (
	"context"
	"fmt"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
)

const featureMatches = "partidos"

// ListMatches returns the tenant's fixtures ordered by date.
func (s *Service) ListMatches(ctx context.Context, sess tenant.Session) ([]models.Match, error) {
	records, err := s.store.List(ctx, models.CollectionMatches, sess.TenantID,
		store.SortBy("fecha", false))
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return decodeMatches(records), nil
}

// GetMatch returns one fixture.
func (s *Service) GetMatch(ctx context.Context, sess tenant.Session, id string) (*models.Match, error) {
	r, err := s.store.Get(ctx, models.CollectionMatches, sess.TenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get match: %w", err)
	}
	var m models.Match
	if err := r.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode match: %w", err)
	}
	if m.ID == "" {
		m.ID = r.ID
	}
	return &m, nil
}

// CreateMatch schedules a fixture and mirrors it into the calendar. A
// degraded primary write skips the mirror with a warning; the two writes are
// otherwise sequential and independent.
func (s *Service) CreateMatch(ctx context.Context, sess tenant.Session, m *models.Match) (WriteResult, error) {
	if m.Opponent == "" || m.Date == "" {
		return WriteResult{}, fmt.Errorf("match opponent and date are required")
	}
	m.TenantID = sess.TenantID
	if m.Status == "" {
		m.Status = models.MatchScheduled
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.now()
	}

	res, err := s.createDoc(ctx, sess, models.CollectionMatches, featureMatches, m, m.Date)
	if err != nil {
		return res, err
	}
	if res.Degraded {
		s.logMirrorSkipped(ctx, featureMatches, res.ID)
		return res, nil
	}

	s.mirrorInsert(ctx, sess, &models.CalendarActivity{
		Title:      models.MatchActivityTitle(m),
		Time:       m.Time,
		Date:       m.Date,
		SourceType: models.SourceMatch,
		SourceID:   res.ID,
	})
	return res, nil
}

// UpdateMatch rewrites a fixture, then reconciles the calendar: the activity
// for the old date is deleted and a fresh one inserted for the new
// date/time/content.
func (s *Service) UpdateMatch(ctx context.Context, sess tenant.Session, id string, updated *models.Match) (WriteResult, error) {
	old, err := s.GetMatch(ctx, sess, id)
	if err != nil {
		return WriteResult{}, err
	}

	updated.TenantID = sess.TenantID
	if updated.Status == "" {
		updated.Status = old.Status
	}
	res, err := s.updateDoc(ctx, sess, models.CollectionMatches, featureMatches, id, updated, updated.Date)
	if err != nil {
		return res, err
	}
	if res.Degraded {
		s.logMirrorSkipped(ctx, featureMatches, id)
		return res, nil
	}

	s.mirrorRemove(ctx, sess, old.Date, models.SourceMatch, id,
		models.TagMatch, "vs "+old.Opponent)
	s.mirrorInsert(ctx, sess, &models.CalendarActivity{
		Title:      models.MatchActivityTitle(updated),
		Time:       updated.Time,
		Date:       updated.Date,
		SourceType: models.SourceMatch,
		SourceID:   id,
	})
	return res, nil
}

// DeleteMatch removes a fixture and its mirrored activity.
func (s *Service) DeleteMatch(ctx context.Context, sess tenant.Session, id string) (WriteResult, error) {
	old, err := s.GetMatch(ctx, sess, id)
	if err != nil {
		return WriteResult{}, err
	}

	res, err := s.deleteDoc(ctx, sess, models.CollectionMatches, featureMatches, id, old.Date)
	if err != nil {
		return res, err
	}
	if res.Degraded {
		s.logMirrorSkipped(ctx, featureMatches, id)
		return res, nil
	}

	s.mirrorRemove(ctx, sess, old.Date, models.SourceMatch, id,
		models.TagMatch, "vs "+old.Opponent)
	return res, nil
}

func decodeMatches(records []store.Record) []models.Match {
	out := make([]models.Match, 0, len(records))
	for _, r := range records {
		var m models.Match
		if err := r.Decode(&m); err != nil {
			continue // skip invalid entries
		}
		if m.ID == "" {
			m.ID = r.ID
		}
		out = append(out, m)
	}
	return out
}
