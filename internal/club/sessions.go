// ABOUTME: Training session planning across field, gym, and individual
// ABOUTME: collections, with calendar mirroring on create and update.
package club

import (
	"context"
	"fmt"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
)

// validSessionCollection rejects collections outside the three session kinds.
func validSessionCollection(collection string) error {
	for _, c := range models.SessionCollections {
		if c == collection {
			return nil
		}
	}
	return fmt.Errorf("unknown session collection: %q", collection)
}

// ListSessions returns the tenant's planned sessions for one collection,
// ordered by date.
func (s *Service) ListSessions(ctx context.Context, sess tenant.Session, collection string) ([]models.TrainingSession, error) {
	if err := validSessionCollection(collection); err != nil {
		return nil, err
	}
	records, err := s.store.List(ctx, collection, sess.TenantID,
		store.SortBy("fecha", false))
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return decodeSessions(records), nil
}

// GetSession returns one planned session.
func (s *Service) GetSession(ctx context.Context, sess tenant.Session, collection, id string) (*models.TrainingSession, error) {
	if err := validSessionCollection(collection); err != nil {
		return nil, err
	}
	r, err := s.store.Get(ctx, collection, sess.TenantID, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	var ts models.TrainingSession
	if err := r.Decode(&ts); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if ts.ID == "" {
		ts.ID = r.ID
	}
	return &ts, nil
}

// CreateSession plans a session and mirrors it into the calendar.
func (s *Service) CreateSession(ctx context.Context, sess tenant.Session, collection string, ts *models.TrainingSession) (WriteResult, error) {
	if err := validSessionCollection(collection); err != nil {
		return WriteResult{}, err
	}
	if ts.Date == "" {
		return WriteResult{}, fmt.Errorf("session date is required")
	}
	ts.TenantID = sess.TenantID
	if ts.CreatedBy == "" {
		ts.CreatedBy = sess.Email
	}
	if ts.CreatedAt.IsZero() {
		ts.CreatedAt = s.now()
	}

	res, err := s.createDoc(ctx, sess, collection, collection, ts, ts.Date)
	if err != nil {
		return res, err
	}
	if res.Degraded {
		s.logMirrorSkipped(ctx, collection, res.ID)
		return res, nil
	}

	s.mirrorInsert(ctx, sess, &models.CalendarActivity{
		Title:      models.SessionActivityTitle(collection, ts),
		Time:       ts.Time,
		Date:       ts.Date,
		SourceType: models.SourceSession,
		SourceID:   res.ID,
	})
	return res, nil
}

// UpdateSession rewrites a planned session and reconciles its activity via
// the delete-then-recreate flow.
func (s *Service) UpdateSession(ctx context.Context, sess tenant.Session, collection, id string, ts *models.TrainingSession) (WriteResult, error) {
	old, err := s.GetSession(ctx, sess, collection, id)
	if err != nil {
		return WriteResult{}, err
	}

	ts.TenantID = sess.TenantID
	res, err := s.updateDoc(ctx, sess, collection, collection, id, ts, ts.Date)
	if err != nil {
		return res, err
	}
	if res.Degraded {
		s.logMirrorSkipped(ctx, collection, id)
		return res, nil
	}

	s.mirrorRemove(ctx, sess, old.Date, models.SourceSession, id,
		fmt.Sprintf("Sesión %d", old.Number))
	s.mirrorInsert(ctx, sess, &models.CalendarActivity{
		Title:      models.SessionActivityTitle(collection, ts),
		Time:       ts.Time,
		Date:       ts.Date,
		SourceType: models.SourceSession,
		SourceID:   id,
	})
	return res, nil
}

// DeleteSession removes a planned session and its mirrored activity.
func (s *Service) DeleteSession(ctx context.Context, sess tenant.Session, collection, id string) (WriteResult, error) {
	old, err := s.GetSession(ctx, sess, collection, id)
	if err != nil {
		return WriteResult{}, err
	}

	res, err := s.deleteDoc(ctx, sess, collection, collection, id, old.Date)
	if err != nil {
		return res, err
	}
	if res.Degraded {
		s.logMirrorSkipped(ctx, collection, id)
		return res, nil
	}

	s.mirrorRemove(ctx, sess, old.Date, models.SourceSession, id,
		fmt.Sprintf("Sesión %d", old.Number))
	return res, nil
}

func decodeSessions(records []store.Record) []models.TrainingSession {
	out := make([]models.TrainingSession, 0, len(records))
	for _, r := range records {
		var ts models.TrainingSession
		if err := r.Decode(&ts); err != nil {
			continue // skip invalid entries
		}
		if ts.ID == "" {
			ts.ID = r.ID
		}
		out = append(out, ts)
	}
	return out
}
