// ABOUTME: Calendar feed queries and the mirror that keeps it in step with
// ABOUTME: match and training-session writes. Mirror failures never propagate.
package club

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
	"github.com/hvilches/clubtrack/pkg/logger"
)

const featureCalendar = "calendario"

// ListActivities returns the tenant's calendar feed, optionally restricted to
// one date, ordered by date then creation.
func (s *Service) ListActivities(ctx context.Context, sess tenant.Session, date string) ([]models.CalendarActivity, error) {
	opts := []store.ListOption{store.SortBy("fecha", false)}
	if date != "" {
		opts = append(opts, store.WhereEq("fecha", date))
	}
	records, err := s.store.List(ctx, models.CollectionActivities, sess.TenantID, opts...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return decodeActivities(records), nil
}

// WatchActivities streams calendar snapshots on every change.
func (s *Service) WatchActivities(ctx context.Context, sess tenant.Session) (<-chan []models.CalendarActivity, error) {
	records, err := s.store.Watch(ctx, models.CollectionActivities, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("watch activities: %w", err)
	}

	out := make(chan []models.CalendarActivity)
	go func() {
		defer close(out)
		for snap := range records {
			select {
			case out <- decodeActivities(snap):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// mirrorInsert writes one activity for a source document. Best effort: a
// failed mirror leaves the feed stale until the next source write, which is
// accepted for this low-concurrency system. The mirror bypasses the fallback
// cache; a locally cached activity would only drift further from its source.
func (s *Service) mirrorInsert(ctx context.Context, sess tenant.Session, act *models.CalendarActivity) {
	act.TenantID = sess.TenantID
	if act.CreatedBy == "" {
		act.CreatedBy = sess.Email
	}
	act.CreatedAt = s.now()

	id := uuid.NewString()
	data, err := marshalWithID(act, id)
	if err != nil {
		s.log.Warn(ctx, "calendar mirror encode failed", logger.Error(err))
		return
	}
	if err := s.store.Create(ctx, models.CollectionActivities, sess.TenantID, id, data); err != nil {
		s.log.Warn(ctx, "calendar mirror insert failed",
			logger.String("title", act.Title),
			logger.String("date", act.Date),
			logger.Error(err))
	}
}

// mirrorRemove deletes the activities that mirror a source document on a
// given date. Activities with a stored source reference match by id; legacy
// ones fall back to title substrings. The delete-then-recreate flow means a
// concurrent reader can briefly observe no matching activity.
func (s *Service) mirrorRemove(ctx context.Context, sess tenant.Session, date, sourceType, sourceID string, substrings ...string) {
	records, err := s.store.List(ctx, models.CollectionActivities, sess.TenantID,
		store.WhereEq("fecha", date))
	if err != nil {
		s.log.Warn(ctx, "calendar mirror lookup failed",
			logger.String("date", date), logger.Error(err))
		return
	}

	for _, a := range decodeActivities(records) {
		if !a.MatchesSource(sourceType, sourceID, substrings...) {
			continue
		}
		if err := s.store.Delete(ctx, models.CollectionActivities, sess.TenantID, a.ID); err != nil {
			s.log.Warn(ctx, "calendar mirror delete failed",
				logger.String("activityId", a.ID), logger.Error(err))
		}
	}
}

// logMirrorSkipped records that a degraded primary write left the calendar
// untouched.
func (s *Service) logMirrorSkipped(ctx context.Context, feature, id string) {
	s.log.Warn(ctx, "calendar mirror skipped, primary write degraded",
		logger.String("feature", feature),
		logger.String("id", id))
}

func decodeActivities(records []store.Record) []models.CalendarActivity {
	out := make([]models.CalendarActivity, 0, len(records))
	for _, r := range records {
		var a models.CalendarActivity
		if err := r.Decode(&a); err != nil {
			continue // skip invalid entries
		}
		if a.ID == "" {
			a.ID = r.ID
		}
		out = append(out, a)
	}
	return out
}
