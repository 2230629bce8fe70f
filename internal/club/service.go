// ABOUTME: Club service: tenant-scoped CRUD accessor with local fallback.
// ABOUTME: All feature operations run through the generic write path here.
package club

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hvilches/clubtrack/internal/localcache"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
	"github.com/hvilches/clubtrack/pkg/logger"
)

// Service exposes every club feature over the document store. Writes that
// fail against the backend land in the local cache and report degraded
// success so user input is never lost; nothing reconciles cached entries
// back later.
type Service struct {
	store store.Store
	cache localcache.Cache
	log   logger.Logger
	loc   *time.Location
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithLocation sets the location used for the "today" date key.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

// WithClock overrides the clock; tests pin it.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New creates a Service.
func New(st store.Store, cache localcache.Cache, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		store: st,
		cache: cache,
		log:   log.Named("club"),
		loc:   time.Local,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WriteResult reports the outcome of a write. Degraded means the backend
// write failed and the record was preserved in the local cache instead.
type WriteResult struct {
	ID       string
	Degraded bool
}

// DateKey returns today's date key (YYYY-MM-DD) from the wall clock in the
// configured location. "Today" is meant from the player's perspective; a
// player near midnight or across timezones can land on either side of the
// boundary.
func (s *Service) DateKey() string {
	return s.now().In(s.loc).Format("2006-01-02")
}

// createDoc marshals doc, assigns it a fresh id, and stores it. On backend
// failure the full record is appended to the date-scoped cache key and the
// write reports degraded success.
func (s *Service) createDoc(ctx context.Context, sess tenant.Session, collection, feature string, doc any, date string) (WriteResult, error) {
	id := uuid.NewString()

	data, err := marshalWithID(doc, id)
	if err != nil {
		return WriteResult{}, fmt.Errorf("encode %s document: %w", collection, err)
	}
	if err := s.store.Create(ctx, collection, sess.TenantID, id, data); err != nil {
		return s.degradeWrite(ctx, sess, feature, date, id, data, err)
	}
	return WriteResult{ID: id}, nil
}

// updateDoc applies a shallow patch to an existing document. On backend
// failure an update envelope is cached and the write reports degraded
// success.
func (s *Service) updateDoc(ctx context.Context, sess tenant.Session, collection, feature, id string, patch any, date string) (WriteResult, error) {
	data, err := json.Marshal(patch)
	if err != nil {
		return WriteResult{}, fmt.Errorf("encode %s patch: %w", collection, err)
	}
	if err := s.store.Update(ctx, collection, sess.TenantID, id, data); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return WriteResult{}, err
		}
		envelope, envErr := json.Marshal(map[string]any{
			"op": "update", "id": id, "datos": json.RawMessage(data),
		})
		if envErr != nil {
			return WriteResult{}, err
		}
		return s.degradeWrite(ctx, sess, feature, date, id, envelope, err)
	}
	return WriteResult{ID: id}, nil
}

// deleteDoc removes a document, caching a tombstone envelope on failure.
func (s *Service) deleteDoc(ctx context.Context, sess tenant.Session, collection, feature, id, date string) (WriteResult, error) {
	if err := s.store.Delete(ctx, collection, sess.TenantID, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return WriteResult{}, err
		}
		envelope, envErr := json.Marshal(map[string]any{"op": "delete", "id": id})
		if envErr != nil {
			return WriteResult{}, err
		}
		return s.degradeWrite(ctx, sess, feature, date, id, envelope, err)
	}
	return WriteResult{ID: id}, nil
}

// degradeWrite is the shared fallback tail: append to the cache, warn, and
// report degraded success. When the cache also fails the original backend
// error wins.
func (s *Service) degradeWrite(ctx context.Context, sess tenant.Session, feature, date, id string, entry []byte, cause error) (WriteResult, error) {
	if date == "" {
		date = s.DateKey()
	}
	key := localcache.DatedKey(feature, sess.TenantID, date)
	if cacheErr := s.cache.Append(key, entry); cacheErr != nil {
		s.log.Error(ctx, "backend write and local fallback both failed",
			logger.String("feature", feature),
			logger.String("tenantId", sess.TenantID),
			logger.Error(errors.Join(cause, cacheErr)))
		return WriteResult{}, cause
	}

	s.log.Warn(ctx, "backend write failed, record cached locally",
		logger.String("feature", feature),
		logger.String("tenantId", sess.TenantID),
		logger.String("cacheKey", key),
		logger.Bool("degraded", true),
		logger.Error(cause))
	return WriteResult{ID: id, Degraded: true}, nil
}

// marshalWithID marshals doc and injects the generated id into the body so
// decoded records carry it even when read from the fallback cache.
func marshalWithID(doc any, id string) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, err
	}
	idJSON, err := json.Marshal(id)
	if err != nil {
		return nil, err
	}
	body["id"] = idJSON
	return json.Marshal(body)
}

// UserMessage converts a store error into the user-facing string for it.
// Permission problems get an actionable message distinct from generic
// failure; nothing here is fatal.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, store.ErrPermissionDenied):
		return "You don't have permission for this operation. Ask the club administrator to review your account."
	case errors.Is(err, store.ErrNotFound):
		return "The requested record does not exist yet."
	default:
		return "The service is temporarily unavailable. Your data was kept locally when possible; try reloading."
	}
}
