// ABOUTME: Task and gym-exercise catalog operations.
// ABOUTME: Classification autocomplete comes from prior distinct values.
package club

import (
	"context"
	"fmt"
	"sort"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
)

const (
	featureTasks = "tarea"
	featureGym   = "gimnasio"
)

// taskCollection maps a task kind to its collection and cache feature.
func taskCollection(kind string) (collection, feature string, err error) {
	switch kind {
	case models.TaskKindField, "":
		return models.CollectionTasks, featureTasks, nil
	case models.TaskKindGym:
		return models.CollectionGym, featureGym, nil
	default:
		return "", "", fmt.Errorf("unknown task kind: %q", kind)
	}
}

// ListTasks returns the tenant's catalog for a kind, ordered by name.
func (s *Service) ListTasks(ctx context.Context, sess tenant.Session, kind string) ([]models.Task, error) {
	collection, _, err := taskCollection(kind)
	if err != nil {
		return nil, err
	}
	records, err := s.store.List(ctx, collection, sess.TenantID,
		store.SortBy("nombre", false))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return decodeTasks(records), nil
}

// CreateTask adds a task or gym exercise to the catalog.
func (s *Service) CreateTask(ctx context.Context, sess tenant.Session, t *models.Task) (WriteResult, error) {
	if t.Name == "" {
		return WriteResult{}, fmt.Errorf("task name is required")
	}
	collection, feature, err := taskCollection(t.Kind)
	if err != nil {
		return WriteResult{}, err
	}
	if t.Kind == "" {
		t.Kind = models.TaskKindField
	}
	t.TenantID = sess.TenantID
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}
	return s.createDoc(ctx, sess, collection, feature, t, s.DateKey())
}

// UpdateTask applies a shallow patch to a catalog entry.
func (s *Service) UpdateTask(ctx context.Context, sess tenant.Session, kind, id string, patch map[string]any) (WriteResult, error) {
	collection, feature, err := taskCollection(kind)
	if err != nil {
		return WriteResult{}, err
	}
	delete(patch, "clienteId")
	return s.updateDoc(ctx, sess, collection, feature, id, patch, s.DateKey())
}

// DeleteTask removes a catalog entry. Sessions that referenced it keep their
// copied task names.
func (s *Service) DeleteTask(ctx context.Context, sess tenant.Session, kind, id string) (WriteResult, error) {
	collection, feature, err := taskCollection(kind)
	if err != nil {
		return WriteResult{}, err
	}
	return s.deleteDoc(ctx, sess, collection, feature, id, s.DateKey())
}

// Classifications returns the distinct classification values already used by
// the tenant's catalog, sorted, for autocomplete.
func (s *Service) Classifications(ctx context.Context, sess tenant.Session, kind string) ([]string, error) {
	tasks, err := s.ListTasks(ctx, sess, kind)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var out []string
	for _, t := range tasks {
		if t.Classification == "" {
			continue
		}
		if _, ok := seen[t.Classification]; ok {
			continue
		}
		seen[t.Classification] = struct{}{}
		out = append(out, t.Classification)
	}
	sort.Strings(out)
	return out, nil
}

func decodeTasks(records []store.Record) []models.Task {
	out := make([]models.Task, 0, len(records))
	for _, r := range records {
		var t models.Task
		if err := r.Decode(&t); err != nil {
			continue // skip invalid entries
		}
		if t.ID == "" {
			t.ID = r.ID
		}
		out = append(out, t)
	}
	return out
}
