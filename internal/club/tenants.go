// ABOUTME: Tenant (client) administration: onboarding and soft deactivation.
// ABOUTME: Tenant documents live under their own id in the clientes collection.
package club

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
)

// CreateTenant onboards a club. The document is keyed by the tenant's own id;
// tenant creation has no fallback cache because a degraded tenant would be
// invisible to every later lookup anyway.
func (s *Service) CreateTenant(ctx context.Context, t *models.Tenant) (string, error) {
	if t.Name == "" {
		return "", fmt.Errorf("tenant name is required")
	}
	id := uuid.NewString()
	if t.Status == "" {
		t.Status = models.StatusActive
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = s.now()
	}

	data, err := marshalWithID(t, id)
	if err != nil {
		return "", fmt.Errorf("encode tenant: %w", err)
	}
	if err := s.store.Create(ctx, models.CollectionTenants, id, id, data); err != nil {
		return "", fmt.Errorf("create tenant: %w", err)
	}
	return id, nil
}

// ListTenants returns every club account, ordered by name.
func (s *Service) ListTenants(ctx context.Context) ([]models.Tenant, error) {
	records, err := s.store.List(ctx, models.CollectionTenants, "",
		store.SortBy("nombre", false))
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	out := make([]models.Tenant, 0, len(records))
	for _, r := range records {
		var t models.Tenant
		if err := r.Decode(&t); err != nil {
			continue // skip invalid entries
		}
		if t.ID == "" {
			t.ID = r.ID
		}
		out = append(out, t)
	}
	return out, nil
}

// GetTenant returns one club account.
func (s *Service) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	r, err := s.store.Get(ctx, models.CollectionTenants, id, id)
	if err != nil {
		return nil, fmt.Errorf("get tenant: %w", err)
	}
	var t models.Tenant
	if err := r.Decode(&t); err != nil {
		return nil, fmt.Errorf("decode tenant: %w", err)
	}
	if t.ID == "" {
		t.ID = r.ID
	}
	return &t, nil
}

// UpdateTenant applies a shallow patch to a club account.
func (s *Service) UpdateTenant(ctx context.Context, id string, patch map[string]any) error {
	delete(patch, "id")
	data, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("encode tenant patch: %w", err)
	}
	if err := s.store.Update(ctx, models.CollectionTenants, id, id, data); err != nil {
		return fmt.Errorf("update tenant: %w", err)
	}
	return nil
}

// DeactivateTenant flips a club to inactive. Tenants are never hard-deleted.
func (s *Service) DeactivateTenant(ctx context.Context, id string) error {
	return s.UpdateTenant(ctx, id, map[string]any{"estado": models.StatusInactive})
}
