// ABOUTME: Player roster operations for a tenant.
// ABOUTME: Includes the live roster subscription used by the calendar view.
package club

import (
	"context"
	"fmt"

	"github.com/hvilches/clubtrack/internal/models"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
)

const featurePlayers = "jugadores"

// ListPlayers returns the tenant's roster ordered by name.
func (s *Service) ListPlayers(ctx context.Context, sess tenant.Session) ([]models.Player, error) {
	records, err := s.store.List(ctx, models.CollectionPlayers, sess.TenantID,
		store.SortBy("nombre", false))
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return decodePlayers(records), nil
}

// CreatePlayer provisions a player on the roster.
func (s *Service) CreatePlayer(ctx context.Context, sess tenant.Session, p *models.Player) (WriteResult, error) {
	if p.Name == "" || p.Email == "" {
		return WriteResult{}, fmt.Errorf("player name and email are required")
	}
	p.TenantID = sess.TenantID
	if p.Status == "" {
		p.Status = models.StatusActive
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	return s.createDoc(ctx, sess, models.CollectionPlayers, featurePlayers, p, s.DateKey())
}

// UpdatePlayer applies a shallow patch to a player document.
func (s *Service) UpdatePlayer(ctx context.Context, sess tenant.Session, id string, patch map[string]any) (WriteResult, error) {
	delete(patch, "clienteId") // tenant assignment never changes through edits
	return s.updateDoc(ctx, sess, models.CollectionPlayers, featurePlayers, id, patch, s.DateKey())
}

// DeactivatePlayer soft-disables a player; roster entries are never hard
// deleted.
func (s *Service) DeactivatePlayer(ctx context.Context, sess tenant.Session, id string) (WriteResult, error) {
	patch := map[string]any{"estado": models.StatusInactive}
	return s.updateDoc(ctx, sess, models.CollectionPlayers, featurePlayers, id, patch, s.DateKey())
}

// WatchPlayers streams roster snapshots on every change.
func (s *Service) WatchPlayers(ctx context.Context, sess tenant.Session) (<-chan []models.Player, error) {
	records, err := s.store.Watch(ctx, models.CollectionPlayers, sess.TenantID)
	if err != nil {
		return nil, fmt.Errorf("watch players: %w", err)
	}

	out := make(chan []models.Player)
	go func() {
		defer close(out)
		for snap := range records {
			select {
			case out <- decodePlayers(snap):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

func decodePlayers(records []store.Record) []models.Player {
	out := make([]models.Player, 0, len(records))
	for _, r := range records {
		var p models.Player
		if err := r.Decode(&p); err != nil {
			continue // skip invalid entries
		}
		if p.ID == "" {
			p.ID = r.ID
		}
		out = append(out, p)
	}
	return out
}
