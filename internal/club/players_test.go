// ABOUTME: Tests for roster operations.
// ABOUTME: Covers provisioning defaults, patching, and soft deactivation.
package club

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hvilches/clubtrack/internal/models"
)

func TestCreatePlayerDefaults(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreatePlayer(ctx, staffSession, &models.Player{
		Name: "Ana", Email: "ana@club.test",
	})
	require.NoError(t, err)

	players, err := svc.ListPlayers(ctx, staffSession)
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, res.ID, players[0].ID)
	require.Equal(t, models.StatusActive, players[0].Status)
	require.Equal(t, staffSession.TenantID, players[0].TenantID)
}

func TestCreatePlayerValidation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreatePlayer(ctx, staffSession, &models.Player{Email: "ana@club.test"})
	require.ErrorContains(t, err, "name")
	_, err = svc.CreatePlayer(ctx, staffSession, &models.Player{Name: "Ana"})
	require.ErrorContains(t, err, "email")
}

func TestListPlayersSortedByName(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Carla", "Ana", "Berta"} {
		_, err := svc.CreatePlayer(ctx, staffSession, &models.Player{
			Name: name, Email: name + "@club.test",
		})
		require.NoError(t, err)
	}

	players, err := svc.ListPlayers(ctx, staffSession)
	require.NoError(t, err)
	require.Len(t, players, 3)
	require.Equal(t, "Ana", players[0].Name)
	require.Equal(t, "Carla", players[2].Name)
}

func TestUpdatePlayerStripsTenantField(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreatePlayer(ctx, staffSession, &models.Player{
		Name: "Ana", Email: "ana@club.test",
	})
	require.NoError(t, err)

	_, err = svc.UpdatePlayer(ctx, staffSession, res.ID, map[string]any{
		"posicion":  "delantera",
		"clienteId": "cliente-intruso",
	})
	require.NoError(t, err)

	players, err := svc.ListPlayers(ctx, staffSession)
	require.NoError(t, err)
	require.Len(t, players, 1)
	require.Equal(t, "delantera", players[0].Position)
	require.Equal(t, staffSession.TenantID, players[0].TenantID,
		"edits never reassign a player's tenant")
}

func TestDeactivatePlayerKeepsRecord(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	res, err := svc.CreatePlayer(ctx, staffSession, &models.Player{
		Name: "Ana", Email: "ana@club.test",
	})
	require.NoError(t, err)

	_, err = svc.DeactivatePlayer(ctx, staffSession, res.ID)
	require.NoError(t, err)

	players, err := svc.ListPlayers(ctx, staffSession)
	require.NoError(t, err)
	require.Len(t, players, 1, "deactivation is a soft delete")
	require.Equal(t, models.StatusInactive, players[0].Status)
}
