// ABOUTME: CLI commands for tenant (club) administration.
// ABOUTME: Admin role only; clubs are soft-deactivated, never deleted.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/models"
)

var (
	clientClub     string
	clientFeatures []string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Administer clubs (admin only)",
	Long: `Administer the clubs (tenants) served by this installation. Every
other record in the store belongs to exactly one club; these commands
create the clubs themselves and control which features each one has
enabled.

Requires the admin role.

Examples:
  clubtrack client add "Club Deportivo Sur" --features jugadores,bienestar
  clubtrack client list
  clubtrack client deactivate cliente-sur`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Root's PersistentPreRunE doesn't chain automatically.
		if parent := cmd.Root(); parent.PersistentPreRunE != nil {
			if err := parent.PersistentPreRunE(cmd, args); err != nil {
				return err
			}
		}
		if session.Role != models.RoleAdmin {
			return fmt.Errorf("client administration requires the admin role")
		}
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List clubs",
	RunE: func(cmd *cobra.Command, args []string) error {
		tenants, err := svc.ListTenants(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list clubs: %w", err)
		}

		if len(tenants) == 0 {
			fmt.Println("No clubs found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, t := range tenants {
			status := ""
			if !t.Active() {
				status = faint.Sprint(" (inactivo)")
			}
			fmt.Printf("%s %s%s\n", faint.Sprint(t.ID), t.Name, status)
		}
		return nil
	},
}

var clientAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a club",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t := &models.Tenant{
			Name:     args[0],
			Club:     clientClub,
			Features: clientFeatures,
		}

		id, err := svc.CreateTenant(cmd.Context(), t)
		if err != nil {
			return fmt.Errorf("failed to create club: %w", err)
		}

		color.Green("✓ Created club %s", args[0])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(id))
		return nil
	},
}

var clientDeactivateCmd = &cobra.Command{
	Use:   "deactivate <id>",
	Short: "Deactivate a club",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := svc.DeactivateTenant(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to deactivate club: %w", err)
		}

		color.Green("✓ Deactivated club %s", args[0])
		return nil
	},
}

func init() {
	clientAddCmd.Flags().StringVar(&clientClub, "club", "", "display club name if different")
	clientAddCmd.Flags().StringSliceVar(&clientFeatures, "features", nil, "enabled features (comma separated)")

	clientCmd.AddCommand(clientListCmd, clientAddCmd, clientDeactivateCmd)
	rootCmd.AddCommand(clientCmd)
}
