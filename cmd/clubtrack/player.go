// ABOUTME: CLI commands for the player roster.
// ABOUTME: Players are soft-deactivated, never deleted.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/models"
)

var (
	playerEmail    string
	playerPosition string
)

var playerCmd = &cobra.Command{
	Use:     "player",
	Aliases: []string{"p"},
	Short:   "Manage the player roster",
	Long: `Manage the club's player roster.

Examples:
  clubtrack player add "Ana García" --position delantera
  clubtrack player list
  clubtrack player deactivate abc123`,
}

var playerListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List players",
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := svc.ListPlayers(cmd.Context(), session)
		if err != nil {
			return fmt.Errorf("failed to list players: %w", err)
		}

		if len(players) == 0 {
			fmt.Println("No players found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, p := range players {
			status := ""
			if p.Status == models.StatusInactive {
				status = faint.Sprint(" (inactiva)")
			}
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(shortID(p.ID)),
				padRight(p.Name, 24),
				p.Position,
				status)
		}
		return nil
	},
}

var playerAddCmd = &cobra.Command{
	Use:     "add <name>",
	Aliases: []string{"a"},
	Short:   "Add a player",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p := models.NewPlayer("", args[0], playerEmail)
		p.Email = playerEmail
		p.Position = playerPosition

		res, err := svc.CreatePlayer(cmd.Context(), session, p)
		if err != nil {
			return fmt.Errorf("failed to add player: %w", err)
		}

		printWrite(res, args[0])
		return nil
	},
}

var playerDeactivateCmd = &cobra.Command{
	Use:     "deactivate <id>",
	Aliases: []string{"rm"},
	Short:   "Deactivate a player",
	Long: `Mark a player inactive. The record and its history stay in the store;
the player just stops appearing in active rosters and questionnaires.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := svc.DeactivatePlayer(cmd.Context(), session, args[0])
		if err != nil {
			return fmt.Errorf("failed to deactivate player: %w", err)
		}

		printWrite(res, "deactivation")
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	playerAddCmd.Flags().StringVar(&playerEmail, "player-email", "", "player login email")
	playerAddCmd.Flags().StringVar(&playerPosition, "position", "", "playing position")

	playerCmd.AddCommand(playerListCmd, playerAddCmd, playerDeactivateCmd)
	rootCmd.AddCommand(playerCmd)
}
