// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server bound to the resolved session.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout and operates inside
the club of the configured identity.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "clubtrack": {
        "command": "clubtrack",
        "args": ["mcp", "--email", "staff@club.example"]
      }
    }
  }

AVAILABLE TOOLS:

  record_wellness   Record a player's daily wellness questionnaire
  record_rpe        Record a player's daily perceived exertion
  list_players      List the club's players
  list_matches      List the club's matches
  schedule_match    Schedule a match (calendar entry included)
  list_sessions     List training sessions of a kind
  list_calendar     List calendar activities

AVAILABLE RESOURCES:

  clubtrack://summary    Today's submissions and calendar
  clubtrack://roster     The player roster
  clubtrack://calendar   The full activity feed`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc, session)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
