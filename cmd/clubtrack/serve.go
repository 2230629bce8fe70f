// ABOUTME: CLI command for the HTTP API server.
// ABOUTME: Serves the tenant-scoped REST API with Prometheus metrics.
package main

import (
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/httpapi"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server.

Requests identify themselves with X-User-Email (and optionally X-User-Id)
headers; the server resolves the club and role per request exactly like the
CLI does for its own identity.

ENDPOINTS:

  GET  /healthz                     liveness
  GET  /metrics                     Prometheus metrics
  /api/players, /api/matches, /api/tasks, /api/sessions/{collection},
  /api/wellness, /api/rpe, /api/calendar, /api/tenants

  Writes answer 201/200 normally and 202 when the record only reached the
  local fallback cache (backend unavailable).

  GET /api/calendar/watch streams the calendar as server-sent events.

Examples:
  clubtrack serve
  clubtrack serve --addr :9090
  CLUBTRACK_ADDR=:9090 clubtrack serve`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		srv := httpapi.NewServer(svc, resolver, log)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		color.Green("✓ clubtrack API listening on %s", addr)
		return srv.ListenAndServe(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides CLUBTRACK_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
