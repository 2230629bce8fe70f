// ABOUTME: Root Cobra command for clubtrack CLI.
// ABOUTME: Opens the store, cache, and session via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hvilches/clubtrack/internal/club"
	"github.com/hvilches/clubtrack/internal/config"
	"github.com/hvilches/clubtrack/internal/kvstore"
	"github.com/hvilches/clubtrack/internal/localcache"
	"github.com/hvilches/clubtrack/internal/store"
	"github.com/hvilches/clubtrack/internal/tenant"
	"github.com/hvilches/clubtrack/pkg/logger"
)

var (
	cfg      *config.Config
	docStore store.Store
	svc      *club.Service
	resolver *tenant.Resolver
	session  tenant.Session
	log      logger.Logger

	flagEmail   string
	flagUID     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "clubtrack",
	Short: "Multi-tenant sports club management",
	Long: `Clubtrack manages a sports club: players, daily wellness and RPE
questionnaires, matches, training sessions, and a shared calendar. Every
record belongs to one club (tenant) and clubs never see each other's data.

QUICK START:

  $ clubtrack player add "Ana García"            # Add a player to the roster
  $ clubtrack player list                        # See the roster
  $ clubtrack wellness submit --player <id> \
      --mood 4 --sleep-hours 4 --sleep-quality 3 \
      --recovery 4 --soreness 2                  # Daily wellness check-in
  $ clubtrack rpe submit --player <id> --score 7 # Daily perceived exertion
  $ clubtrack match schedule --opponent "Rival FC" --date 2024-06-01
  $ clubtrack calendar list --date 2024-06-01    # Matches and sessions land here

DAILY RECORDS:

  Wellness and RPE are one-per-player-per-day. Submitting again on the same
  local day updates the existing record instead of creating a second one.

IDENTITY:

  Commands run as the identity from --email/--uid (or CLUBTRACK_EMAIL /
  CLUBTRACK_UID). The identity is looked up in the staff, users, and
  jugadores collections to find its club; unknown identities get a derived
  club of their own so nothing is ever rejected outright.

SERVER MODES:

  $ clubtrack serve    # HTTP API (see --addr / CLUBTRACK_ADDR)
  $ clubtrack mcp      # Model Context Protocol server over stdio

DATA STORAGE:

  Documents live in Charm KV and sync through Charm Cloud, E2E encrypted
  with your SSH key. When the backend is unreachable, writes are kept in a
  local fallback cache and reported as degraded instead of being lost.
  Set CLUBTRACK_BACKEND=memory for an ephemeral in-process store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		log = newLogger(cmd)

		docStore, err = openStore(cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		cache, err := localcache.NewFileCache(cfg.CacheDir)
		if err != nil {
			return fmt.Errorf("failed to open fallback cache: %w", err)
		}

		svc = club.New(docStore, cache, log, club.WithLocation(cfg.Location()))
		resolver = tenant.NewResolver(docStore, log)

		email, uid := identity()
		if email == "" && uid == "" {
			return fmt.Errorf("no identity: set --email or CLUBTRACK_EMAIL")
		}
		session = resolver.Resolve(cmd.Context(), email, uid)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if docStore != nil {
			return docStore.Close()
		}
		return nil
	},
}

// openStore picks the backend from config. The MCP command must keep stdout
// clean for the protocol, which the kv client already honors by logging to
// stderr only.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendMemory:
		return store.NewMemory(), nil
	default:
		return kvstore.Open(cfg.CharmHost, cfg.KVName)
	}
}

// identity returns the effective email/uid, flags overriding config.
func identity() (string, string) {
	email, uid := cfg.Email, cfg.UID
	if flagEmail != "" {
		email = flagEmail
	}
	if flagUID != "" {
		uid = flagUID
	}
	return email, uid
}

func newLogger(cmd *cobra.Command) logger.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	var out io.Writer = os.Stderr
	if w := cmd.ErrOrStderr(); w != nil {
		out = w
	}
	return logger.New(out, level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagEmail, "email", "", "identity email (overrides CLUBTRACK_EMAIL)")
	rootCmd.PersistentFlags().StringVar(&flagUID, "uid", "", "identity uid (overrides CLUBTRACK_UID)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging to stderr")
}
