// ABOUTME: Runtime configuration with storage backend selection.
// ABOUTME: Layered from defaults, optional YAML file, and CLUBTRACK_ env vars.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/hvilches/clubtrack/internal/localcache"
)

// Storage backends.
const (
	BackendCharm  = "charm"
	BackendMemory = "memory"
)

// Config holds all runtime settings.
type Config struct {
	// Backend selects the document store: "charm" (default) or "memory".
	Backend string `koanf:"backend"`

	// CharmHost is the Charm Cloud server documents sync against.
	CharmHost string `koanf:"charm_host"`

	// KVName is the KV database name under the Charm account.
	KVName string `koanf:"kv_name"`

	// CacheDir is where degraded writes land. Defaults to the XDG state dir.
	CacheDir string `koanf:"cache_dir"`

	// Addr is the HTTP API listen address for serve mode.
	Addr string `koanf:"addr"`

	// Timezone is the IANA location used to compute the "today" date key for
	// questionnaires. Empty means the process-local zone.
	Timezone string `koanf:"timezone"`

	// Email and UID identify the session when no flag overrides them.
	Email string `koanf:"email"`
	UID   string `koanf:"uid"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Backend:   BackendCharm,
		CharmHost: "charm.2389.dev",
		KVName:    "clubtrack",
		CacheDir:  localcache.DefaultDir(),
		Addr:      ":8080",
	}
}

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if CLUBTRACK_CONFIG is set
//  3. env (prefix CLUBTRACK_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("CLUBTRACK_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// CLUBTRACK_CHARM_HOST -> charm_host, CLUBTRACK_ADDR -> addr, ...
	envProvider := env.Provider("CLUBTRACK_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "clubtrack_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks settings that would otherwise fail deep inside a command.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendCharm, BackendMemory:
	default:
		return fmt.Errorf("unknown backend: %q", c.Backend)
	}
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	return nil
}

// Location returns the configured time.Location, defaulting to local time.
// The "today" boundary for questionnaires is wall clock in this location.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
