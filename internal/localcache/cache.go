// ABOUTME: Durable local cache holding writes that failed against the backend.
// ABOUTME: Cache-aside only; entries are never reconciled back to the store.
package localcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoEntry is returned by Get for keys that were never written.
var ErrNoEntry = errors.New("no cache entry")

// Cache is a string-keyed JSON store, the degraded-write destination. Keys
// follow the legacy shapes built by FeatureKey and DatedKey.
type Cache interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	// Append adds one item to the JSON array stored under key, creating the
	// array if absent.
	Append(key string, item json.RawMessage) error
	// Keys lists the stored keys with the given prefix.
	Keys(prefix string) ([]string, error)
}

// FeatureKey builds a tenant-scoped cache key: {feature}_{tenantId}.
func FeatureKey(feature, tenantID string) string {
	return feature + "_" + tenantID
}

// DatedKey builds a date-scoped cache key: {feature}-{tenantId}-{date}.
// Date rotation is the only invalidation the cache has.
func DatedKey(feature, tenantID, date string) string {
	return feature + "-" + tenantID + "-" + date
}

// FileCache stores each key as one JSON file under a directory.
type FileCache struct {
	dir string
}

// NewFileCache creates the cache directory if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &FileCache{dir: dir}, nil
}

// DefaultDir returns the cache location following the XDG state spec.
func DefaultDir() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, _ := os.UserHomeDir()
		stateHome = filepath.Join(home, ".local", "state")
	}
	return filepath.Join(stateHome, "clubtrack", "fallback")
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, sanitizeKey(key)+".json")
}

// sanitizeKey keeps keys filesystem-safe without losing uniqueness for the
// legacy key shapes (letters, digits, '-', '_').
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '~'
		}
	}, key)
}

func (c *FileCache) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoEntry
		}
		return nil, fmt.Errorf("read cache entry: %w", err)
	}
	return data, nil
}

func (c *FileCache) Set(key string, value []byte) error {
	if err := os.WriteFile(c.path(key), value, 0600); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

func (c *FileCache) Append(key string, item json.RawMessage) error {
	var items []json.RawMessage
	data, err := c.Get(key)
	if err == nil {
		if err := json.Unmarshal(data, &items); err != nil {
			// A corrupt entry is replaced rather than blocking the fallback.
			items = nil
		}
	} else if !errors.Is(err, ErrNoEntry) {
		return err
	}

	items = append(items, item)
	out, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cache array: %w", err)
	}
	return c.Set(key, out)
}

func (c *FileCache) Keys(prefix string) ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("list cache entries: %w", err)
	}

	var keys []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".json")
		if name == e.Name() {
			continue
		}
		if strings.HasPrefix(name, sanitizeKey(prefix)) {
			keys = append(keys, name)
		}
	}
	return keys, nil
}

var _ Cache = (*FileCache)(nil)
