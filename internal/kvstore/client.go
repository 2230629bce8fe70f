// ABOUTME: Charm KV client wrapper for the club document store.
// ABOUTME: Thread-safe access to the badger-backed, cloud-synced key space.
package kvstore

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/charm/client"
	"github.com/charmbracelet/charm/kv"

	"github.com/hvilches/clubtrack/internal/store"
)

const keySep = ":"

// Client wraps a Charm KV database. Every document lives under a
// collection:tenant:id key and syncs to Charm Cloud after each write.
type Client struct {
	kv       *kv.KV
	autoSync bool
	mu       sync.RWMutex
}

// Open opens the named KV database against the given Charm host. Falls back
// to a local-only database when the host is unreachable.
func Open(host, name string) (*Client, error) {
	if host != "" {
		if err := os.Setenv("CHARM_HOST", host); err != nil {
			return nil, err
		}
	}

	db, err := kv.OpenWithDefaultsFallback(name)
	if err != nil {
		return nil, fmt.Errorf("open kv database: %w", err)
	}

	c := &Client{kv: db, autoSync: true}

	// Pull remote state on startup (skip when another process holds the lock)
	if !db.IsReadOnly() {
		_ = db.Sync()
	}
	return c, nil
}

// Close closes the KV database.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}

// Sync synchronizes local state with Charm Cloud.
func (c *Client) Sync() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.kv.IsReadOnly() {
		return nil
	}
	return c.kv.Sync()
}

// SetAutoSync enables or disables automatic sync after writes.
func (c *Client) SetAutoSync(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoSync = enabled
}

// ID returns the Charm user ID for the current account.
func (c *Client) ID() (string, error) {
	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("create charm client: %w", err)
	}
	return cc.ID()
}

func (c *Client) syncIfEnabled() {
	if c.autoSync && !c.kv.IsReadOnly() {
		_ = c.kv.Sync()
	}
}

// docKey builds the storage key for a document. Collection and tenant names
// never contain the separator.
func docKey(collection, tenantID, id string) []byte {
	return []byte(collection + keySep + tenantID + keySep + id)
}

// scanPrefix builds the key prefix for a tenant's collection; an empty
// tenantID scans the whole collection.
func scanPrefix(collection, tenantID string) []byte {
	if tenantID == "" {
		return []byte(collection + keySep)
	}
	return []byte(collection + keySep + tenantID + keySep)
}

// idFromKey recovers the document id from a storage key.
func idFromKey(key []byte) string {
	parts := strings.SplitN(string(key), keySep, 3)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

func (c *Client) set(key, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("%w: database locked by another process", store.ErrPermissionDenied)
	}
	if err := c.kv.Set(key, data); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	c.syncIfEnabled()
	return nil
}

func (c *Client) get(key []byte) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	val, err := c.kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	}
	return val, nil
}

func (c *Client) delete(key []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.kv.IsReadOnly() {
		return fmt.Errorf("%w: database locked by another process", store.ErrPermissionDenied)
	}
	if err := c.kv.Delete(key); err != nil {
		return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}
	c.syncIfEnabled()
	return nil
}

// listByPrefix returns key/value pairs for all keys under prefix.
func (c *Client) listByPrefix(prefix []byte) (map[string][]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys, err := c.kv.Keys()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
	}

	results := make(map[string][]byte)
	for _, key := range keys {
		if !bytes.HasPrefix(key, prefix) {
			continue
		}
		val, err := c.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", store.ErrUnavailable, err)
		}
		results[string(key)] = val
	}
	return results, nil
}
