// ABOUTME: store.Store implementation on top of the Charm KV client.
// ABOUTME: Prefix scans plus in-memory filtering and sorting.
package kvstore

import (
	"context"
	"errors"

	"github.com/hvilches/clubtrack/internal/store"
)

// List fetches a tenant's collection and applies filters, sort, and limit in
// memory, in that order.
func (c *Client) List(ctx context.Context, collection, tenantID string, opts ...store.ListOption) ([]store.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pairs, err := c.listByPrefix(scanPrefix(collection, tenantID))
	if err != nil {
		return nil, err
	}

	records := make([]store.Record, 0, len(pairs))
	for key, val := range pairs {
		records = append(records, store.Record{ID: idFromKey([]byte(key)), Data: val})
	}
	return store.ApplyListOptions(records, store.BuildListOptions(opts)), nil
}

// Get retrieves one document.
func (c *Client) Get(ctx context.Context, collection, tenantID, id string) (store.Record, error) {
	if err := ctx.Err(); err != nil {
		return store.Record{}, err
	}
	val, err := c.get(docKey(collection, tenantID, id))
	if err != nil {
		return store.Record{}, err
	}
	return store.Record{ID: id, Data: val}, nil
}

// Create stores a new document body under the tenant's collection.
func (c *Client) Create(ctx context.Context, collection, tenantID, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.set(docKey(collection, tenantID, id), data)
}

// Update merges a shallow patch into an existing document.
func (c *Client) Update(ctx context.Context, collection, tenantID, id string, patch []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := docKey(collection, tenantID, id)
	existing, err := c.get(key)
	if err != nil {
		return err
	}
	merged, err := store.MergePatch(existing, patch)
	if err != nil {
		return errors.Join(store.ErrUnavailable, err)
	}
	return c.set(key, merged)
}

// Delete removes a document. Deleting an absent document reports ErrNotFound.
func (c *Client) Delete(ctx context.Context, collection, tenantID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := docKey(collection, tenantID, id)
	if _, err := c.get(key); err != nil {
		return err
	}
	return c.delete(key)
}

var _ store.Store = (*Client)(nil)
