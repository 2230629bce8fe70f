// ABOUTME: Live-query support using badger's prefix subscription.
// ABOUTME: Delivers full collection snapshots on any matching change.
package kvstore

import (
	"context"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/pb"

	"github.com/hvilches/clubtrack/internal/store"
)

// Watch subscribes to a tenant's collection and sends a fresh snapshot after
// every matching write, starting with the current state. Snapshots are
// coalesced under load; the channel closes when ctx is done.
func (c *Client) Watch(ctx context.Context, collection, tenantID string) (<-chan []store.Record, error) {
	prefix := scanPrefix(collection, tenantID)

	out := make(chan []store.Record, 1)
	refresh := make(chan struct{}, 1)
	refresh <- struct{}{} // initial snapshot

	go func() {
		matches := []pb.Match{{Prefix: prefix}}
		_ = c.kv.DB.Subscribe(ctx, func(_ *badger.KVList) error {
			select {
			case refresh <- struct{}{}:
			default: // a refresh is already pending
			}
			return nil
		}, matches)
	}()

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-refresh:
				records, err := c.List(ctx, collection, tenantID)
				if err != nil {
					continue // transient; next change retriggers
				}
				select {
				case out <- records:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
