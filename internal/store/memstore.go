// ABOUTME: In-memory Store implementation for tests and ephemeral runs.
// ABOUTME: Supports failure injection to exercise the fallback paths.
package store

import (
	"context"
	"sync"
)

// Memory is a Store backed by maps. Safe for concurrent use. Zero value is
// not usable; construct with NewMemory.
type Memory struct {
	mu       sync.RWMutex
	docs     map[string]map[string]map[string][]byte // collection -> tenant -> id -> body
	watchers map[string][]*memWatcher

	failWrites error
	failReads  error
}

type memWatcher struct {
	ch     chan []Record
	ctx    context.Context
	notify chan struct{}
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		docs:     make(map[string]map[string]map[string][]byte),
		watchers: make(map[string][]*memWatcher),
	}
}

// FailWrites makes every subsequent write return err. Pass nil to heal.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrites = err
}

// FailReads makes every subsequent read return err. Pass nil to heal.
func (m *Memory) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failReads = err
}

func (m *Memory) List(ctx context.Context, collection, tenantID string, opts ...ListOption) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failReads != nil {
		return nil, m.failReads
	}
	return ApplyListOptions(m.snapshotLocked(collection, tenantID), BuildListOptions(opts)), nil
}

func (m *Memory) Get(ctx context.Context, collection, tenantID, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failReads != nil {
		return Record{}, m.failReads
	}
	body, ok := m.docs[collection][tenantID][id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return Record{ID: id, Data: cloneBytes(body)}, nil
}

func (m *Memory) Create(ctx context.Context, collection, tenantID, id string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	if m.failWrites != nil {
		err := m.failWrites
		m.mu.Unlock()
		return err
	}
	tenants, ok := m.docs[collection]
	if !ok {
		tenants = make(map[string]map[string][]byte)
		m.docs[collection] = tenants
	}
	bucket, ok := tenants[tenantID]
	if !ok {
		bucket = make(map[string][]byte)
		tenants[tenantID] = bucket
	}
	bucket[id] = cloneBytes(data)
	m.mu.Unlock()

	m.notifyWatchers(collection, tenantID)
	return nil
}

func (m *Memory) Update(ctx context.Context, collection, tenantID, id string, patch []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	if m.failWrites != nil {
		err := m.failWrites
		m.mu.Unlock()
		return err
	}
	existing, ok := m.docs[collection][tenantID][id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	merged, err := MergePatch(existing, patch)
	if err != nil {
		m.mu.Unlock()
		return err
	}
	m.docs[collection][tenantID][id] = merged
	m.mu.Unlock()

	m.notifyWatchers(collection, tenantID)
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, tenantID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	if m.failWrites != nil {
		err := m.failWrites
		m.mu.Unlock()
		return err
	}
	if _, ok := m.docs[collection][tenantID][id]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.docs[collection][tenantID], id)
	m.mu.Unlock()

	m.notifyWatchers(collection, tenantID)
	return nil
}

func (m *Memory) Watch(ctx context.Context, collection, tenantID string) (<-chan []Record, error) {
	w := &memWatcher{
		ch:     make(chan []Record, 1),
		ctx:    ctx,
		notify: make(chan struct{}, 1),
	}

	key := collection + "\x00" + tenantID
	m.mu.Lock()
	m.watchers[key] = append(m.watchers[key], w)
	m.mu.Unlock()

	go m.runWatcher(key, collection, tenantID, w)
	w.notify <- struct{}{} // initial snapshot
	return w.ch, nil
}

func (m *Memory) runWatcher(key, collection, tenantID string, w *memWatcher) {
	defer func() {
		m.mu.Lock()
		live := m.watchers[key][:0]
		for _, other := range m.watchers[key] {
			if other != w {
				live = append(live, other)
			}
		}
		m.watchers[key] = live
		m.mu.Unlock()
		close(w.ch)
	}()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.notify:
			m.mu.RLock()
			snap := m.snapshotLocked(collection, tenantID)
			m.mu.RUnlock()
			select {
			case w.ch <- snap:
			case <-w.ctx.Done():
				return
			}
		}
	}
}

func (m *Memory) notifyWatchers(collection, tenantID string) {
	key := collection + "\x00" + tenantID
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, w := range m.watchers[key] {
		select {
		case w.notify <- struct{}{}:
		default: // a refresh is already pending
		}
	}
}

func (m *Memory) Close() error { return nil }

// snapshotLocked returns records for a tenant, or across tenants when
// tenantID is empty. Caller holds at least a read lock.
func (m *Memory) snapshotLocked(collection, tenantID string) []Record {
	var out []Record
	tenants := m.docs[collection]
	for tid, bucket := range tenants {
		if tenantID != "" && tid != tenantID {
			continue
		}
		for id, body := range bucket {
			out = append(out, Record{ID: id, Data: cloneBytes(body)})
		}
	}
	return out
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

var _ Store = (*Memory)(nil)
