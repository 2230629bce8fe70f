// ABOUTME: Tests for the in-memory store and shared query semantics.
// ABOUTME: Covers CRUD, tenant isolation, list options, and watch.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func doc(t *testing.T, fields map[string]any) []byte {
	t.Helper()
	data, err := json.Marshal(fields)
	if err != nil {
		t.Fatalf("marshal doc: %v", err)
	}
	return data
}

func TestMemoryCRUD(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	body := doc(t, map[string]any{"nombre": "Ana", "estado": "activo"})
	if err := m.Create(ctx, "jugadores", "c1", "p1", body); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	r, err := m.Get(ctx, "jugadores", "c1", "p1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if r.ID != "p1" || r.Field("nombre") != "Ana" {
		t.Errorf("Get returned %s %s", r.ID, r.Field("nombre"))
	}

	patch := doc(t, map[string]any{"estado": "inactivo"})
	if err := m.Update(ctx, "jugadores", "c1", "p1", patch); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	r, _ = m.Get(ctx, "jugadores", "c1", "p1")
	if r.Field("estado") != "inactivo" {
		t.Errorf("estado = %s after patch, want inactivo", r.Field("estado"))
	}
	if r.Field("nombre") != "Ana" {
		t.Error("shallow merge dropped an untouched field")
	}

	if err := m.Delete(ctx, "jugadores", "c1", "p1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := m.Get(ctx, "jugadores", "c1", "p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryNotFound(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	if _, err := m.Get(ctx, "jugadores", "c1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get = %v, want ErrNotFound", err)
	}
	if err := m.Update(ctx, "jugadores", "c1", "missing", []byte(`{}`)); !errors.Is(err, ErrNotFound) {
		t.Errorf("Update = %v, want ErrNotFound", err)
	}
	if err := m.Delete(ctx, "jugadores", "c1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete = %v, want ErrNotFound", err)
	}
}

func TestMemoryTenantIsolation(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Create(ctx, "jugadores", "c1", "p1", doc(t, map[string]any{"nombre": "Ana"}))
	m.Create(ctx, "jugadores", "c2", "p2", doc(t, map[string]any{"nombre": "Berta"}))

	records, err := m.List(ctx, "jugadores", "c1")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 || records[0].ID != "p1" {
		t.Errorf("tenant c1 sees %d records, want only p1", len(records))
	}

	// The other tenant's document is invisible even by id.
	if _, err := m.Get(ctx, "jugadores", "c1", "p2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-tenant Get = %v, want ErrNotFound", err)
	}

	// The unscoped scan used by identity resolution sees both.
	all, err := m.List(ctx, "jugadores", "")
	if err != nil {
		t.Fatalf("unscoped List failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("unscoped List = %d records, want 2", len(all))
	}
}

func TestMemoryListOptions(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.Create(ctx, "bienestar", "c1", "r1", doc(t, map[string]any{"jugadorId": "p1", "fecha": "2024-05-01"}))
	m.Create(ctx, "bienestar", "c1", "r2", doc(t, map[string]any{"jugadorId": "p1", "fecha": "2024-05-02"}))
	m.Create(ctx, "bienestar", "c1", "r3", doc(t, map[string]any{"jugadorId": "p2", "fecha": "2024-05-01"}))

	records, err := m.List(ctx, "bienestar", "c1",
		WhereEq("jugadorId", "p1"), SortBy("fecha", true))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("filtered List = %d records, want 2", len(records))
	}
	if records[0].Field("fecha") != "2024-05-02" {
		t.Errorf("descending sort put %s first", records[0].Field("fecha"))
	}

	records, _ = m.List(ctx, "bienestar", "c1",
		WhereEq("jugadorId", "p1"), WhereEq("fecha", "2024-05-01"), Limit(1))
	if len(records) != 1 || records[0].ID != "r1" {
		t.Errorf("compound filter returned %+v, want only r1", records)
	}
}

func TestMemoryFailureInjection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.FailWrites(ErrUnavailable)
	err := m.Create(ctx, "jugadores", "c1", "p1", []byte(`{}`))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Create under failure = %v, want ErrUnavailable", err)
	}

	m.FailWrites(nil)
	if err := m.Create(ctx, "jugadores", "c1", "p1", []byte(`{}`)); err != nil {
		t.Fatalf("Create after heal failed: %v", err)
	}

	m.FailReads(ErrPermissionDenied)
	if _, err := m.List(ctx, "jugadores", "c1"); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("List under failure = %v, want ErrPermissionDenied", err)
	}
}

func TestMemoryWatch(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := m.Watch(ctx, "actividades", "c1")
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	// Initial snapshot is empty.
	snap := recvSnapshot(t, ch)
	if len(snap) != 0 {
		t.Errorf("initial snapshot has %d records, want 0", len(snap))
	}

	m.Create(ctx, "actividades", "c1", "a1", doc(t, map[string]any{"titulo": "⚽ vs Rival FC"}))
	snap = recvSnapshot(t, ch)
	if len(snap) != 1 || snap[0].ID != "a1" {
		t.Errorf("snapshot after create = %+v", snap)
	}

	// Another tenant's write does not wake this watcher; the next event we
	// see must come from our own tenant.
	m.Create(ctx, "actividades", "c2", "other", doc(t, map[string]any{"titulo": "x"}))
	m.Delete(ctx, "actividades", "c1", "a1")
	snap = recvSnapshot(t, ch)
	if len(snap) != 0 {
		t.Errorf("snapshot after delete = %+v, want empty", snap)
	}

	cancel()
	if _, ok := waitClosed(t, ch); ok {
		t.Error("expected channel to close after cancel")
	}
}

func recvSnapshot(t *testing.T, ch <-chan []Record) []Record {
	t.Helper()
	select {
	case snap := <-ch:
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for watch snapshot")
		return nil
	}
}

// waitClosed drains ch until it closes or times out.
func waitClosed(t *testing.T, ch <-chan []Record) ([]Record, bool) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case snap, ok := <-ch:
			if !ok {
				return nil, false
			}
			_ = snap
		case <-deadline:
			t.Fatal("timed out waiting for watch channel to close")
			return nil, true
		}
	}
}

func TestApplyListOptionsStableSort(t *testing.T) {
	records := []Record{
		{ID: "b", Data: []byte(`{"fecha":"2024-05-01","orden":"2"}`)},
		{ID: "a", Data: []byte(`{"fecha":"2024-05-01","orden":"1"}`)},
		{ID: "c", Data: []byte(`{"fecha":"2024-04-30","orden":"3"}`)},
	}

	out := ApplyListOptions(records, ListOptions{SortField: "fecha"})
	if out[0].ID != "c" {
		t.Errorf("ascending sort put %s first, want c", out[0].ID)
	}
	// Equal keys keep their input order.
	if out[1].ID != "b" || out[2].ID != "a" {
		t.Errorf("stable sort reordered equal keys: %s, %s", out[1].ID, out[2].ID)
	}
}

func TestRecordField(t *testing.T) {
	r := Record{Data: []byte(`{"nombre":"Ana","microciclo":3,"peso":70.5,"nulo":null}`)}

	tests := []struct {
		field string
		want  string
	}{
		{"nombre", "Ana"},
		{"microciclo", "3"},
		{"peso", "70.5"},
		{"nulo", ""},
		{"ausente", ""},
	}
	for _, tt := range tests {
		if got := r.Field(tt.field); got != tt.want {
			t.Errorf("Field(%s) = %q, want %q", tt.field, got, tt.want)
		}
	}
}

func TestMergePatch(t *testing.T) {
	existing := []byte(`{"nombre":"Ana","estado":"activo","posicion":"delantera"}`)
	patch := []byte(`{"estado":"inactivo","foto":"ana.jpg"}`)

	merged, err := MergePatch(existing, patch)
	if err != nil {
		t.Fatalf("MergePatch failed: %v", err)
	}

	var out map[string]string
	if err := json.Unmarshal(merged, &out); err != nil {
		t.Fatalf("unmarshal merged: %v", err)
	}
	want := map[string]string{
		"nombre": "Ana", "estado": "inactivo",
		"posicion": "delantera", "foto": "ana.jpg",
	}
	for k, v := range want {
		if out[k] != v {
			t.Errorf("merged[%s] = %q, want %q", k, out[k], v)
		}
	}
}

func TestMergePatchInvalid(t *testing.T) {
	if _, err := MergePatch([]byte(`not json`), []byte(`{}`)); err == nil {
		t.Error("expected error for invalid existing document")
	}
	if _, err := MergePatch([]byte(`{}`), []byte(`not json`)); err == nil {
		t.Error("expected error for invalid patch")
	}
}
