package sqlite

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, func()) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}

	cleanup := func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	}

	return store, cleanup
}

func TestLoad_Empty(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	raw, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if raw != nil {
		t.Fatalf("expected nil snapshot, got %d bytes", len(raw))
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	snapshot := []byte(`{"habits":[],"completions":[],"total_points":9}`)
	if err := store.Save(snapshot); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	raw, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(raw) != string(snapshot) {
		t.Fatalf("got %q, want %q", raw, snapshot)
	}
}

func TestSave_UpsertsSingleRow(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	for _, snap := range []string{`{"total_points":1}`, `{"total_points":2}`, `{"total_points":3}`} {
		if err := store.Save([]byte(snap)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	raw, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(raw) != `{"total_points":3}` {
		t.Fatalf("got %q, want latest snapshot", raw)
	}

	var count int
	if err := store.db.QueryRow(`SELECT COUNT(*) FROM state`).Scan(&count); err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("got %d state rows, want 1", count)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if err := store.Save([]byte(`{}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}
