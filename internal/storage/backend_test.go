// ABOUTME: Tests for the JSON file and SQLite backends.
// ABOUTME: Verifies missing data, atomic replacement, permissions, and upserts.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestJSONFileMissing(t *testing.T) {
	b := NewJSONFile(filepath.Join(t.TempDir(), "nested", DefaultDataFile))
	data, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data != nil {
		t.Errorf("Load = %q, want nil", data)
	}
}

func TestJSONFileSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	path := filepath.Join(dir, DefaultDataFile)
	b := NewJSONFile(path)

	if err := b.Save([]byte(`{"a": 1}`)); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := b.Save([]byte(`{"a": 2}`)); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != `{"a": 2}` {
		t.Errorf("Load = %s", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != DefaultDataFile {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("leftover files in data dir: %v", names)
	}

	if runtime.GOOS != "windows" {
		info, _ := os.Stat(path)
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("file mode = %o, want 600", perm)
		}
	}
}

func TestSQLiteBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultDBFile)
	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer b.Close()

	data, err := b.Load()
	if err != nil {
		t.Fatalf("Load on empty db failed: %v", err)
	}
	if data != nil {
		t.Errorf("Load on empty db = %q, want nil", data)
	}

	for _, body := range []string{`{"v": 1}`, `{"v": 2}`} {
		if err := b.Save([]byte(body)); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	var rows int
	if err := b.db.QueryRow(`SELECT COUNT(*) FROM documents`).Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 1 {
		t.Errorf("documents rows = %d, want 1", rows)
	}

	got, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != `{"v": 2}` {
		t.Errorf("Load = %s", got)
	}
}

func TestStoreOnSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultDBFile)
	b, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	s := Open(b)
	s.EnsureInitialized()
	sid := s.CreateSession("Leg Day", "Legs")
	eid, _ := s.AddExercise(sid, "Squat", "Legs")
	s.AddSet(sid, eid, 100, 5)
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	b2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	s2 := Open(b2)
	defer s2.Close()

	if _, ok := s2.GetSession(sid); !ok {
		t.Error("session not persisted in sqlite")
	}
	if got := s2.AppStats().TotalVolume; got != 500 {
		t.Errorf("TotalVolume = %d, want 500", got)
	}
}
