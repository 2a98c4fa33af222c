// ABOUTME: Tests for data migration between storage backends.
// ABOUTME: Covers json-to-sqlite copies and refusal to overwrite.
package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMigrateDataJSONToSQLite(t *testing.T) {
	src, _, _ := setupTestStore(t)
	src.EnsureInitialized()
	sid := src.CreateSession("Leg Day", "Legs")
	eid, _ := src.AddExercise(sid, "Squat", "Legs")
	src.AddSet(sid, eid, 100, 5)
	src.AddSet(sid, eid, 100, 5)
	src.CreateSession("Rest", "")

	dst, err := OpenSQLite(filepath.Join(t.TempDir(), DefaultDBFile))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer dst.Close()

	summary, err := MigrateData(src.Backend(), dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	want := MigrateSummary{Sessions: 2, Exercises: 1, Sets: 2}
	if *summary != want {
		t.Errorf("summary = %+v, want %+v", *summary, want)
	}

	migrated := Open(dst)
	if diff := cmp.Diff(src.Document(), migrated.Document(), docOptions); diff != "" {
		t.Errorf("migrated document mismatch (-src +dst):\n%s", diff)
	}
}

func TestMigrateDataRefusesNonEmptyDestination(t *testing.T) {
	src := &memoryBackend{data: []byte(`{}`)}
	dst := &memoryBackend{data: []byte(`{"user_settings": {}}`)}

	_, err := MigrateData(src, dst)
	if !errors.Is(err, ErrDestinationNotEmpty) {
		t.Errorf("err = %v, want ErrDestinationNotEmpty", err)
	}
}

func TestMigrateDataEmptySource(t *testing.T) {
	dst := &memoryBackend{}
	summary, err := MigrateData(&memoryBackend{}, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Sessions != 0 || dst.saves != 0 {
		t.Errorf("empty source should copy nothing: %+v, saves=%d", summary, dst.saves)
	}
}

func TestMigrateDataInvalidSource(t *testing.T) {
	_, err := MigrateData(&memoryBackend{data: []byte("garbage")}, &memoryBackend{})
	if err == nil {
		t.Error("expected error for undecodable source")
	}
}
