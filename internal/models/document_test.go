// ABOUTME: Tests for the Document model.
// ABOUTME: Covers empty detection, defaults, JSON shape, and deep copies.
package models

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmptyDocument(t *testing.T) {
	d := &Document{}
	if !d.IsEmpty() {
		t.Error("expected zero Document to be empty")
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("empty document encoded as %s, want {}", data)
	}

	if d.Stats() != (AppStats{}) {
		t.Error("expected zeroed stats for empty document")
	}
	if d.Settings() != DefaultUserSettings() {
		t.Error("expected default settings for empty document")
	}
}

func TestNewDocument(t *testing.T) {
	d := NewDocument()
	if d.IsEmpty() {
		t.Error("expected NewDocument not to be empty")
	}
	if d.Settings().WeightUnit != "kg" {
		t.Errorf("WeightUnit = %s, want kg", d.Settings().WeightUnit)
	}
	if d.Settings().Theme != "dark" {
		t.Errorf("Theme = %s, want dark", d.Settings().Theme)
	}
}

func TestDocumentJSONKeepsInsertionOrder(t *testing.T) {
	d := NewDocument()
	for _, id := range []string{"session_zzzzzzzz", "session_aaaaaaaa", "session_mmmmmmmm"} {
		s := NewSession(id, WorkoutCustom, fixedNow)
		s.ID = id
		d.Sessions().Set(id, s)
	}

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	z := strings.Index(string(data), `"session_zzzzzzzz":`)
	a := strings.Index(string(data), `"session_aaaaaaaa":`)
	m := strings.Index(string(data), `"session_mmmmmmmm":`)
	if !(z < a && a < m) {
		t.Errorf("sessions not in insertion order: %s", data)
	}

	var back Document
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	var ids []string
	for _, s := range back.SessionList() {
		ids = append(ids, s.ID)
	}
	want := []string{"session_zzzzzzzz", "session_aaaaaaaa", "session_mmmmmmmm"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("decoded order mismatch (-want +got):\n%s", diff)
	}
}

func TestDocumentDecodesOriginalLayout(t *testing.T) {
	raw := `{
  "app_stats": {"total_exercises": 1, "total_sessions": 1, "total_volume": 500, "weekly_workouts": 1},
  "workout_sessions": {
    "session_1a2b3c4d": {
      "id": "session_1a2b3c4d", "name": "Leg Day", "date": "2025-03-14", "time": "18:45",
      "workout_type": "Legs",
      "exercises": {
        "exercise_5e6f7a8b": {
          "id": "exercise_5e6f7a8b", "name": "Squat", "muscle_group": "Legs",
          "sets": {"set_1": {"set_number": 1, "weight": 100.0, "reps": 5, "volume": 500.0, "created_at": "18:50"}},
          "created_at": "18:46"
        }
      },
      "status": "active"
    }
  },
  "user_settings": {"name": "Sam", "weight_unit": "kg", "theme": "dark"}
}`
	var d Document
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	s, ok := d.Sessions().Get("session_1a2b3c4d")
	if !ok {
		t.Fatal("session not decoded")
	}
	e, ok := s.Exercises.Get("exercise_5e6f7a8b")
	if !ok {
		t.Fatal("exercise not decoded")
	}
	set, ok := e.Sets.Get("set_1")
	if !ok {
		t.Fatal("set not decoded")
	}
	if set.Volume != 500 || set.Reps != 5 {
		t.Errorf("set decoded wrong: %+v", set)
	}
	if d.Settings().Name != "Sam" {
		t.Errorf("settings name = %s, want Sam", d.Settings().Name)
	}
}

func TestDocumentCloneIsDeep(t *testing.T) {
	d := NewDocument()
	s := NewSession("Push", WorkoutPush, fixedNow)
	d.Sessions().Set(s.ID, s)
	d.AppStats.TotalSessions = 1

	c := d.Clone()
	c.AppStats.TotalSessions = 42
	c.UserSettings.Name = "changed"
	c.Sessions().Delete(s.ID)

	if d.AppStats.TotalSessions != 1 {
		t.Error("clone shares AppStats with original")
	}
	if d.UserSettings.Name == "changed" {
		t.Error("clone shares UserSettings with original")
	}
	if d.Sessions().Len() != 1 {
		t.Error("clone shares session map with original")
	}
}

func TestCloneKeepsAbsentSections(t *testing.T) {
	c := (&Document{}).Clone()
	if !c.IsEmpty() {
		t.Error("clone of empty document should stay empty")
	}
}

func TestDropNilRemovesNullEntries(t *testing.T) {
	raw := `{"workout_sessions": {
    "s_gone": null,
    "s1": {"id": "s1", "name": "Push", "date": "2025-03-14", "time": "18:45", "workout_type": "Push",
      "exercises": {
        "e_gone": null,
        "e1": {"id": "e1", "name": "Bench Press", "muscle_group": "Chest",
          "sets": {"set_1": null, "set_2": {"set_number": 2, "weight": 60, "reps": 5, "volume": 300}}}
      },
      "status": "active"}
  }}`
	var d Document
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// The list helpers skip nulls even before pruning.
	if got := len(d.SessionList()); got != 1 {
		t.Errorf("SessionList len = %d, want 1", got)
	}
	if got := d.SessionList()[0].SetCount(); got != 1 {
		t.Errorf("SetCount = %d, want 1", got)
	}
	if c := d.Clone(); c.WorkoutSessions.Len() != 1 {
		t.Errorf("Clone kept %d sessions, want 1", c.WorkoutSessions.Len())
	}

	if got := d.DropNil(); got != 3 {
		t.Errorf("DropNil = %d, want 3", got)
	}
	if got := d.DropNil(); got != 0 {
		t.Errorf("second DropNil = %d, want 0", got)
	}

	s, _ := d.WorkoutSessions.Get("s1")
	if s.Exercises.Len() != 1 {
		t.Errorf("exercises len = %d, want 1", s.Exercises.Len())
	}
	e, _ := s.Exercises.Get("e1")
	var keys []string
	for pair := e.Sets.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	if diff := cmp.Diff([]string{"set_2"}, keys); diff != "" {
		t.Errorf("set keys mismatch (-want +got):\n%s", diff)
	}
}
