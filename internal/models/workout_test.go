// ABOUTME: Tests for Session, Exercise, and Set models.
// ABOUTME: Validates constructors, set numbering, volume, and deep copies.
package models

import (
	"regexp"
	"testing"
	"time"
)

var fixedNow = time.Date(2025, 3, 14, 18, 45, 0, 0, time.Local)

func TestNewSession(t *testing.T) {
	s := NewSession("Leg Day", WorkoutLegs, fixedNow)

	if !regexp.MustCompile(`^session_[0-9a-f]{8}$`).MatchString(s.ID) {
		t.Errorf("ID = %q, want session_<8 hex>", s.ID)
	}
	if s.Name != "Leg Day" {
		t.Errorf("Name = %s, want Leg Day", s.Name)
	}
	if s.Date != "2025-03-14" {
		t.Errorf("Date = %s, want 2025-03-14", s.Date)
	}
	if s.Time != "18:45" {
		t.Errorf("Time = %s, want 18:45", s.Time)
	}
	if s.Status != StatusActive {
		t.Errorf("Status = %s, want active", s.Status)
	}
	if s.Exercises == nil || s.Exercises.Len() != 0 {
		t.Error("expected empty exercise map")
	}
}

func TestNewSessionDefaultsToCustom(t *testing.T) {
	s := NewSession("Anything", "", fixedNow)
	if s.WorkoutType != WorkoutCustom {
		t.Errorf("WorkoutType = %s, want Custom", s.WorkoutType)
	}
}

func TestNewExercise(t *testing.T) {
	e := NewExercise("Squat", "", fixedNow)

	if !regexp.MustCompile(`^exercise_[0-9a-f]{8}$`).MatchString(e.ID) {
		t.Errorf("ID = %q, want exercise_<8 hex>", e.ID)
	}
	if e.MuscleGroup != MuscleGeneral {
		t.Errorf("MuscleGroup = %s, want General", e.MuscleGroup)
	}
	if e.CreatedAt != "18:45" {
		t.Errorf("CreatedAt = %s, want 18:45", e.CreatedAt)
	}
}

func TestNewSetComputesVolume(t *testing.T) {
	s := NewSet(1, 100, 5, fixedNow)
	if s.Volume != 500 {
		t.Errorf("Volume = %f, want 500", s.Volume)
	}

	s.Weight = 102.5
	s.Recompute()
	if s.Volume != 512.5 {
		t.Errorf("Volume after recompute = %f, want 512.5", s.Volume)
	}
}

func TestSetID(t *testing.T) {
	if got := SetID(3); got != "set_3" {
		t.Errorf("SetID(3) = %s, want set_3", got)
	}
}

func TestNextSetNumberNeverReuses(t *testing.T) {
	e := NewExercise("Bench Press", MuscleChest, fixedNow)

	for i := 1; i <= 3; i++ {
		n := e.NextSetNumber()
		e.SetMap().Set(SetID(n), NewSet(n, 60, 8, fixedNow))
	}

	// Remove the newest set; its number must not come back.
	e.SetMap().Delete("set_3")
	if n := e.NextSetNumber(); n != 4 {
		t.Errorf("NextSetNumber after delete = %d, want 4", n)
	}
}

func TestNextSetNumberLegacyDocument(t *testing.T) {
	// Documents written without the counter derive it from existing sets.
	e := NewExercise("Row", MuscleBack, fixedNow)
	e.SetMap().Set("set_1", NewSet(1, 50, 10, fixedNow))
	e.SetMap().Set("set_3", NewSet(3, 50, 10, fixedNow))

	if n := e.NextSetNumber(); n != 4 {
		t.Errorf("NextSetNumber = %d, want 4", n)
	}
}

func TestSortedSetsAndLastSet(t *testing.T) {
	e := NewExercise("Deadlift", MuscleBack, fixedNow)
	e.SetMap().Set("set_2", NewSet(2, 140, 3, fixedNow))
	e.SetMap().Set("set_1", NewSet(1, 120, 5, fixedNow))

	sorted := e.SortedSets()
	if len(sorted) != 2 || sorted[0].SetNumber != 1 || sorted[1].SetNumber != 2 {
		t.Fatalf("SortedSets order wrong: %+v", sorted)
	}
	if last := e.LastSet(); last == nil || last.Weight != 140 {
		t.Errorf("LastSet = %+v, want the 140kg set", last)
	}
	if got := e.TotalVolume(); got != 1020 {
		t.Errorf("TotalVolume = %f, want 1020", got)
	}
}

func TestLastSetEmpty(t *testing.T) {
	e := &Exercise{}
	if e.LastSet() != nil {
		t.Error("expected nil LastSet for an exercise without sets")
	}
	if e.TotalVolume() != 0 {
		t.Error("expected zero volume for an exercise without sets")
	}
}

func TestSessionTotals(t *testing.T) {
	s := NewSession("Push", WorkoutPush, fixedNow)
	bench := NewExercise("Bench Press", MuscleChest, fixedNow)
	bench.SetMap().Set("set_1", NewSet(1, 80, 5, fixedNow))
	bench.SetMap().Set("set_2", NewSet(2, 80, 5, fixedNow))
	dips := NewExercise("Dips", MuscleArms, fixedNow)
	dips.SetMap().Set("set_1", NewSet(1, 0, 12, fixedNow))
	s.ExerciseMap().Set(bench.ID, bench)
	s.ExerciseMap().Set(dips.ID, dips)

	if got := s.SetCount(); got != 3 {
		t.Errorf("SetCount = %d, want 3", got)
	}
	if got := s.TotalVolume(); got != 800 {
		t.Errorf("TotalVolume = %f, want 800", got)
	}
}

func TestSessionCloneIsDeep(t *testing.T) {
	s := NewSession("Pull", WorkoutPull, fixedNow)
	e := NewExercise("Row", MuscleBack, fixedNow)
	e.SetMap().Set("set_1", NewSet(1, 60, 10, fixedNow))
	s.ExerciseMap().Set(e.ID, e)

	c := s.Clone()
	ce, _ := c.Exercises.Get(e.ID)
	cs, _ := ce.Sets.Get("set_1")
	cs.Weight = 999
	ce.Name = "changed"

	orig, _ := e.Sets.Get("set_1")
	if orig.Weight != 60 {
		t.Error("mutating the clone's set changed the original")
	}
	if e.Name != "Row" {
		t.Error("mutating the clone's exercise changed the original")
	}
}

func TestSessionDay(t *testing.T) {
	s := NewSession("x", "", fixedNow)
	day, err := s.Day(time.Local)
	if err != nil {
		t.Fatalf("Day failed: %v", err)
	}
	if day.Year() != 2025 || day.Month() != time.March || day.Day() != 14 {
		t.Errorf("Day = %v, want 2025-03-14", day)
	}
}

func TestSortByRecent(t *testing.T) {
	mk := func(id, date, clock string) *Session {
		return &Session{ID: id, Date: date, Time: clock}
	}
	sessions := []*Session{
		mk("a", "2025-03-10", "09:00"),
		mk("b", "2025-03-14", "07:30"),
		mk("c", "2025-03-14", "18:00"),
		mk("d", "2025-01-02", "12:00"),
	}
	SortByRecent(sessions)

	var got string
	for _, s := range sessions {
		got += s.ID
	}
	if got != "cbad" {
		t.Errorf("order = %s, want cbad", got)
	}
}
