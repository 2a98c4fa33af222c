// ABOUTME: Tests for workout type and muscle group catalogs.
// ABOUTME: Covers canonicalization, templates, and default names.
package models

import "testing"

func TestCanonicalWorkoutType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"push", WorkoutPush},
		{" LEGS ", WorkoutLegs},
		{"Cardio", WorkoutCardio},
		{"Yoga", "Yoga"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := CanonicalWorkoutType(tt.in); got != tt.want {
				t.Errorf("CanonicalWorkoutType(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFindTemplate(t *testing.T) {
	tmpl, ok := FindTemplate("legs")
	if !ok {
		t.Fatal("expected legs template")
	}
	if tmpl.Name != "Quick Legs" || tmpl.WorkoutType != WorkoutLegs {
		t.Errorf("template = %+v", tmpl)
	}

	if _, ok := FindTemplate("custom"); ok {
		t.Error("Custom has no quick template")
	}
}

func TestDefaultSessionName(t *testing.T) {
	if got := DefaultSessionName(WorkoutPush); got != "Push Workout" {
		t.Errorf("DefaultSessionName(Push) = %q", got)
	}
	if got := DefaultSessionName(""); got != "Custom Workout" {
		t.Errorf("DefaultSessionName(\"\") = %q", got)
	}
}

func TestMuscleGroupFor(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Bench Press", MuscleChest},
		{"squat", MuscleLegs},
		{"Deadlift", MuscleBack},
		{"Pull-ups", MuscleBack},
		{"Curl", MuscleGeneral},
	}
	for _, tt := range tests {
		if got := MuscleGroupFor(tt.name); got != tt.want {
			t.Errorf("MuscleGroupFor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
