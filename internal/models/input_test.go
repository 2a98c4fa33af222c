// ABOUTME: Tests for input validation.
// ABOUTME: Covers accepted values, bounds, and error messages.
package models

import (
	"math"
	"strings"
	"testing"
)

func TestSetInputValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     SetInput
		wantErr   bool
		errSubstr string
	}{
		{name: "valid", input: SetInput{Weight: 100, Reps: 5, Count: 1}},
		{name: "bodyweight", input: SetInput{Weight: 0, Reps: 12, Count: 3}},
		{name: "max batch", input: SetInput{Weight: 20, Reps: 10, Count: MaxBatchSets}},
		{name: "negative weight", input: SetInput{Weight: -1, Reps: 5, Count: 1}, wantErr: true, errSubstr: "weight"},
		{name: "zero reps", input: SetInput{Weight: 50, Reps: 0, Count: 1}, wantErr: true, errSubstr: "reps"},
		{name: "zero count", input: SetInput{Weight: 50, Reps: 5, Count: 0}, wantErr: true, errSubstr: "count"},
		{name: "too many sets", input: SetInput{Weight: 50, Reps: 5, Count: 11}, wantErr: true, errSubstr: "at most 10"},
		{name: "heaviest allowed", input: SetInput{Weight: MaxWeight, Reps: MaxReps, Count: 1}},
		{name: "huge weight", input: SetInput{Weight: 1e308, Reps: 2, Count: 1}, wantErr: true, errSubstr: "at most 2000"},
		{name: "infinite weight", input: SetInput{Weight: math.Inf(1), Reps: 2, Count: 1}, wantErr: true, errSubstr: "finite"},
		{name: "NaN weight", input: SetInput{Weight: math.NaN(), Reps: 2, Count: 1}, wantErr: true, errSubstr: "finite"},
		{name: "too many reps", input: SetInput{Weight: 50, Reps: MaxReps + 1, Count: 1}, wantErr: true, errSubstr: "reps must be at most 1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("error %q does not contain %q", err, tt.errSubstr)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSetUpdateValidate(t *testing.T) {
	w := 80.0
	badReps := 0

	if err := (SetUpdate{}).Validate(); err == nil {
		t.Error("expected error for empty update")
	}
	if err := (SetUpdate{Weight: &w}).Validate(); err != nil {
		t.Errorf("weight-only update rejected: %v", err)
	}
	if err := (SetUpdate{Reps: &badReps}).Validate(); err == nil {
		t.Error("expected error for zero reps")
	}

	for _, bad := range []float64{1e308, math.Inf(1), math.NaN(), -0.5} {
		weight := bad
		if err := (SetUpdate{Weight: &weight}).Validate(); err == nil {
			t.Errorf("expected error for weight %v", bad)
		}
	}
}

func TestSessionAndExerciseInput(t *testing.T) {
	if err := (SessionInput{Name: "", WorkoutType: WorkoutPush}).Validate(); err != nil {
		t.Errorf("blank session name should be allowed: %v", err)
	}
	if err := (SessionInput{Name: "x"}).Validate(); err == nil {
		t.Error("expected error for missing workout type")
	}
	if err := (ExerciseInput{}).Validate(); err == nil {
		t.Error("expected error for missing exercise name")
	}
	if err := (ExerciseInput{Name: strings.Repeat("a", 81)}).Validate(); err == nil {
		t.Error("expected error for overlong exercise name")
	}
}
