// ABOUTME: Known workout types, muscle groups, and quick-start templates.
// ABOUTME: Labels are suggestions; the store accepts any free-form string.
package models

import "strings"

// Workout type labels.
const (
	WorkoutPush   = "Push"
	WorkoutPull   = "Pull"
	WorkoutLegs   = "Legs"
	WorkoutCardio = "Cardio"
	WorkoutCustom = "Custom"
)

// Muscle group labels.
const (
	MuscleChest     = "Chest"
	MuscleBack      = "Back"
	MuscleLegs      = "Legs"
	MuscleArms      = "Arms"
	MuscleShoulders = "Shoulders"
	MuscleCore      = "Core"
	MuscleGeneral   = "General"
)

// WorkoutTypes lists the workout type labels offered to users.
var WorkoutTypes = []string{
	WorkoutPush, WorkoutPull, WorkoutLegs, WorkoutCardio, WorkoutCustom,
}

// MuscleGroups lists the muscle group labels offered to users.
var MuscleGroups = []string{
	MuscleChest, MuscleBack, MuscleLegs, MuscleArms, MuscleShoulders, MuscleCore,
}

// Template is a one-tap session preset.
type Template struct {
	Name        string
	WorkoutType string
}

// QuickTemplates are the presets behind "workout quick".
var QuickTemplates = []Template{
	{Name: "Quick Push", WorkoutType: WorkoutPush},
	{Name: "Quick Pull", WorkoutType: WorkoutPull},
	{Name: "Quick Legs", WorkoutType: WorkoutLegs},
	{Name: "Quick Cardio", WorkoutType: WorkoutCardio},
}

// commonExercises maps well-known exercises to their primary muscle group.
var commonExercises = map[string]string{
	"bench press": MuscleChest,
	"squat":       MuscleLegs,
	"deadlift":    MuscleBack,
	"pull-ups":    MuscleBack,
}

// CanonicalWorkoutType matches s case-insensitively against WorkoutTypes and
// returns the canonical label. Unknown labels are returned trimmed as-is.
func CanonicalWorkoutType(s string) string {
	s = strings.TrimSpace(s)
	for _, wt := range WorkoutTypes {
		if strings.EqualFold(wt, s) {
			return wt
		}
	}
	return s
}

// FindTemplate returns the quick template for a workout type, matched
// case-insensitively.
func FindTemplate(workoutType string) (Template, bool) {
	for _, t := range QuickTemplates {
		if strings.EqualFold(t.WorkoutType, workoutType) {
			return t, true
		}
	}
	return Template{}, false
}

// DefaultSessionName is used when a session is started without a name.
func DefaultSessionName(workoutType string) string {
	if workoutType == "" {
		workoutType = WorkoutCustom
	}
	return workoutType + " Workout"
}

// MuscleGroupFor guesses the muscle group of a common exercise, falling
// back to General.
func MuscleGroupFor(exerciseName string) string {
	if mg, ok := commonExercises[strings.ToLower(strings.TrimSpace(exerciseName))]; ok {
		return mg
	}
	return MuscleGeneral
}
