// ABOUTME: Integration tests for the fittrack CLI.
// ABOUTME: Builds the binary and runs a full logging workflow against a temp data file.
package test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var idPattern = regexp.MustCompile(`ID: (\S+)`)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	binary := filepath.Join(t.TempDir(), "fittrack")

	buildCmd := exec.Command("go", "build", "-o", binary, "./cmd/fittrack")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	tmpDir := t.TempDir()
	dataPath := filepath.Join(tmpDir, "fitness_data.json")
	env := append(os.Environ(),
		"XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"),
		"XDG_DATA_HOME="+filepath.Join(tmpDir, "data"),
		"NO_COLOR=1",
	)

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--data", dataPath}, args...)
		cmd := exec.Command(binary, fullArgs...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}
	idFrom := func(output string) string {
		m := idPattern.FindStringSubmatch(output)
		if m == nil {
			t.Fatalf("No ID in output: %s", output)
		}
		return m[1]
	}

	output, err := run("workout", "start", "Leg Day", "--type", "legs")
	if err != nil {
		t.Fatalf("Failed to start workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Started Leg Day (Legs)") {
		t.Errorf("Expected 'Started Leg Day (Legs)' in output, got: %s", output)
	}
	sid := idFrom(output)

	output, err = run("exercise", "add", sid, "Squat")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	eid := idFrom(output)

	output, err = run("set", "add", sid, eid, "100", "5", "--count", "2")
	if err != nil {
		t.Fatalf("Failed to add sets: %v\n%s", err, output)
	}
	if !strings.Contains(output, "set_2") {
		t.Errorf("Expected set_2 in output, got: %s", output)
	}

	output, err = run("workout", "list")
	if err != nil {
		t.Fatalf("Failed to list workouts: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Leg Day") {
		t.Errorf("Expected 'Leg Day' in workout list, got: %s", output)
	}

	if output, err = run("set", "add", sid, eid, "100", "0"); err == nil {
		t.Errorf("Expected zero reps to fail, got: %s", output)
	}

	// The data file uses the documented layout.
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		t.Fatalf("Failed to read data file: %v", err)
	}
	var doc struct {
		AppStats struct {
			TotalExercises int `json:"total_exercises"`
			TotalSessions  int `json:"total_sessions"`
			TotalVolume    int `json:"total_volume"`
			WeeklyWorkouts int `json:"weekly_workouts"`
		} `json:"app_stats"`
		WorkoutSessions map[string]json.RawMessage `json:"workout_sessions"`
		UserSettings    map[string]string          `json:"user_settings"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Data file is not valid JSON: %v", err)
	}
	if doc.AppStats.TotalSessions != 1 || doc.AppStats.TotalExercises != 1 ||
		doc.AppStats.TotalVolume != 1000 || doc.AppStats.WeeklyWorkouts != 1 {
		t.Errorf("Unexpected app_stats: %+v", doc.AppStats)
	}
	if _, ok := doc.WorkoutSessions[sid]; !ok {
		t.Errorf("Expected session %s in workout_sessions", sid)
	}
	if doc.UserSettings["weight_unit"] != "kg" {
		t.Errorf("Expected default weight unit kg, got %q", doc.UserSettings["weight_unit"])
	}
}
