// ABOUTME: Export and import functionality for workout data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportJSON exports the document in its on-disk shape.
func ExportJSON(doc *models.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// ParseDocument decodes a JSON document, as written by ExportJSON or found
// on disk.
func ParseDocument(data []byte) (*models.Document, error) {
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	doc.DropNil()
	return &doc, nil
}

// ExportYAML exports a flattened, human-readable view of the document.
func ExportYAML(doc *models.Document, now time.Time) ([]byte, error) {
	settings := doc.Settings()
	stats := doc.Stats()

	yamlData := struct {
		Version    string        `yaml:"version"`
		ExportedAt string        `yaml:"exported_at"`
		Tool       string        `yaml:"tool"`
		Athlete    string        `yaml:"athlete"`
		WeightUnit string        `yaml:"weight_unit"`
		Stats      yamlStats     `yaml:"stats"`
		Sessions   []yamlSession `yaml:"sessions"`
	}{
		Version:    "1.0",
		ExportedAt: now.Format(time.RFC3339),
		Tool:       "fittrack",
		Athlete:    settings.Name,
		WeightUnit: settings.WeightUnit,
		Stats: yamlStats{
			Sessions:       stats.TotalSessions,
			Exercises:      stats.TotalExercises,
			Volume:         stats.TotalVolume,
			WeeklyWorkouts: stats.WeeklyWorkouts,
		},
		Sessions: make([]yamlSession, 0),
	}

	for _, s := range doc.SessionList() {
		ys := yamlSession{
			ID:     s.ID,
			Name:   s.Name,
			Type:   s.WorkoutType,
			Date:   s.Date,
			Time:   s.Time,
			Volume: s.TotalVolume(),
		}
		for _, e := range s.ExerciseList() {
			ye := yamlExercise{
				ID:          e.ID,
				Name:        e.Name,
				MuscleGroup: e.MuscleGroup,
			}
			for _, set := range e.SortedSets() {
				ye.Sets = append(ye.Sets, yamlSet{
					Number: set.SetNumber,
					Weight: set.Weight,
					Reps:   set.Reps,
					Volume: set.Volume,
				})
			}
			ys.Exercises = append(ys.Exercises, ye)
		}
		yamlData.Sessions = append(yamlData.Sessions, ys)
	}

	return yaml.Marshal(yamlData)
}

type yamlStats struct {
	Sessions       int `yaml:"sessions"`
	Exercises      int `yaml:"exercises"`
	Volume         int `yaml:"volume"`
	WeeklyWorkouts int `yaml:"weekly_workouts"`
}

type yamlSession struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name"`
	Type      string         `yaml:"type"`
	Date      string         `yaml:"date"`
	Time      string         `yaml:"time"`
	Volume    float64        `yaml:"volume"`
	Exercises []yamlExercise `yaml:"exercises,omitempty"`
}

type yamlExercise struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	MuscleGroup string    `yaml:"muscle_group"`
	Sets        []yamlSet `yaml:"sets,omitempty"`
}

type yamlSet struct {
	Number int     `yaml:"set"`
	Weight float64 `yaml:"weight"`
	Reps   int     `yaml:"reps"`
	Volume float64 `yaml:"volume"`
}

// ExportMarkdown exports the document as Markdown, one table per session,
// newest session first.
func ExportMarkdown(doc *models.Document, now time.Time) string {
	var sb strings.Builder
	unit := doc.Settings().WeightUnit
	stats := doc.Stats()

	sb.WriteString(fmt.Sprintf("# Workout Export - %s\n\n", now.Format(models.DateLayout)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Sessions: %d | Exercises: %d | Total volume: %d %s | This week: %d\n\n",
		stats.TotalSessions, stats.TotalExercises, stats.TotalVolume, unit, stats.WeeklyWorkouts))

	sessions := doc.SessionList()
	models.SortByRecent(sessions)

	for _, s := range sessions {
		sb.WriteString(fmt.Sprintf("## %s (%s) - %s %s\n\n", s.Name, s.WorkoutType, s.Date, s.Time))

		exercises := s.ExerciseList()
		if len(exercises) == 0 {
			sb.WriteString("_No exercises recorded._\n\n")
			continue
		}

		sb.WriteString("| Exercise | Muscle | Set | Weight | Reps | Volume |\n")
		sb.WriteString("|----------|--------|-----|--------|------|--------|\n")
		for _, e := range exercises {
			sets := e.SortedSets()
			if len(sets) == 0 {
				sb.WriteString(fmt.Sprintf("| %s | %s | - | - | - | - |\n", e.Name, e.MuscleGroup))
				continue
			}
			for _, set := range sets {
				sb.WriteString(fmt.Sprintf("| %s | %s | %d | %.1f %s | %d | %.1f |\n",
					e.Name, e.MuscleGroup, set.SetNumber, set.Weight, unit, set.Reps, set.Volume))
			}
		}
		sb.WriteString(fmt.Sprintf("\nSession volume: %.1f %s\n\n", s.TotalVolume(), unit))
	}

	return sb.String()
}
