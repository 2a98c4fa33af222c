// ABOUTME: Builds the dashboard view model from a workout document.
// ABOUTME: Recent sessions, today's sessions, and per-exercise totals.
package dashboard

import (
	"sort"
	"strings"
	"time"

	"github.com/harperreed/fittrack/internal/models"
)

// RecentLimit is how many sessions the dashboard lists.
const RecentLimit = 5

// Summary is everything the dashboard shows.
type Summary struct {
	Athlete    string
	WeightUnit string
	Stats      models.AppStats
	Recent     []SessionSummary
	Today      []SessionSummary
	Exercises  []ExerciseSummary
}

// SessionSummary condenses one session.
type SessionSummary struct {
	ID          string
	Name        string
	WorkoutType string
	Date        string
	Time        string
	Exercises   int
	Sets        int
	Volume      float64
}

// ExerciseSummary aggregates every exercise sharing a name across sessions.
type ExerciseSummary struct {
	Name        string
	MuscleGroup string
	Sessions    int
	Sets        int
	Volume      float64
	BestWeight  float64
}

// Empty reports whether there is nothing to show yet.
func (s Summary) Empty() bool {
	return s.Stats.TotalSessions == 0 && len(s.Recent) == 0
}

// Build summarizes doc as of now.
func Build(doc *models.Document, now time.Time) Summary {
	settings := doc.Settings()
	summary := Summary{
		Athlete:    settings.Name,
		WeightUnit: settings.WeightUnit,
		Stats:      doc.Stats(),
	}

	sessions := doc.SessionList()
	models.SortByRecent(sessions)

	today := now.Format(models.DateLayout)
	byName := make(map[string]*ExerciseSummary)
	var order []string

	for i, s := range sessions {
		ss := summarizeSession(s)
		if i < RecentLimit {
			summary.Recent = append(summary.Recent, ss)
		}
		if s.Date == today {
			summary.Today = append(summary.Today, ss)
		}

		for _, e := range s.ExerciseList() {
			key := strings.ToLower(strings.TrimSpace(e.Name))
			agg, ok := byName[key]
			if !ok {
				agg = &ExerciseSummary{Name: e.Name, MuscleGroup: e.MuscleGroup}
				byName[key] = agg
				order = append(order, key)
			}
			agg.Sessions++
			for _, set := range e.SetList() {
				agg.Sets++
				agg.Volume += set.Volume
				if set.Weight > agg.BestWeight {
					agg.BestWeight = set.Weight
				}
			}
		}
	}

	for _, key := range order {
		summary.Exercises = append(summary.Exercises, *byName[key])
	}
	sort.SliceStable(summary.Exercises, func(i, j int) bool {
		return summary.Exercises[i].Volume > summary.Exercises[j].Volume
	})

	return summary
}

func summarizeSession(s *models.Session) SessionSummary {
	return SessionSummary{
		ID:          s.ID,
		Name:        s.Name,
		WorkoutType: s.WorkoutType,
		Date:        s.Date,
		Time:        s.Time,
		Exercises:   len(s.ExerciseList()),
		Sets:        s.SetCount(),
		Volume:      s.TotalVolume(),
	}
}
