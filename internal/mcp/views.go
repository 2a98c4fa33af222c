// ABOUTME: Flat JSON views of sessions for MCP clients.
// ABOUTME: Exercises and sets become ordered arrays carrying their ids.
package mcp

import (
	"sort"

	"github.com/harperreed/fittrack/internal/models"
)

type setView struct {
	ID        string  `json:"id"`
	SetNumber int     `json:"set_number"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Volume    float64 `json:"volume"`
	CreatedAt string  `json:"created_at"`
}

type exerciseView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	MuscleGroup string    `json:"muscle_group"`
	CreatedAt   string    `json:"created_at"`
	Volume      float64   `json:"volume"`
	Sets        []setView `json:"sets"`
	LastSet     *setView  `json:"last_set,omitempty"`
}

type sessionView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Date        string         `json:"date"`
	Time        string         `json:"time"`
	WorkoutType string         `json:"workout_type"`
	Status      string         `json:"status"`
	Volume      float64        `json:"volume"`
	SetCount    int            `json:"set_count"`
	Exercises   []exerciseView `json:"exercises"`
}

// sessionSummary is the list form of a session, without nested sets.
type sessionSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	WorkoutType string  `json:"workout_type"`
	Exercises   int     `json:"exercises"`
	Sets        int     `json:"sets"`
	Volume      float64 `json:"volume"`
}

func toSessionView(s *models.Session) sessionView {
	v := sessionView{
		ID:          s.ID,
		Name:        s.Name,
		Date:        s.Date,
		Time:        s.Time,
		WorkoutType: s.WorkoutType,
		Status:      s.Status,
		Volume:      s.TotalVolume(),
		SetCount:    s.SetCount(),
		Exercises:   []exerciseView{},
	}
	for _, e := range s.ExerciseList() {
		ev := exerciseView{
			ID:          e.ID,
			Name:        e.Name,
			MuscleGroup: e.MuscleGroup,
			CreatedAt:   e.CreatedAt,
			Volume:      e.TotalVolume(),
			Sets:        []setView{},
		}
		if e.Sets != nil {
			for pair := e.Sets.Oldest(); pair != nil; pair = pair.Next() {
				if pair.Value == nil {
					continue
				}
				ev.Sets = append(ev.Sets, toSetView(pair.Key, pair.Value))
			}
		}
		sort.SliceStable(ev.Sets, func(i, j int) bool {
			return ev.Sets[i].SetNumber < ev.Sets[j].SetNumber
		})
		if last := e.LastSet(); last != nil {
			lv := toSetView(models.SetID(last.SetNumber), last)
			ev.LastSet = &lv
		}
		v.Exercises = append(v.Exercises, ev)
	}
	return v
}

func toSetView(id string, set *models.Set) setView {
	return setView{
		ID:        id,
		SetNumber: set.SetNumber,
		Weight:    set.Weight,
		Reps:      set.Reps,
		Volume:    set.Volume,
		CreatedAt: set.CreatedAt,
	}
}

func toSessionSummary(s *models.Session) sessionSummary {
	return sessionSummary{
		ID:          s.ID,
		Name:        s.Name,
		Date:        s.Date,
		Time:        s.Time,
		WorkoutType: s.WorkoutType,
		Exercises:   len(s.ExerciseList()),
		Sets:        s.SetCount(),
		Volume:      s.TotalVolume(),
	}
}
