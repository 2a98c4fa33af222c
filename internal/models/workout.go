// ABOUTME: Session, Exercise, and Set models for workout tracking.
// ABOUTME: Sessions own exercises, exercises own sets; children live in insertion-ordered maps.
package models

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const (
	// DateLayout is the calendar-day format stored on sessions.
	DateLayout = "2006-01-02"
	// ClockLayout is the wall-clock format stored on sessions, exercises, and sets.
	ClockLayout = "15:04"

	// StatusActive is the only session status currently written.
	StatusActive = "active"
)

// SessionMap maps session IDs to sessions in insertion order.
type SessionMap = orderedmap.OrderedMap[string, *Session]

// ExerciseMap maps exercise IDs to exercises in insertion order.
type ExerciseMap = orderedmap.OrderedMap[string, *Exercise]

// SetMap maps set IDs to sets in insertion order.
type SetMap = orderedmap.OrderedMap[string, *Set]

// Session is one workout occasion containing zero or more exercises.
type Session struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	WorkoutType string       `json:"workout_type"`
	Exercises   *ExerciseMap `json:"exercises"`
	Status      string       `json:"status"`
}

// NewSessionID returns a fresh session identifier (session_<8 hex>).
func NewSessionID() string {
	return "session_" + uuid.NewString()[:8]
}

// NewSession creates an active session stamped with the date and time of now.
func NewSession(name, workoutType string, now time.Time) *Session {
	if workoutType == "" {
		workoutType = WorkoutCustom
	}
	return &Session{
		ID:          NewSessionID(),
		Name:        name,
		Date:        now.Format(DateLayout),
		Time:        now.Format(ClockLayout),
		WorkoutType: workoutType,
		Exercises:   orderedmap.New[string, *Exercise](),
		Status:      StatusActive,
	}
}

// ExerciseMap returns the session's exercises, allocating the map if a
// decoded document left it empty.
func (s *Session) ExerciseMap() *ExerciseMap {
	if s.Exercises == nil {
		s.Exercises = orderedmap.New[string, *Exercise]()
	}
	return s.Exercises
}

// ExerciseList returns the exercises in insertion order.
func (s *Session) ExerciseList() []*Exercise {
	var out []*Exercise
	if s.Exercises == nil {
		return out
	}
	for pair := s.Exercises.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value != nil {
			out = append(out, pair.Value)
		}
	}
	return out
}

// SetCount returns the number of sets across all exercises.
func (s *Session) SetCount() int {
	n := 0
	for _, e := range s.ExerciseList() {
		n += len(e.SetList())
	}
	return n
}

// TotalVolume sums the volume of every set in the session.
func (s *Session) TotalVolume() float64 {
	var total float64
	for _, e := range s.ExerciseList() {
		total += e.TotalVolume()
	}
	return total
}

// Day parses the session date in loc.
func (s *Session) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s.Date, loc)
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Exercises = orderedmap.New[string, *Exercise]()
	if s.Exercises != nil {
		for pair := s.Exercises.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value != nil {
				c.Exercises.Set(pair.Key, pair.Value.Clone())
			}
		}
	}
	return &c
}

// SortByRecent orders sessions newest first by date, then time.
func SortByRecent(sessions []*Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].Date != sessions[j].Date {
			return sessions[i].Date > sessions[j].Date
		}
		return sessions[i].Time > sessions[j].Time
	})
}

// Exercise is one named movement within a session.
type Exercise struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	MuscleGroup string  `json:"muscle_group"`
	Sets        *SetMap `json:"sets"`
	CreatedAt   string  `json:"created_at"`

	// LastSetNumber is the highest set number ever assigned in this exercise.
	LastSetNumber int `json:"last_set_number,omitempty"`
}

// NewExerciseID returns a fresh exercise identifier (exercise_<8 hex>).
func NewExerciseID() string {
	return "exercise_" + uuid.NewString()[:8]
}

// NewExercise creates an exercise with no sets.
func NewExercise(name, muscleGroup string, now time.Time) *Exercise {
	if muscleGroup == "" {
		muscleGroup = MuscleGeneral
	}
	return &Exercise{
		ID:          NewExerciseID(),
		Name:        name,
		MuscleGroup: muscleGroup,
		Sets:        orderedmap.New[string, *Set](),
		CreatedAt:   now.Format(ClockLayout),
	}
}

// SetMap returns the exercise's sets, allocating the map if needed.
func (e *Exercise) SetMap() *SetMap {
	if e.Sets == nil {
		e.Sets = orderedmap.New[string, *Set]()
	}
	return e.Sets
}

// SetList returns the sets in insertion order.
func (e *Exercise) SetList() []*Set {
	var out []*Set
	if e.Sets == nil {
		return out
	}
	for pair := e.Sets.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value != nil {
			out = append(out, pair.Value)
		}
	}
	return out
}

// SortedSets returns the sets ordered by set number.
func (e *Exercise) SortedSets() []*Set {
	sets := e.SetList()
	sort.SliceStable(sets, func(i, j int) bool {
		return sets[i].SetNumber < sets[j].SetNumber
	})
	return sets
}

// LastSet returns the set with the highest set number, or nil.
func (e *Exercise) LastSet() *Set {
	var last *Set
	for _, s := range e.SetList() {
		if last == nil || s.SetNumber > last.SetNumber {
			last = s
		}
	}
	return last
}

// TotalVolume sums the volume of the exercise's sets.
func (e *Exercise) TotalVolume() float64 {
	var total float64
	for _, s := range e.SetList() {
		total += s.Volume
	}
	return total
}

// NextSetNumber reserves and returns the next set number. Numbers are never
// handed out twice, even after sets are deleted. Documents written without
// the counter fall back to the highest number already present.
func (e *Exercise) NextSetNumber() int {
	if last := e.LastSet(); last != nil && last.SetNumber > e.LastSetNumber {
		e.LastSetNumber = last.SetNumber
	}
	e.LastSetNumber++
	return e.LastSetNumber
}

// Clone returns a deep copy of the exercise.
func (e *Exercise) Clone() *Exercise {
	if e == nil {
		return nil
	}
	c := *e
	c.Sets = orderedmap.New[string, *Set]()
	if e.Sets != nil {
		for pair := e.Sets.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value != nil {
				c.Sets.Set(pair.Key, pair.Value.Clone())
			}
		}
	}
	return &c
}

// Set is one weight/repetition pair with its derived volume.
type Set struct {
	SetNumber int     `json:"set_number"`
	Weight    float64 `json:"weight"`
	Reps      int     `json:"reps"`
	Volume    float64 `json:"volume"`
	CreatedAt string  `json:"created_at"`
}

// SetID returns the map key for a set number.
func SetID(setNumber int) string {
	return fmt.Sprintf("set_%d", setNumber)
}

// NewSet creates a set and computes its volume.
func NewSet(setNumber int, weight float64, reps int, now time.Time) *Set {
	s := &Set{
		SetNumber: setNumber,
		Weight:    weight,
		Reps:      reps,
		CreatedAt: now.Format(ClockLayout),
	}
	s.Recompute()
	return s
}

// Recompute sets Volume to Weight * Reps.
func (s *Set) Recompute() {
	s.Volume = s.Weight * float64(s.Reps)
}

// Clone returns a copy of the set.
func (s *Set) Clone() *Set {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
