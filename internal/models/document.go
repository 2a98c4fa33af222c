// ABOUTME: Document model: the single persisted record holding stats, sessions, and settings.
// ABOUTME: Also defines AppStats and UserSettings with their zero-state defaults.
package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// AppStats holds summary counters derived from the whole document.
type AppStats struct {
	TotalExercises int `json:"total_exercises"`
	TotalSessions  int `json:"total_sessions"`
	TotalVolume    int `json:"total_volume"`
	WeeklyWorkouts int `json:"weekly_workouts"`
}

// UserSettings holds per-user display preferences.
type UserSettings struct {
	Name       string `json:"name"`
	WeightUnit string `json:"weight_unit"`
	Theme      string `json:"theme"`
}

// DefaultUserSettings returns the settings written into a fresh document.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Name:       "Athlete",
		WeightUnit: "kg",
		Theme:      "dark",
	}
}

// Document is the whole persisted store. A document with all three
// sections absent is considered empty and encodes as {}.
type Document struct {
	AppStats        *AppStats     `json:"app_stats,omitempty"`
	WorkoutSessions *SessionMap   `json:"workout_sessions,omitempty"`
	UserSettings    *UserSettings `json:"user_settings,omitempty"`
}

// NewDocument returns a document populated with zeroed stats, no sessions,
// and default user settings.
func NewDocument() *Document {
	settings := DefaultUserSettings()
	return &Document{
		AppStats:        &AppStats{},
		WorkoutSessions: orderedmap.New[string, *Session](),
		UserSettings:    &settings,
	}
}

// IsEmpty reports whether no section of the document is present.
func (d *Document) IsEmpty() bool {
	return d.AppStats == nil && d.WorkoutSessions == nil && d.UserSettings == nil
}

// Sessions returns the session map, allocating it if needed.
func (d *Document) Sessions() *SessionMap {
	if d.WorkoutSessions == nil {
		d.WorkoutSessions = orderedmap.New[string, *Session]()
	}
	return d.WorkoutSessions
}

// SessionList returns the sessions in insertion order.
func (d *Document) SessionList() []*Session {
	var out []*Session
	if d.WorkoutSessions == nil {
		return out
	}
	for pair := d.WorkoutSessions.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value != nil {
			out = append(out, pair.Value)
		}
	}
	return out
}

// Stats returns the stored stats, or zeroed stats when absent.
func (d *Document) Stats() AppStats {
	if d.AppStats == nil {
		return AppStats{}
	}
	return *d.AppStats
}

// Settings returns the stored settings, or the defaults when absent.
func (d *Document) Settings() UserSettings {
	if d.UserSettings == nil {
		return DefaultUserSettings()
	}
	return *d.UserSettings
}

// Clone returns a deep copy of the document. Absent sections stay absent.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := &Document{}
	if d.AppStats != nil {
		stats := *d.AppStats
		c.AppStats = &stats
	}
	if d.UserSettings != nil {
		settings := *d.UserSettings
		c.UserSettings = &settings
	}
	if d.WorkoutSessions != nil {
		c.WorkoutSessions = orderedmap.New[string, *Session]()
		for pair := d.WorkoutSessions.Oldest(); pair != nil; pair = pair.Next() {
			if pair.Value != nil {
				c.WorkoutSessions.Set(pair.Key, pair.Value.Clone())
			}
		}
	}
	return c
}

// DropNil removes null sessions, exercises, and sets left by decoding a
// hand-edited or damaged file. It returns how many entries were removed.
func (d *Document) DropNil() int {
	if d.WorkoutSessions == nil {
		return 0
	}
	dropped := 0
	for _, key := range nilKeys(d.WorkoutSessions) {
		d.WorkoutSessions.Delete(key)
		dropped++
	}
	for _, s := range d.SessionList() {
		if s.Exercises == nil {
			continue
		}
		for _, key := range nilKeys(s.Exercises) {
			s.Exercises.Delete(key)
			dropped++
		}
		for _, e := range s.ExerciseList() {
			if e.Sets == nil {
				continue
			}
			for _, key := range nilKeys(e.Sets) {
				e.Sets.Delete(key)
				dropped++
			}
		}
	}
	return dropped
}

func nilKeys[V any](m *orderedmap.OrderedMap[string, *V]) []string {
	var keys []string
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Value == nil {
			keys = append(keys, pair.Key)
		}
	}
	return keys
}
