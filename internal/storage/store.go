// ABOUTME: Workout store owning the in-memory document and writing it through to a Backend.
// ABOUTME: Every mutation recomputes app stats and persists the whole document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Store is the single owner of the workout document. Callers only ever
// receive copies of its contents.
type Store struct {
	mu      sync.Mutex
	backend Backend
	doc     *models.Document
	logger  zerolog.Logger
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load and persist failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger.With().Str("component", "store").Logger()
	}
}

// WithClock overrides the time source used for timestamps and the weekly window.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// Open loads the document from backend. Missing or unreadable content
// yields an empty document; the problem is logged, not returned.
func Open(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = s.load()
	return s
}

// Backend returns the backend the store persists to.
func (s *Store) Backend() Backend {
	return s.backend
}

func (s *Store) load() *models.Document {
	data, err := s.backend.Load()
	if err != nil {
		s.logger.Warn().Err(err).Str("backend", s.backend.Name()).Msg("load failed, starting empty")
		return &models.Document{}
	}
	if len(data) == 0 {
		return &models.Document{}
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn().Err(err).Str("backend", s.backend.Name()).Msg("document unreadable, starting empty")
		return &models.Document{}
	}
	if dropped := doc.DropNil(); dropped > 0 {
		s.logger.Warn().Int("dropped", dropped).Str("backend", s.backend.Name()).Msg("null entries removed from document")
	}
	return &doc
}

// persist writes the whole document. Failures are logged and swallowed;
// the in-memory document stays authoritative.
func (s *Store) persist() {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		s.logger.Error().Err(err).Msg("encode document")
		return
	}
	if err := s.backend.Save(data); err != nil {
		s.logger.Error().Err(err).Str("backend", s.backend.Name()).Msg("save document")
		return
	}
	s.logger.Debug().Int("bytes", len(data)).Str("backend", s.backend.Name()).Msg("document saved")
}

// commit recomputes stats and persists. Callers hold s.mu.
func (s *Store) commit() {
	s.doc.AppStats = recomputeStats(s.doc, s.now())
	s.persist()
}

// EnsureInitialized fills in default sections if the document is entirely
// empty. A non-empty document is left untouched.
func (s *Store) EnsureInitialized() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.doc.IsEmpty() {
		return
	}
	s.doc = models.NewDocument()
	s.persist()
}

// CreateSession starts a new active session and returns its id.
func (s *Store) CreateSession(name, workoutType string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := s.doc.Sessions()
	session := models.NewSession(name, workoutType, s.now())
	for {
		if _, taken := sessions.Get(session.ID); !taken {
			break
		}
		session.ID = models.NewSessionID()
	}
	sessions.Set(session.ID, session)

	s.commit()
	return session.ID
}

// DeleteSession removes a session and everything under it.
func (s *Store) DeleteSession(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.WorkoutSessions == nil {
		return false
	}
	if _, ok := s.doc.WorkoutSessions.Delete(sessionID); !ok {
		return false
	}

	s.commit()
	return true
}

// GetSession returns a copy of the session.
func (s *Store) GetSession(sessionID string) (*models.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.session(sessionID)
	if !ok {
		return nil, false
	}
	return session.Clone(), true
}

// ListSessions returns a copy of every session in insertion order.
func (s *Store) ListSessions() *models.SessionMap {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := orderedmap.New[string, *models.Session]()
	for _, session := range s.doc.SessionList() {
		out.Set(session.ID, session.Clone())
	}
	return out
}

// AddExercise adds an exercise to a session. The bool is false when the
// session does not exist.
func (s *Store) AddExercise(sessionID, name, muscleGroup string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.session(sessionID)
	if !ok {
		return "", false
	}

	exercises := session.ExerciseMap()
	exercise := models.NewExercise(name, muscleGroup, s.now())
	for {
		if _, taken := exercises.Get(exercise.ID); !taken {
			break
		}
		exercise.ID = models.NewExerciseID()
	}
	exercises.Set(exercise.ID, exercise)

	s.commit()
	return exercise.ID, true
}

// DeleteExercise removes an exercise and its sets.
func (s *Store) DeleteExercise(sessionID, exerciseID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.session(sessionID)
	if !ok || session.Exercises == nil {
		return false
	}
	if _, ok := session.Exercises.Delete(exerciseID); !ok {
		return false
	}

	s.commit()
	return true
}

// AddSet records a set and returns its id (set_<number>). Set numbers come
// from a per-exercise counter and are never reused.
func (s *Store) AddSet(sessionID, exerciseID string, weight float64, reps int) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, ok := s.exercise(sessionID, exerciseID)
	if !ok || !finiteVolume(weight, reps) {
		return "", false
	}

	sets := exercise.SetMap()
	n := exercise.NextSetNumber()
	for {
		if _, taken := sets.Get(models.SetID(n)); !taken {
			break
		}
		n = exercise.NextSetNumber()
	}
	setID := models.SetID(n)
	sets.Set(setID, models.NewSet(n, weight, reps, s.now()))

	s.commit()
	return setID, true
}

// UpdateSet changes the weight and/or reps of a set. Nil arguments keep
// the current value; volume is always recomputed.
func (s *Store) UpdateSet(sessionID, exerciseID, setID string, weight *float64, reps *int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, ok := s.exercise(sessionID, exerciseID)
	if !ok || exercise.Sets == nil {
		return false
	}
	set, ok := exercise.Sets.Get(setID)
	if !ok || set == nil {
		return false
	}

	newWeight, newReps := set.Weight, set.Reps
	if weight != nil {
		newWeight = *weight
	}
	if reps != nil {
		newReps = *reps
	}
	if !finiteVolume(newWeight, newReps) {
		return false
	}
	set.Weight, set.Reps = newWeight, newReps
	set.Recompute()

	s.commit()
	return true
}

// DeleteSet removes a set. Remaining sets keep their numbers.
func (s *Store) DeleteSet(sessionID, exerciseID, setID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise, ok := s.exercise(sessionID, exerciseID)
	if !ok || exercise.Sets == nil {
		return false
	}
	if _, ok := exercise.Sets.Delete(setID); !ok {
		return false
	}

	s.commit()
	return true
}

// AppStats returns the stored stats, zeroed if the document was never initialized.
func (s *Store) AppStats() models.AppStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Stats()
}

// UserSettings returns the stored settings, or the defaults.
func (s *Store) UserSettings() models.UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Settings()
}

// Document returns a deep copy of the whole document.
func (s *Store) Document() *models.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// ImportSummary holds counts of imported entities.
type ImportSummary struct {
	Sessions  int
	Exercises int
	Sets      int
	// Skipped counts sessions whose id already existed.
	Skipped int
}

// Import merges sessions from doc whose ids are not already present, then
// recomputes stats and persists once.
func (s *Store) Import(doc *models.Document) (ImportSummary, error) {
	var summary ImportSummary
	if doc == nil {
		return summary, errors.New("import: nil document")
	}

	incoming := doc.SessionList()
	for _, in := range incoming {
		if in.ID == "" {
			return summary, errors.New("import: session without id")
		}
		for _, e := range in.ExerciseList() {
			for _, set := range e.SetList() {
				if !finiteVolume(set.Weight, set.Reps) {
					return summary, fmt.Errorf("import: session %s: set %d has a non-finite volume", in.ID, set.SetNumber)
				}
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.IsEmpty() {
		s.doc = models.NewDocument()
	}
	sessions := s.doc.Sessions()
	for _, in := range incoming {
		if _, exists := sessions.Get(in.ID); exists {
			summary.Skipped++
			continue
		}
		session := in.Clone()
		for _, e := range session.ExerciseList() {
			for _, set := range e.SetList() {
				set.Recompute()
				summary.Sets++
			}
			summary.Exercises++
		}
		sessions.Set(session.ID, session)
		summary.Sessions++
	}

	if summary.Sessions > 0 {
		s.commit()
	}
	return summary, nil
}

// Reload replaces the in-memory document with the backend's current content.
func (s *Store) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.backend.Load()
	if err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	if len(data) == 0 {
		s.doc = &models.Document{}
		return nil
	}
	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("reload: decode document: %w", err)
	}
	doc.DropNil()
	s.doc = &doc
	return nil
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

func (s *Store) session(sessionID string) (*models.Session, bool) {
	if s.doc.WorkoutSessions == nil {
		return nil, false
	}
	session, ok := s.doc.WorkoutSessions.Get(sessionID)
	return session, ok && session != nil
}

func (s *Store) exercise(sessionID, exerciseID string) (*models.Exercise, bool) {
	session, ok := s.session(sessionID)
	if !ok || session.Exercises == nil {
		return nil, false
	}
	exercise, ok := session.Exercises.Get(exerciseID)
	return exercise, ok && exercise != nil
}

// finiteVolume reports whether weight x reps can be stored. A NaN or
// infinite volume cannot be encoded as JSON and would block every later save.
func finiteVolume(weight float64, reps int) bool {
	v := weight * float64(reps)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
