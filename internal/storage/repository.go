// ABOUTME: Repository interface for workout data storage.
// ABOUTME: Defines the session, exercise, and set operations front ends call.
package storage

import (
	"github.com/harperreed/fittrack/internal/models"
)

// Repository defines the workout store surface.
// This interface allows swapping implementations (e.g., for testing).
//
// Lookups signal absence through a bool rather than an error.
type Repository interface {
	// Session operations
	CreateSession(name, workoutType string) string
	DeleteSession(sessionID string) bool
	GetSession(sessionID string) (*models.Session, bool)
	ListSessions() *models.SessionMap

	// Exercise operations
	AddExercise(sessionID, name, muscleGroup string) (string, bool)
	DeleteExercise(sessionID, exerciseID string) bool

	// Set operations
	AddSet(sessionID, exerciseID string, weight float64, reps int) (string, bool)
	UpdateSet(sessionID, exerciseID, setID string, weight *float64, reps *int) bool
	DeleteSet(sessionID, exerciseID, setID string) bool

	// Derived and whole-document views
	AppStats() models.AppStats
	UserSettings() models.UserSettings
	Document() *models.Document

	// Import
	Import(doc *models.Document) (ImportSummary, error)

	// Lifecycle
	EnsureInitialized()
	Reload() error
	Close() error
}

var _ Repository = (*Store)(nil)
