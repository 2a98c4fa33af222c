// ABOUTME: Shared helpers for storage tests.
// ABOUTME: Provides temp-dir stores, a controllable clock, and document comparers.
package storage

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/harperreed/fittrack/internal/models"
)

// testClock is a settable time source.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, 3, 14, 18, 45, 0, 0, time.Local)}
}

func setupTestStore(t *testing.T) (*Store, string, *testClock) {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultDataFile)
	clock := newTestClock()
	s := Open(NewJSONFile(path), WithClock(clock.Now))
	t.Cleanup(func() { _ = s.Close() })
	return s, path, clock
}

// docOptions lets cmp walk ordered maps by flattening them to key/value slices.
var docOptions = cmp.Options{
	cmp.Transformer("sessions", func(m *models.SessionMap) []sessionPair {
		var out []sessionPair
		if m == nil {
			return out
		}
		for p := m.Oldest(); p != nil; p = p.Next() {
			out = append(out, sessionPair{p.Key, p.Value})
		}
		return out
	}),
	cmp.Transformer("exercises", func(m *models.ExerciseMap) []exercisePair {
		var out []exercisePair
		if m == nil {
			return out
		}
		for p := m.Oldest(); p != nil; p = p.Next() {
			out = append(out, exercisePair{p.Key, p.Value})
		}
		return out
	}),
	cmp.Transformer("sets", func(m *models.SetMap) []setPair {
		var out []setPair
		if m == nil {
			return out
		}
		for p := m.Oldest(); p != nil; p = p.Next() {
			out = append(out, setPair{p.Key, p.Value})
		}
		return out
	}),
}

type sessionPair struct {
	Key   string
	Value *models.Session
}

type exercisePair struct {
	Key   string
	Value *models.Exercise
}

type setPair struct {
	Key   string
	Value *models.Set
}

// memoryBackend keeps the document in memory and can be told to fail.
type memoryBackend struct {
	data    []byte
	saves   int
	failErr error
}

func (m *memoryBackend) Name() string { return "memory" }

func (m *memoryBackend) Load() ([]byte, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	return m.data, nil
}

func (m *memoryBackend) Save(data []byte) error {
	if m.failErr != nil {
		return m.failErr
	}
	m.saves++
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memoryBackend) Close() error { return nil }

var errDiskFull = errors.New("disk full")

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }
