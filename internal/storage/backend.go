// ABOUTME: Backend interface for persisting the workout document, plus the JSON file backend.
// ABOUTME: The JSON backend writes a sibling temp file and renames it over the target.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DefaultDataFile is the JSON document file name inside the data directory.
	DefaultDataFile = "fitness_data.json"
	// DefaultDBFile is the SQLite database file name inside the data directory.
	DefaultDBFile = "fittrack.db"
)

// Backend stores and retrieves the serialized document.
type Backend interface {
	// Name identifies the backend in logs and CLI output.
	Name() string
	// Load returns the stored bytes, or (nil, nil) when nothing is stored yet.
	Load() ([]byte, error)
	// Save replaces the stored bytes.
	Save(data []byte) error
	Close() error
}

// DataDir returns the default data directory following XDG conventions.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fittrack")
}

// DefaultDataPath returns the default JSON document path.
func DefaultDataPath() string {
	return filepath.Join(DataDir(), DefaultDataFile)
}

// DefaultDBPath returns the default SQLite database path.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), DefaultDBFile)
}

// JSONFile keeps the document in a single JSON file.
type JSONFile struct {
	path string
}

var _ Backend = (*JSONFile)(nil)

// NewJSONFile returns a backend for the file at path. Nothing is touched on
// disk until the first Save.
func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

// Path returns the file location.
func (j *JSONFile) Path() string {
	return j.path
}

func (j *JSONFile) Name() string {
	return "json"
}

// Load reads the file. A missing file is not an error.
func (j *JSONFile) Load() ([]byte, error) {
	data, err := os.ReadFile(j.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", j.path, err)
	}
	return data, nil
}

// Save writes data to a temp file in the same directory, syncs it, and
// renames it over the target so readers never observe a partial document.
func (j *JSONFile) Save(data []byte) error {
	dir := filepath.Dir(j.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(j.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("set file permissions: %w", err)
	}
	if err := os.Rename(tmpPath, j.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace %s: %w", j.path, err)
	}
	return nil
}

func (j *JSONFile) Close() error {
	return nil
}
