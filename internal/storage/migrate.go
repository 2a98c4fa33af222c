// ABOUTME: Data migration between workout storage backends.
// ABOUTME: Copies the whole document from source to destination.

package storage

import (
	"errors"
	"fmt"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Sessions  int
	Exercises int
	Sets      int
}

// ErrDestinationNotEmpty is returned when the destination already holds a document.
var ErrDestinationNotEmpty = errors.New("destination already contains data")

// MigrateData copies the document from src to dst. The source must decode
// as a document, and the destination must be empty.
func MigrateData(src, dst Backend) (*MigrateSummary, error) {
	existing, err := dst.Load()
	if err != nil {
		return nil, fmt.Errorf("read destination: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrDestinationNotEmpty
	}

	data, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	summary := &MigrateSummary{}
	if len(data) == 0 {
		return summary, nil
	}

	doc, err := ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("decode source: %w", err)
	}
	for _, s := range doc.SessionList() {
		summary.Sessions++
		for _, e := range s.ExerciseList() {
			summary.Exercises++
			summary.Sets += len(e.SetList())
		}
	}

	// Re-encode so the destination always holds canonical indentation.
	out, err := ExportJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := dst.Save(out); err != nil {
		return nil, fmt.Errorf("write destination: %w", err)
	}
	return summary, nil
}
