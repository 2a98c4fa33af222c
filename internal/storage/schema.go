// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: A single-row documents table holds the serialized workout document.
package storage

// initSchema creates or updates the database schema.
func (s *SQLite) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		body TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}
