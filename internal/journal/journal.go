// Package journal records Flappy Dragon sessions in SQLite so they can be listed
// and re-simulated later. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a recording ID does not exist.
var ErrNotFound = errors.New("journal: recording not found")

// DefaultPath is where the CLI keeps the journal unless told otherwise.
const DefaultPath = "~/.dragon/journal.db"

// Store manages the SQLite database connection for session recordings.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("journal: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			shell TEXT NOT NULL,
			seed INTEGER NOT NULL,
			config_yaml TEXT NOT NULL,
			frame_count INTEGER NOT NULL,
			truncated INTEGER NOT NULL DEFAULT 0,
			frames BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_created ON recordings(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores a recording and returns its ID. The recording's ID and CreatedAt
// fields are ignored.
func (s *Store) Save(rec Recording) (int64, error) {
	frames, err := EncodeFrames(rec.Frames)
	if err != nil {
		return 0, fmt.Errorf("journal: cannot encode frames: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO recordings (shell, seed, config_yaml, frame_count, truncated, frames)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Shell, rec.Seed, rec.ConfigYAML, len(rec.Frames), boolToInt(rec.Truncated), frames,
	)
	if err != nil {
		return 0, fmt.Errorf("journal: cannot save recording: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("journal: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Load retrieves a full recording, frames included.
func (s *Store) Load(id int64) (Recording, error) {
	var rec Recording
	var blob []byte
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, shell, seed, config_yaml, truncated, frames, created_at
		 FROM recordings
		 WHERE id = ?`,
		id,
	).Scan(&rec.ID, &rec.Shell, &rec.Seed, &rec.ConfigYAML, &rec.Truncated, &blob, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Recording{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return Recording{}, fmt.Errorf("journal: cannot load recording %d: %w", id, err)
	}

	frames, err := DecodeFrames(blob)
	if err != nil {
		return Recording{}, fmt.Errorf("journal: recording %d: %w", id, err)
	}
	rec.Frames = frames
	rec.CreatedAt = parseTime(createdAt)

	return rec, nil
}

// List returns recording summaries, newest first.
func (s *Store) List(limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, shell, seed, frame_count, truncated, created_at
		 FROM recordings
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query recordings: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var createdAt any
		if err := rows.Scan(&sum.ID, &sum.Shell, &sum.Seed, &sum.FrameCount, &sum.Truncated, &createdAt); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}
		sum.CreatedAt = parseTime(createdAt)
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}

	return out, nil
}

// Delete removes a recording.
func (s *Store) Delete(id int64) error {
	result, err := s.db.Exec("DELETE FROM recordings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("journal: cannot delete recording %d: %w", id, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("journal: cannot delete recording %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
