// Package storage persists the high score in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// HighScoreKey is the key the best score is stored under.
const HighScoreKey = "highscore"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Record is a stored integer value with its last update time.
type Record struct {
	Key       string
	Value     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// Get returns the record stored under key. The boolean is false when the
// key has never been written.
func (s *Store) Get(key string) (Record, bool, error) {
	rec := Record{Key: key}
	var updatedAt any

	err := s.db.QueryRow(
		"SELECT value, updated_at FROM records WHERE key = ?",
		key,
	).Scan(&rec.Value, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return Record{Key: key}, false, nil
	}
	if err != nil {
		return Record{Key: key}, false, fmt.Errorf("storage: cannot query %s: %w", key, err)
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		rec.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.UpdatedAt = parsed
		}
	}

	return rec, true, nil
}

// Put stores value under key, replacing any previous value.
func (s *Store) Put(key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec("DELETE FROM records WHERE key = ?", key); err != nil {
		return fmt.Errorf("storage: cannot delete %s: %w", key, err)
	}
	return nil
}

// HighScore returns the stored high score, or 0 if none was saved yet.
func (s *Store) HighScore() (int, error) {
	rec, _, err := s.Get(HighScoreKey)
	if err != nil {
		return 0, err
	}
	return rec.Value, nil
}

// SaveHighScore overwrites the stored high score.
func (s *Store) SaveHighScore(score int) error {
	return s.Put(HighScoreKey, score)
}

// ResetHighScore forgets the stored high score.
func (s *Store) ResetHighScore() error {
	return s.Delete(HighScoreKey)
}
