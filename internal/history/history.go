// Package history persists past translations in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded translation.
type Entry struct {
	ID        int64
	Javanese  string
	Latin     string
	English   string
	CreatedAt time.Time
}

// Store is a translation history backed by SQLite.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS translations (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	javanese   TEXT NOT NULL,
	latin      TEXT NOT NULL,
	english    TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_translations_created ON translations(created_at);
`

// Open opens (or creates) the history database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing history schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends a translation to the history.
func (s *Store) Record(javanese, latin, english string) error {
	_, err := s.db.Exec(
		`INSERT INTO translations (javanese, latin, english, created_at) VALUES (?, ?, ?, ?)`,
		javanese, latin, english, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("recording translation: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, javanese, latin, english, created_at
		 FROM translations ORDER BY created_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Search returns entries whose Javanese, Latin, or English text contains
// the query, newest first.
func (s *Store) Search(query string, limit int) ([]Entry, error) {
	pattern := "%" + query + "%"
	rows, err := s.db.Query(
		`SELECT id, javanese, latin, english, created_at
		 FROM translations
		 WHERE javanese LIKE ? OR latin LIKE ? OR english LIKE ?
		 ORDER BY created_at DESC, id DESC LIMIT ?`,
		pattern, pattern, pattern, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching history: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Delete removes a single entry by ID.
func (s *Store) Delete(id int64) error {
	if _, err := s.db.Exec(`DELETE FROM translations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting history entry: %w", err)
	}
	return nil
}

// Clear removes all history entries.
func (s *Store) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM translations`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Javanese, &e.Latin, &e.English, &created); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading history rows: %w", err)
	}
	return entries, nil
}
