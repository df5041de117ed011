// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only results are recorded; a game in progress is never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for the match ledger.
type Store struct {
	db *sql.DB
}

// MatchResult represents one finished game.
type MatchResult struct {
	ID         int64
	MatchID    string
	Winner     int    // Player index (0 or 1)
	WinnerName string
	Turns      int    // Rolls made by both players
	Via        string // "direct", "ladder" or "snake"
	Duration   int    // Duration in seconds
	CreatedAt  time.Time
}

// WinCount is the number of matches won under one player name.
type WinCount struct {
	Name string
	Wins int
}

// NewMatchID returns a fresh identifier for a match.
func NewMatchID() string {
	return uuid.NewString()
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			winner INTEGER NOT NULL,
			winner_name TEXT NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			via TEXT NOT NULL DEFAULT 'direct',
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner_name ON matches(winner_name);
		CREATE INDEX IF NOT EXISTS idx_matches_created_at ON matches(created_at DESC);
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

// SaveMatch records a finished match. An empty MatchID gets a new one.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(result MatchResult) (int64, error) {
	if result.MatchID == "" {
		result.MatchID = NewMatchID()
	}
	if result.Via == "" {
		result.Via = "direct"
	}

	res, err := s.db.Exec(
		`INSERT INTO matches (match_id, winner, winner_name, turns, via, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		result.MatchID,
		result.Winner,
		result.WinnerName,
		result.Turns,
		result.Via,
		result.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// MatchByID retrieves a match by its match ID.
// Returns nil and no error when the match does not exist.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT id, match_id, winner, winner_name, turns, via, duration_secs, created_at
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	result, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &result, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, match_id, winner, winner_name, turns, via, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinCounts returns the number of wins per player name, most wins first.
func (s *Store) WinCounts() ([]WinCount, error) {
	rows, err := s.db.Query(
		`SELECT winner_name, COUNT(*) AS wins
		 FROM matches
		 GROUP BY winner_name
		 ORDER BY wins DESC, winner_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query win counts: %w", err)
	}
	defer rows.Close()

	var counts []WinCount
	for rows.Next() {
		var c WinCount
		if err := rows.Scan(&c.Name, &c.Wins); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearMatches deletes every recorded match.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchResult, error) {
	var result MatchResult
	var createdAt any

	err := row.Scan(
		&result.ID,
		&result.MatchID,
		&result.Winner,
		&result.WinnerName,
		&result.Turns,
		&result.Via,
		&result.Duration,
		&createdAt,
	)
	if err != nil {
		return MatchResult{}, err
	}

	result.CreatedAt = parseTime(createdAt)
	return result, nil
}

// parseTime handles both time.Time and string datetime values from the driver.
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
