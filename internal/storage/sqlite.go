// Package storage provides SQLite-based persistence for dot-rush run
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished dot-rush session.
type RunEntry struct {
	ID           int64
	ModeID       string
	Score        int
	BestCombo    int
	DurationSecs int
	CreatedAt    time.Time
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	ModeID     string
	RunsCount  int
	HighScore  int
	BestCombo  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path. It creates
// the parent directories if needed and runs migrations.
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			best_combo INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_mode_id ON runs(mode_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(mode_id, score DESC);
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

// SaveRun records a finished session. Returns the inserted row ID.
func (s *Store) SaveRun(modeID string, score, bestCombo, durationSecs int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (mode_id, score, best_combo, duration_secs) VALUES (?, ?, ?, ?)",
		modeID, score, bestCombo, durationSecs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRuns retrieves the top N runs for the given mode, ordered by score
// descending.
func (s *Store) TopRuns(modeID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode_id, score, best_combo, duration_secs, created_at
		 FROM runs
		 WHERE mode_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		modeID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentRuns retrieves the most recent runs across all modes.
func (s *Store) RecentRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, mode_id, score, best_combo, duration_secs, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var createdAt any
	if err := rows.Scan(&e.ID, &e.ModeID, &e.Score, &e.BestCombo, &e.DurationSecs, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.CreatedAt = parseTimestamp(createdAt)
	return e, nil
}

// parseTimestamp handles both time.Time and string representations the
// driver may hand back for DATETIME columns.
func parseTimestamp(v any) time.Time {
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

// HighScore returns the highest score for the given mode, 0 if no runs
// exist.
func (s *Store) HighScore(modeID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE mode_id = ?",
		modeID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearRuns deletes all runs for the given mode.
func (s *Store) ClearRuns(modeID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE mode_id = ?", modeID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific mode.
func (s *Store) Stats(modeID string) (*ModeStats, error) {
	stats := &ModeStats{ModeID: modeID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(best_combo), 0), COALESCE(AVG(score), 0)
		 FROM runs WHERE mode_id = ?`,
		modeID,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.BestCombo, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE mode_id = ? ORDER BY created_at DESC LIMIT 1`,
		modeID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every mode that has been played.
func (s *Store) AllStats() (map[string]*ModeStats, error) {
	rows, err := s.db.Query(
		`SELECT mode_id, COUNT(*), MAX(score), MAX(best_combo), AVG(score), MAX(created_at)
		 FROM runs
		 GROUP BY mode_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*ModeStats)
	for rows.Next() {
		var m ModeStats
		var lastPlayed any
		if err := rows.Scan(&m.ModeID, &m.RunsCount, &m.HighScore, &m.BestCombo, &m.AvgScore, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		m.LastPlayed = parseTimestamp(lastPlayed)
		stats[m.ModeID] = &m
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
