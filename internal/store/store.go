// Package store handles SQLite persistence: the session history and
// the per-game stats (personal best, day streak, last played).
//
// Writes are best-effort by contract: callers fire-and-forget the
// summary record on session end and surface failures only as a
// non-blocking notice. Nothing here may block the play-again flow.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps SQLite access for session history and game stats.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path, applies the
// recommended pragmas and runs migrations.
func Open(path string) (*Store, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			best_streak INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL,
			race_place INTEGER NOT NULL DEFAULT 0,
			played_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS game_stats (
			game_id TEXT PRIMARY KEY,
			personal_best INTEGER NOT NULL,
			total_sessions INTEGER NOT NULL,
			day_streak INTEGER NOT NULL,
			last_played TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_game_played ON sessions(game_id, played_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. MATHARCADE_DB environment variable
// 2. $XDG_DATA_HOME/matharcade/matharcade.db
// 3. ~/.local/share/matharcade/matharcade.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("MATHARCADE_DB"); p != "" {
		return p, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "matharcade", "matharcade.db"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
