package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

// SessionRow is one history entry.
type SessionRow struct {
	ID           string
	GameID       string
	Difficulty   string
	Score        int
	Correct      int
	Incorrect    int
	BestStreak   int
	DurationSecs int
	RacePlace    int
	PlayedAt     time.Time
}

// GameStats is the per-game aggregate kept across days.
type GameStats struct {
	GameID        string
	PersonalBest  int
	TotalSessions int
	DayStreak     int
	LastPlayed    string
}

// History returns recent sessions, newest first, optionally filtered
// by game.
func (s *Store) History(ctx context.Context, gameID string, limit int) ([]SessionRow, error) {
	q := sq.Select(
		"id", "game_id", "difficulty", "score", "correct", "incorrect",
		"best_streak", "duration_secs", "race_place", "played_at",
	).
		From("sessions").
		OrderBy("played_at DESC")
	if gameID != "" {
		q = q.Where(sq.Eq{"game_id": gameID})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []SessionRow
	for rows.Next() {
		var r SessionRow
		var playedAt string
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Difficulty, &r.Score, &r.Correct, &r.Incorrect,
			&r.BestStreak, &r.DurationSecs, &r.RacePlace, &playedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, playedAt); err == nil {
			r.PlayedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats returns the aggregate for one game, or nil if it has never
// been played.
func (s *Store) Stats(ctx context.Context, gameID string) (*GameStats, error) {
	query, args, err := sq.Select("game_id", "personal_best", "total_sessions", "day_streak", "last_played").
		From("game_stats").
		Where(sq.Eq{"game_id": gameID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	var g GameStats
	err = s.db.QueryRowContext(ctx, query, args...).
		Scan(&g.GameID, &g.PersonalBest, &g.TotalSessions, &g.DayStreak, &g.LastPlayed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	return &g, nil
}

// AllStats returns aggregates for every played game, keyed by game ID.
func (s *Store) AllStats(ctx context.Context) (map[string]GameStats, error) {
	query, args, err := sq.Select("game_id", "personal_best", "total_sessions", "day_streak", "last_played").
		From("game_stats").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build stats query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	out := map[string]GameStats{}
	for rows.Next() {
		var g GameStats
		if err := rows.Scan(&g.GameID, &g.PersonalBest, &g.TotalSessions, &g.DayStreak, &g.LastPlayed); err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		out[g.GameID] = g
	}
	return out, rows.Err()
}

// Reset deletes all history and stats.
func (s *Store) Reset(ctx context.Context) error {
	for _, table := range []string{"sessions", "game_stats"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
