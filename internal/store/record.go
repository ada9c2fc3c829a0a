package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/matharcade/internal/game"
)

// dateLayout is the calendar-date format used for day-streak math.
const dateLayout = "2006-01-02"

// RecordSummary persists a finished session: one history row plus the
// per-game stats upsert (personal best, day streak, last played).
// Both happen in one transaction so the stats never drift from the
// history.
func (s *Store) RecordSummary(ctx context.Context, sum *game.Summary) error {
	if sum == nil {
		return errors.New("nil summary")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, game_id, difficulty, score, correct, incorrect, best_streak, duration_secs, race_place, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sum.SessionID,
		sum.GameID,
		string(sum.Difficulty),
		sum.Score,
		sum.CorrectCount,
		sum.IncorrectCount,
		sum.BestStreak,
		int(sum.Duration.Seconds()),
		sum.RacePlace,
		sum.PlayedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	if err := upsertStats(ctx, tx, sum); err != nil {
		return err
	}
	return tx.Commit()
}

func upsertStats(ctx context.Context, tx *sql.Tx, sum *game.Summary) error {
	var (
		best, total, streak int
		lastPlayed          string
	)
	err := tx.QueryRowContext(ctx,
		`SELECT personal_best, total_sessions, day_streak, last_played FROM game_stats WHERE game_id = ?`,
		sum.GameID,
	).Scan(&best, &total, &streak, &lastPlayed)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			`INSERT INTO game_stats (game_id, personal_best, total_sessions, day_streak, last_played)
			 VALUES (?, ?, 1, 1, ?)`,
			sum.GameID, sum.Score, sum.PlayedAt.Format(dateLayout),
		)
		if err != nil {
			return fmt.Errorf("insert stats: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read stats: %w", err)
	}

	if sum.Score > best {
		best = sum.Score
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE game_stats SET personal_best = ?, total_sessions = ?, day_streak = ?, last_played = ? WHERE game_id = ?`,
		best,
		total+1,
		NextDayStreak(lastPlayed, streak, sum.PlayedAt),
		sum.PlayedAt.Format(dateLayout),
		sum.GameID,
	)
	if err != nil {
		return fmt.Errorf("update stats: %w", err)
	}
	return nil
}

// NextDayStreak computes the day-over-day streak from the previous
// play date. Playing again on the same day keeps the streak, playing
// on the next calendar day increments it, and any gap resets it to 1.
// This is a pure date diff, not a scheduler.
func NextDayStreak(lastPlayed string, streak int, now time.Time) int {
	prev, err := time.Parse(dateLayout, lastPlayed)
	if err != nil {
		return 1
	}
	today, _ := time.Parse(dateLayout, now.Format(dateLayout))
	switch int(today.Sub(prev).Hours() / 24) {
	case 0:
		if streak < 1 {
			return 1
		}
		return streak
	case 1:
		return streak + 1
	default:
		return 1
	}
}
