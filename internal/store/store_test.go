package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/matharcade/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testSummary(gameID string, score int, playedAt time.Time) *game.Summary {
	return &game.Summary{
		SessionID:      gameID + "-" + playedAt.Format("20060102150405.000000000"),
		GameID:         gameID,
		Difficulty:     "easy",
		Score:          score,
		CorrectCount:   8,
		IncorrectCount: 2,
		TotalQuestions: 10,
		BestStreak:     5,
		Duration:       90 * time.Second,
		PlayedAt:       playedAt,
	}
}

func TestRecordSummary_InsertsHistoryAndStats(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 120, now)))

	rows, err := s.History(ctx, "quick-quiz", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, 120, rows[0].Score)
	require.Equal(t, 8, rows[0].Correct)
	require.Equal(t, 2, rows[0].Incorrect)

	stats, err := s.Stats(ctx, "quick-quiz")
	require.NoError(t, err)
	require.NotNil(t, stats)
	require.Equal(t, 120, stats.PersonalBest)
	require.Equal(t, 1, stats.TotalSessions)
	require.Equal(t, 1, stats.DayStreak)
}

func TestRecordSummary_PersonalBestIsMonotone(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 120, now)))
	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 80, now.Add(time.Hour))))

	stats, err := s.Stats(ctx, "quick-quiz")
	require.NoError(t, err)
	require.Equal(t, 120, stats.PersonalBest, "lower score must not lower the best")
	require.Equal(t, 2, stats.TotalSessions)
}

func TestRecordSummary_DayStreakAcrossDays(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	day1 := time.Date(2026, 8, 1, 20, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 50, day1)))
	// Same day: streak keeps.
	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 60, day1.Add(2*time.Hour))))
	// Next day: streak increments.
	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 70, day1.AddDate(0, 0, 1))))

	stats, err := s.Stats(ctx, "quick-quiz")
	require.NoError(t, err)
	require.Equal(t, 2, stats.DayStreak)

	// Three-day gap: streak resets.
	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 70, day1.AddDate(0, 0, 4))))
	stats, err = s.Stats(ctx, "quick-quiz")
	require.NoError(t, err)
	require.Equal(t, 1, stats.DayStreak)
}

func TestNextDayStreak(t *testing.T) {
	now := time.Date(2026, 8, 10, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name       string
		lastPlayed string
		streak     int
		want       int
	}{
		{"same day keeps", "2026-08-10", 4, 4},
		{"yesterday increments", "2026-08-09", 4, 5},
		{"two day gap resets", "2026-08-08", 4, 1},
		{"long gap resets", "2026-07-01", 9, 1},
		{"garbage date resets", "not-a-date", 4, 1},
		{"same day floors at one", "2026-08-10", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextDayStreak(tt.lastPlayed, tt.streak, now))
		})
	}
}

func TestHistory_FilterAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 10*i, now.Add(time.Duration(i)*time.Minute))))
	}
	require.NoError(t, s.RecordSummary(ctx, testSummary("number-race", 99, now)))

	rows, err := s.History(ctx, "quick-quiz", 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, 40, rows[0].Score, "newest first")

	all, err := s.History(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 6)

	stats, err := s.AllStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)
}

func TestStats_UnplayedGameIsNil(t *testing.T) {
	s := openTestStore(t)
	stats, err := s.Stats(context.Background(), "never-played")
	require.NoError(t, err)
	require.Nil(t, stats)
}

func TestReset(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.RecordSummary(ctx, testSummary("quick-quiz", 10, time.Now())))

	require.NoError(t, s.Reset(ctx))

	rows, err := s.History(ctx, "", 0)
	require.NoError(t, err)
	require.Empty(t, rows)
}
