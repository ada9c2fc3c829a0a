package game

import (
	"time"

	"github.com/abhisek/matharcade/internal/challenge"
)

// Summary is the read-only snapshot of a finished session, produced
// exactly once at the playing -> finished transition and never mutated
// afterwards. It is the record handed to the persistence adapter and
// the result screen.
type Summary struct {
	SessionID      string
	GameID         string
	Difficulty     challenge.ProfileID
	Score          int
	CorrectCount   int
	IncorrectCount int
	TotalQuestions int
	BestStreak     int
	Duration       time.Duration
	PlayedAt       time.Time

	// RacePlace is the player's finishing rank in race games, 0
	// otherwise.
	RacePlace int
}

// Summary returns the terminal snapshot, or nil before the session has
// finished.
func (s *Session) Summary() *Summary {
	return s.summary
}

func (s *Session) buildSummary() *Summary {
	sum := &Summary{
		SessionID:      s.ID,
		GameID:         s.GameID,
		Difficulty:     s.baseProfile,
		Score:          s.Score,
		CorrectCount:   s.CorrectCount,
		IncorrectCount: s.IncorrectCount,
		TotalQuestions: s.CorrectCount + s.IncorrectCount,
		BestStreak:     s.BestStreak,
		Duration:       secondsToDuration(s.elapsedSeconds),
		PlayedAt:       time.Now(),
	}
	if s.Race != nil {
		sum.RacePlace = s.Race.PlayerPlace()
	}
	return sum
}

// Accuracy returns the correct-answer fraction, 0 for an empty session.
func (sum *Summary) Accuracy() float64 {
	if sum.TotalQuestions == 0 {
		return 0
	}
	return float64(sum.CorrectCount) / float64(sum.TotalQuestions)
}
