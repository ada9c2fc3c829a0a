package game

import "time"

// Scoring holds the scoring formula parameters. Every game shares the
// same shape:
//
//	points = basePoints x min(streak/milestone+1, capMultiplier)
//	         x (doublePointsActive ? 2 : 1) + timeBonus
type Scoring struct {
	// BasePoints is the score for a correct answer at streak 1.
	BasePoints int

	// CapMultiplier caps the streak multiplier.
	CapMultiplier int

	// MilestoneEvery is the streak interval for multiplier steps and
	// celebration milestones.
	MilestoneEvery int

	// DoubleWindowSeconds is how long double points stay active after a
	// milestone.
	DoubleWindowSeconds int
}

// DefaultScoring returns the standard scoring parameters.
func DefaultScoring() Scoring {
	return Scoring{
		BasePoints:          10,
		CapMultiplier:       4,
		MilestoneEvery:      5,
		DoubleWindowSeconds: 10,
	}
}

// points computes the score for the answer just recorded. Called after
// the streak increment, so the first correct answer scores exactly
// BasePoints when no question clock is running.
func (s *Session) points() int {
	mult := 1
	if s.Scoring.MilestoneEvery > 0 {
		mult = s.Streak/s.Scoring.MilestoneEvery + 1
	}
	if s.Scoring.CapMultiplier > 0 && mult > s.Scoring.CapMultiplier {
		mult = s.Scoring.CapMultiplier
	}

	p := s.Scoring.BasePoints * mult
	if s.DoubleRemaining > 0 {
		p *= 2
	}
	return p + s.timeBonus()
}

// timeBonus is a step function of remaining per-question time: a fast
// answer (over two thirds of the clock left) earns 5, a moderate one
// (over a third) earns 2. Games without a question clock earn none.
func (s *Session) timeBonus() int {
	if s.Rules.QuestionSeconds <= 0 {
		return 0
	}
	switch {
	case s.QuestionRemaining*3 >= s.Rules.QuestionSeconds*2:
		return 5
	case s.QuestionRemaining*3 >= s.Rules.QuestionSeconds:
		return 2
	default:
		return 0
	}
}

func secondsToDuration(secs int) time.Duration {
	if secs < 0 {
		secs = 0
	}
	return time.Duration(secs) * time.Second
}
