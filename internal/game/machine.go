package game

import (
	"github.com/google/uuid"

	"github.com/abhisek/matharcade/internal/challenge"
)

func newSessionID() string {
	return uuid.New().String()
}

// Start transitions menu -> playing: clocks and counters reset, the
// first challenge is generated. Starting an already running or
// finished session is a no-op.
func (s *Session) Start() {
	if s.Phase != PhaseMenu {
		return
	}
	s.Phase = PhasePlaying
	s.Score = 0
	s.Streak = 0
	s.BestStreak = 0
	s.CorrectCount = 0
	s.IncorrectCount = 0
	s.Index = 0
	s.elapsedSeconds = 0
	s.DoubleRemaining = 0
	s.SessionRemaining = s.Rules.SessionSeconds
	if s.Rules.Race {
		n := s.Rules.RaceOpponents
		if n <= 0 {
			n = 3
		}
		s.Race = NewRace(s.Rules.TotalQuestions, n)
	}
	s.next()
}

// Submit evaluates the player's input against the current challenge.
// Input that does not parse as an answer returns OutcomeIgnored and
// changes nothing, leaving the session on the same challenge.
//
// An answer submitted in the same UI cycle as a timeout wins: messages
// are delivered serially, and once Submit has resolved the challenge a
// following Tick sees a fresh question clock.
func (s *Session) Submit(input string) Outcome {
	if s.Phase != PhasePlaying || s.Current == nil {
		return OutcomeIgnored
	}

	correct, answered := challenge.Evaluate(*s.Current, input)
	if !answered {
		return OutcomeIgnored
	}

	if correct {
		s.recordCorrect()
	} else {
		s.recordIncorrect(s.Rules.AdvanceOnWrong)
	}
	return s.LastOutcome
}

// SubmitSet evaluates a multi-select answer.
func (s *Session) SubmitSet(selected []string) Outcome {
	if s.Phase != PhasePlaying || s.Current == nil {
		return OutcomeIgnored
	}
	if challenge.EvaluateSet(*s.Current, selected) {
		s.recordCorrect()
	} else {
		s.recordIncorrect(s.Rules.AdvanceOnWrong)
	}
	return s.LastOutcome
}

// Skip gives up on the current challenge. It counts as an incorrect
// answer and always advances, even in stay-until-correct games.
func (s *Session) Skip() Outcome {
	if s.Phase != PhasePlaying || s.Current == nil {
		return OutcomeIgnored
	}
	s.recordIncorrect(true)
	return s.LastOutcome
}

// Tick advances the clocks by one second. Ticks outside PhasePlaying
// are no-ops, so a paused session can never double-count elapsed time
// and a stale timer cannot mutate a finished session.
func (s *Session) Tick() TickResult {
	var res TickResult
	if s.Phase != PhasePlaying {
		return res
	}

	s.elapsedSeconds++
	if s.DoubleRemaining > 0 {
		s.DoubleRemaining--
	}

	if s.Rules.Ramp && s.Rules.SessionSeconds > 0 {
		s.Profile = challenge.RampProfile(
			secondsToDuration(s.SessionRemaining-1),
			secondsToDuration(s.Rules.SessionSeconds),
		)
	}

	if s.Race != nil {
		s.Race.Tick()
	}

	if s.Rules.QuestionSeconds > 0 {
		s.QuestionRemaining--
		if s.QuestionRemaining <= 0 {
			// Timeout counts as incorrect and always auto-advances.
			s.recordIncorrect(true)
			res.TimedOut = true
		}
	}

	// A timeout above may have exhausted a fixed question count, so
	// re-check the phase before touching the session clock.
	if s.Rules.SessionSeconds > 0 && s.Phase == PhasePlaying {
		s.SessionRemaining--
		if s.SessionRemaining <= 0 {
			s.SessionRemaining = 0
			s.finish()
			res.Finished = true
			return res
		}
	}

	if s.Phase == PhaseFinished {
		res.Finished = true
	}
	return res
}

// Pause freezes the clocks. Repeated calls are idempotent.
func (s *Session) Pause() {
	if s.Phase == PhasePlaying {
		s.Phase = PhasePaused
	}
}

// Resume unfreezes a paused session. Repeated calls are idempotent.
func (s *Session) Resume() {
	if s.Phase == PhasePaused {
		s.Phase = PhasePlaying
	}
}

// Finish forces the session into its terminal phase (quit confirm,
// navigation away). Finishing twice is a no-op.
func (s *Session) Finish() {
	if s.Phase == PhasePlaying || s.Phase == PhasePaused {
		s.finish()
	}
}

// Progress returns answered and total question counts for fixed-length
// games; total is 0 for clock-bound games.
func (s *Session) Progress() (answered, total int) {
	return s.CorrectCount + s.IncorrectCount, s.Rules.TotalQuestions
}

func (s *Session) recordCorrect() {
	s.LastOutcome = OutcomeCorrect
	s.Streak++
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}
	s.CorrectCount++
	s.Score += s.points()

	// Streak milestones fire celebration and open a double-points
	// window; they do not otherwise change the formula.
	s.Milestone = 0
	if s.Scoring.MilestoneEvery > 0 && s.Streak%s.Scoring.MilestoneEvery == 0 {
		s.Milestone = s.Streak
		s.DoubleRemaining = s.Scoring.DoubleWindowSeconds
	}

	if s.Race != nil {
		s.Race.Player++
	}

	if s.done() {
		s.finish()
		return
	}
	s.next()
}

func (s *Session) recordIncorrect(advance bool) {
	s.LastOutcome = OutcomeIncorrect
	s.Streak = 0
	s.Milestone = 0
	s.IncorrectCount++

	if s.done() {
		s.finish()
		return
	}
	if advance {
		s.next()
	}
}

// done reports whether the fixed question budget is exhausted.
func (s *Session) done() bool {
	return s.Rules.TotalQuestions > 0 &&
		s.CorrectCount+s.IncorrectCount >= s.Rules.TotalQuestions
}

// next serves a fresh challenge and resets the question clock.
func (s *Session) next() {
	kind := s.gen.Pick(s.Rules.Kinds)
	ch := s.gen.Generate(challenge.Request{
		Profile: s.Profile,
		Kind:    kind,
		Format:  s.Rules.Format,
	})
	s.Current = &ch
	s.Index++
	s.QuestionRemaining = s.Rules.QuestionSeconds
}

func (s *Session) finish() {
	s.Phase = PhaseFinished
	s.Current = nil
	s.summary = s.buildSummary()
}
