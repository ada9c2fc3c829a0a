// Package game owns the session state machine shared by every
// mini-game: one Session runs from Start to finished, serving
// challenges, tracking score and streak, and driving two countdowns
// (session clock and per-question clock).
//
// The machine is pure with respect to time: it never reads the wall
// clock. Ticks arrive from the caller on a fixed one-second cadence
// (the TUI's timer, or a test calling Tick directly), which keeps the
// machine unit-testable without real waits and makes pause trivially
// correct.
package game

import "github.com/abhisek/matharcade/internal/challenge"

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseMenu     Phase = iota // configured but not started
	PhasePlaying               // active countdown, challenges presented
	PhasePaused                // clocks frozen, resumable
	PhaseFinished              // terminal; summary available
)

// String returns the phase name for display and persistence.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Rules configure one game's variant of the session machine.
type Rules struct {
	// TotalQuestions ends the session after this many answers.
	// Zero means the session is bounded by the clock instead.
	TotalQuestions int

	// SessionSeconds is the overall session clock. Zero disables it.
	SessionSeconds int

	// QuestionSeconds is the per-question clock. Zero disables it;
	// reaching zero counts as an incorrect answer and auto-advances.
	QuestionSeconds int

	// AdvanceOnWrong moves to the next challenge on a wrong answer.
	// When false the player stays on the same challenge until they get
	// it right or the question clock runs out.
	AdvanceOnWrong bool

	// Ramp recomputes the active difficulty from remaining session time
	// on every tick.
	Ramp bool

	// Race enables simulated opponents. This is purely local
	// simulation: bot progress is fabricated from randomized ticks, not
	// real peer state.
	Race bool

	// RaceOpponents is the bot count when Race is set.
	RaceOpponents int

	// Format is the preferred answer format for generated challenges.
	Format challenge.Format

	// Kinds is the pool of question kinds this game draws from.
	Kinds []challenge.Kind
}

// Outcome is the result of submitting input for the current challenge.
type Outcome int

const (
	// OutcomeIgnored means the input did not count as an answer
	// (empty, unparseable) and no state changed.
	OutcomeIgnored Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

// TickResult reports what a clock tick caused.
type TickResult struct {
	// TimedOut is set when the per-question clock hit zero and was
	// treated as an incorrect answer.
	TimedOut bool

	// Finished is set when this tick transitioned the session to
	// PhaseFinished.
	Finished bool
}

// Session is the mutable aggregate for one play-through. It is owned
// by exactly one active game; there is no cross-session sharing.
type Session struct {
	ID     string
	GameID string

	Rules   Rules
	Scoring Scoring

	// Profile is the active difficulty. For ramp games it is
	// recomputed each tick; otherwise it is fixed at Start.
	Profile challenge.Profile

	// baseProfile remembers the selected profile for the summary even
	// when ramping changes the active one.
	baseProfile challenge.ProfileID

	Phase   Phase
	Current *challenge.Challenge

	// Index counts challenges served so far.
	Index int

	Score      int
	Streak     int
	BestStreak int

	CorrectCount   int
	IncorrectCount int

	// SessionRemaining and QuestionRemaining are countdown seconds.
	SessionRemaining  int
	QuestionRemaining int
	elapsedSeconds    int

	// DoubleRemaining is the seconds left in a double-points window
	// opened by a streak milestone.
	DoubleRemaining int

	// Milestone is the streak length that fired on the last correct
	// answer (0 if none); the presentation layer uses it for
	// celebratory effects.
	Milestone int

	// LastOutcome records the most recent Submit or timeout result.
	LastOutcome Outcome

	// Race holds the simulated opponents, nil unless Rules.Race.
	Race *Race

	gen     *challenge.Generator
	summary *Summary
}

// New creates a Session in PhaseMenu. The generator's random source
// determines the question sequence; pass a date-seeded generator for
// daily challenges.
func New(gameID string, rules Rules, scoring Scoring, profileID challenge.ProfileID, gen *challenge.Generator) *Session {
	if gen == nil {
		gen = challenge.New(nil, challenge.DefaultConfig())
	}
	return &Session{
		ID:          newSessionID(),
		GameID:      gameID,
		Rules:       rules,
		Scoring:     scoring,
		Profile:     challenge.ProfileByID(profileID),
		baseProfile: profileID,
		Phase:       PhaseMenu,
		gen:         gen,
	}
}

// Elapsed returns the played seconds, excluding paused time.
func (s *Session) Elapsed() int {
	return s.elapsedSeconds
}
