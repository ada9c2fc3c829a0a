// Package catalog is the static registry of mini-games. Every game is
// an instantiation of the same kernel: a pool of challenge kinds plus
// session rules, consumed by the home screen and the play command.
package catalog

import (
	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/game"
)

// DailyChallengeID is the game whose question sequence is seeded from
// the calendar date instead of the clock.
const DailyChallengeID = "daily-challenge"

// Game describes one playable mini-game.
type Game struct {
	ID      string
	Title   string
	Tagline string

	Rules game.Rules

	// DefaultProfile is used when the player skips difficulty
	// selection (daily mode, CLI launch).
	DefaultProfile challenge.ProfileID
}

var games = []Game{
	{
		ID:      "arithmetic-hero",
		Title:   "Arithmetic Hero",
		Tagline: "Beat the clock, build your streak",
		Rules: game.Rules{
			SessionSeconds:  120,
			QuestionSeconds: 12,
			AdvanceOnWrong:  false,
			Ramp:            true,
			Format:          challenge.FormatNumeric,
			Kinds: []challenge.Kind{
				challenge.KindAddition, challenge.KindSubtraction,
				challenge.KindMultiplication, challenge.KindDivision,
			},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "target-takedown",
		Title:   "Target Takedown",
		Tagline: "Pick the right answer before it escapes",
		Rules: game.Rules{
			SessionSeconds:  90,
			QuestionSeconds: 8,
			AdvanceOnWrong:  true,
			Format:          challenge.FormatMultipleChoice,
			Kinds: []challenge.Kind{
				challenge.KindAddition, challenge.KindSubtraction,
				challenge.KindMultiplication,
			},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "shape-explorer",
		Title:   "Shape Explorer",
		Tagline: "Know your polygons",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatMultipleChoice,
			Kinds: []challenge.Kind{
				challenge.KindShapeID, challenge.KindSymmetry,
			},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "clock-trainer",
		Title:   "Clock Trainer",
		Tagline: "Tell the time at a glance",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatMultipleChoice,
			Kinds:          []challenge.Kind{challenge.KindClockRead},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "time-converter",
		Title:   "Time Converter",
		Tagline: "Minutes, hours, days and weeks",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatNumeric,
			Kinds: []challenge.Kind{
				challenge.KindTimeConvert, challenge.KindDayOfWeek,
			},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "money-counter",
		Title:   "Money Counter",
		Tagline: "Count the coins",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatNumeric,
			Kinds:          []challenge.Kind{challenge.KindMoneyCount},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "unit-converter",
		Title:   "Unit Converter",
		Tagline: "Metric conversions, no calculator",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatNumeric,
			Kinds:          []challenge.Kind{challenge.KindUnitConvert},
		},
		DefaultProfile: challenge.ProfileMedium,
	},
	{
		ID:      "geometry-quest",
		Title:   "Geometry Quest",
		Tagline: "Areas, perimeters and circles",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatNumeric,
			Kinds: []challenge.Kind{
				challenge.KindTriangleArea, challenge.KindRectangleArea,
				challenge.KindRectanglePerimeter, challenge.KindCircleArea,
				challenge.KindCircleCircumference,
			},
		},
		DefaultProfile: challenge.ProfileMedium,
	},
	{
		ID:      "quick-quiz",
		Title:   "Quick Quiz",
		Tagline: "Ten questions, no clock, no mercy",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatNumeric,
			Kinds: []challenge.Kind{
				challenge.KindAddition, challenge.KindSubtraction,
				challenge.KindMultiplication, challenge.KindDivision,
			},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "number-race",
		Title:   "Number Race",
		Tagline: "Race simulated rivals to the finish line",
		Rules: game.Rules{
			TotalQuestions:  15,
			QuestionSeconds: 10,
			AdvanceOnWrong:  true,
			Race:            true,
			RaceOpponents:   3,
			Format:          challenge.FormatNumeric,
			Kinds: []challenge.Kind{
				challenge.KindAddition, challenge.KindSubtraction,
				challenge.KindMultiplication,
			},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      "mixed-marathon",
		Title:   "Mixed Marathon",
		Tagline: "Every topic, ramping difficulty",
		Rules: game.Rules{
			SessionSeconds:  180,
			QuestionSeconds: 15,
			AdvanceOnWrong:  true,
			Ramp:            true,
			Format:          challenge.FormatNumeric,
			Kinds: []challenge.Kind{
				challenge.KindAddition, challenge.KindSubtraction,
				challenge.KindMultiplication, challenge.KindDivision,
				challenge.KindTimeConvert, challenge.KindUnitConvert,
				challenge.KindMoneyCount, challenge.KindRectangleArea,
			},
		},
		DefaultProfile: challenge.ProfileEasy,
	},
	{
		ID:      DailyChallengeID,
		Title:   "Daily Challenge",
		Tagline: "The same ten questions for everyone, every day",
		Rules: game.Rules{
			TotalQuestions: 10,
			AdvanceOnWrong: true,
			Format:         challenge.FormatNumeric,
			Kinds: []challenge.Kind{
				challenge.KindAddition, challenge.KindSubtraction,
				challenge.KindMultiplication, challenge.KindDivision,
				challenge.KindTimeConvert, challenge.KindMoneyCount,
			},
		},
		DefaultProfile: challenge.ProfileMedium,
	},
}

// Games returns all games in display order.
func Games() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}

// ByID looks up a game by its identifier.
func ByID(id string) (Game, bool) {
	for _, g := range games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}
