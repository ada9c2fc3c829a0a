package share

import (
	"strings"
	"testing"
	"time"

	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/game"
)

func TestFormat(t *testing.T) {
	sum := &game.Summary{
		GameID:         "number-race",
		Difficulty:     challenge.ProfileMedium,
		Score:          240,
		CorrectCount:   12,
		IncorrectCount: 3,
		TotalQuestions: 15,
		BestStreak:     7,
		Duration:       95 * time.Second,
		RacePlace:      2,
	}

	text := Format(sum, "Number Race")

	for _, want := range []string{
		"Number Race — Medium",
		"Score: 240",
		"Correct: 12/15 (80%)",
		"Best streak: 7",
		"Time: 1:35",
		"Finished 2nd",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("share text missing %q:\n%s", want, text)
		}
	}
}

func TestFormat_NoRaceLineForRegularGames(t *testing.T) {
	sum := &game.Summary{
		Difficulty:     challenge.ProfileEasy,
		TotalQuestions: 10,
	}
	if strings.Contains(Format(sum, "Quick Quiz"), "Finished") {
		t.Error("race placement rendered for a non-race game")
	}
}

func TestPlace(t *testing.T) {
	tests := map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th"}
	for n, want := range tests {
		if got := place(n); got != want {
			t.Errorf("place(%d) = %q, want %q", n, got, want)
		}
	}
}
