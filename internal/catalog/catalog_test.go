package catalog

import (
	"testing"

	"github.com/abhisek/matharcade/internal/challenge"
)

func TestGames_UniqueIDsAndValidRules(t *testing.T) {
	seen := map[string]bool{}
	for _, g := range Games() {
		if g.ID == "" || g.Title == "" {
			t.Errorf("game with empty ID or title: %+v", g)
		}
		if seen[g.ID] {
			t.Errorf("duplicate game ID %q", g.ID)
		}
		seen[g.ID] = true

		if g.Rules.TotalQuestions == 0 && g.Rules.SessionSeconds == 0 {
			t.Errorf("game %q has neither a question budget nor a session clock", g.ID)
		}
		if len(g.Rules.Kinds) == 0 {
			t.Errorf("game %q has no challenge kinds", g.ID)
		}
		if challenge.ProfileByID(g.DefaultProfile).ID != g.DefaultProfile {
			t.Errorf("game %q has unknown default profile %q", g.ID, g.DefaultProfile)
		}
	}
}

func TestByID(t *testing.T) {
	g, ok := ByID("arithmetic-hero")
	if !ok {
		t.Fatal("arithmetic-hero not found")
	}
	if g.Title != "Arithmetic Hero" {
		t.Errorf("title = %q", g.Title)
	}

	if _, ok := ByID("no-such-game"); ok {
		t.Error("lookup of unknown ID succeeded")
	}
}

func TestRaceGames_AreLocalSimulationsWithBots(t *testing.T) {
	for _, g := range Games() {
		if g.Rules.Race && g.Rules.RaceOpponents <= 0 {
			t.Errorf("race game %q has no opponents configured", g.ID)
		}
		if g.Rules.Race && g.Rules.TotalQuestions <= 0 {
			t.Errorf("race game %q needs a finish line (question count)", g.ID)
		}
	}
}
