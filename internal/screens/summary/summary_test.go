package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/game"
)

func testSummary() *game.Summary {
	return &game.Summary{
		SessionID:      "test-session",
		GameID:         "quick-quiz",
		Difficulty:     challenge.ProfileMedium,
		Score:          180,
		CorrectCount:   8,
		IncorrectCount: 2,
		TotalQuestions: 10,
		BestStreak:     5,
		Duration:       90 * time.Second,
		PlayedAt:       time.Now(),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), "Quick Quiz", nil)
	if s.Title() != "Game Over" {
		t.Errorf("Title = %q, want %q", s.Title(), "Game Over")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), "Quick Quiz", nil)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "180") {
		t.Error("expected score in summary view")
	}
	if !strings.Contains(view, "8/10") {
		t.Error("expected correct/total in summary view")
	}
}

func TestSummaryScreen_RacePlaceShown(t *testing.T) {
	sum := testSummary()
	sum.RacePlace = 2
	s := New(sum, "Number Race", nil)
	if !strings.Contains(s.View(80, 24), "2nd") {
		t.Error("expected race place in summary view")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary(), "Quick Quiz", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop to home)")
	}
}

func TestSummaryScreen_EnterWithoutReplayIsNoop(t *testing.T) {
	s := New(testSummary(), "Quick Quiz", nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("expected no command when no replay is wired")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), "Quick Quiz", nil)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
