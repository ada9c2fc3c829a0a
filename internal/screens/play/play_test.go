package play

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/config"
	"github.com/abhisek/matharcade/internal/game"
	"github.com/abhisek/matharcade/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// seededFactory keeps the question sequence deterministic.
func seededFactory() GenFactory {
	return func() *challenge.Generator {
		return challenge.NewSeeded(7)
	}
}

func testPlayScreen(t *testing.T, gameID string) *PlayScreen {
	t.Helper()
	g, ok := catalog.ByID(gameID)
	if !ok {
		t.Fatalf("game %q not in catalog", gameID)
	}
	s := New(g, challenge.ProfileEasy, seededFactory(), nil, config.Default())
	s.Init()
	return s
}

func TestPlayScreen_InitStartsSession(t *testing.T) {
	s := testPlayScreen(t, "quick-quiz")

	if s.session.Phase != game.PhasePlaying {
		t.Errorf("phase = %v, want playing", s.session.Phase)
	}
	if s.session.Current == nil {
		t.Fatal("expected a challenge after Init")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty view")
	}
}

func TestPlayScreen_Title(t *testing.T) {
	s := testPlayScreen(t, "quick-quiz")
	if s.Title() != "Quick Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quick Quiz")
	}
}

func TestPlayScreen_SubmitCorrectAnswer(t *testing.T) {
	s := testPlayScreen(t, "quick-quiz")

	s.input.Model.SetValue(s.session.Current.Answer)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PlayScreen)

	if ps.session.CorrectCount != 1 {
		t.Errorf("correct count = %d, want 1", ps.session.CorrectCount)
	}
	if ps.session.Score == 0 {
		t.Error("expected score after correct answer")
	}
	if ps.flashTicks == 0 {
		t.Error("expected feedback flash after submit")
	}
}

func TestPlayScreen_EmptySubmitIgnored(t *testing.T) {
	s := testPlayScreen(t, "quick-quiz")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PlayScreen)

	if ps.session.CorrectCount != 0 || ps.session.IncorrectCount != 0 {
		t.Error("empty submit should not count as an answer")
	}
}

func TestPlayScreen_QuitConfirm(t *testing.T) {
	s := testPlayScreen(t, "quick-quiz")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PlayScreen)
	if !ps.confirmQuit {
		t.Error("expected quit confirmation after esc")
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PlayScreen)
	if ps.confirmQuit {
		t.Error("expected quit confirmation dismissed by n")
	}
	if ps.session.Phase != game.PhasePlaying {
		t.Errorf("phase = %v, want playing after dismiss", ps.session.Phase)
	}
}

func TestPlayScreen_QuitConfirmYesFinishes(t *testing.T) {
	s := testPlayScreen(t, "quick-quiz")

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PlayScreen)
	_, cmd := ps.Update(keyPress('y'))

	if ps.session.Phase != game.PhaseFinished {
		t.Errorf("phase = %v, want finished after confirmed quit", ps.session.Phase)
	}
	if cmd == nil {
		t.Error("expected a command pushing the summary screen")
	}
	if ps.session.Summary() == nil {
		t.Error("expected summary after finish")
	}
}

func TestPlayScreen_PauseResume(t *testing.T) {
	s := testPlayScreen(t, "arithmetic-hero")

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('p'))
	ps := scr.(*PlayScreen)
	if ps.session.Phase != game.PhasePaused {
		t.Errorf("phase = %v, want paused", ps.session.Phase)
	}

	remaining := ps.session.SessionRemaining
	scr, _ = ps.Update(tickMsg{})
	ps = scr.(*PlayScreen)
	if ps.session.SessionRemaining != remaining {
		t.Error("clock should not move while paused")
	}

	scr, _ = ps.Update(keyPress('p'))
	ps = scr.(*PlayScreen)
	if ps.session.Phase != game.PhasePlaying {
		t.Errorf("phase = %v, want playing after resume", ps.session.Phase)
	}
}

func TestPlayScreen_TickMovesClock(t *testing.T) {
	s := testPlayScreen(t, "arithmetic-hero")

	remaining := s.session.SessionRemaining
	var scr screen.Screen = s
	scr, _ = scr.Update(tickMsg{})
	ps := scr.(*PlayScreen)

	if ps.session.SessionRemaining != remaining-1 {
		t.Errorf("session remaining = %d, want %d", ps.session.SessionRemaining, remaining-1)
	}
}

func TestPlayScreen_MultipleChoiceDigitSubmits(t *testing.T) {
	s := testPlayScreen(t, "target-takedown")

	if !s.mcActive {
		t.Fatal("expected multiple choice input")
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('1'))
	ps := scr.(*PlayScreen)

	if ps.session.CorrectCount+ps.session.IncorrectCount != 1 {
		t.Error("digit key should submit the chosen option")
	}
}

func TestPlayScreen_CorrectChoiceScoresInNumericGame(t *testing.T) {
	s := testPlayScreen(t, "target-takedown")

	if !s.mcActive {
		t.Fatal("expected multiple choice input")
	}
	cur := s.session.Current
	found := false
	for i, c := range cur.Choices {
		if c == cur.Answer {
			s.mc.Selected = i
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("answer %q missing from choices %v", cur.Answer, cur.Choices)
	}

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PlayScreen)

	if ps.session.CorrectCount != 1 {
		t.Errorf("correctCount = %d, want 1 after picking the right value", ps.session.CorrectCount)
	}
	if ps.session.IncorrectCount != 0 {
		t.Errorf("incorrectCount = %d, want 0", ps.session.IncorrectCount)
	}
}

func TestPlayScreen_RaceGameHasTrack(t *testing.T) {
	s := testPlayScreen(t, "number-race")

	if s.session.Race == nil {
		t.Fatal("expected race opponents")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty view with race track")
	}
}
