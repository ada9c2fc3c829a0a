package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/game"
	"github.com/abhisek/matharcade/internal/router"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/share"
	"github.com/abhisek/matharcade/internal/ui/layout"
	"github.com/abhisek/matharcade/internal/ui/theme"
)

// SummaryScreen displays the result of a finished game.
type SummaryScreen struct {
	summary *game.Summary
	title   string
	replay  func() screen.Screen
	notice  string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. replay builds a fresh session of the
// same game for the play-again flow.
func New(summary *game.Summary, title string, replay func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{summary: summary, title: title, replay: replay}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Play again"},
		{Key: "C", Description: "Copy result"},
		{Key: "Esc", Description: "Home"},
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		if s.replay == nil {
			break
		}
		// Drop this screen, then swap the finished play screen for a
		// fresh one.
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return router.ReplaceScreenMsg{Screen: s.replay()} },
		)

	case "c", "C":
		if err := share.Copy(share.Format(s.summary, s.title)); err != nil {
			s.notice = "Clipboard unavailable"
		} else {
			s.notice = "Copied to clipboard!"
		}
		return s, nil

	case "esc":
		// Pop both summary and the play screen beneath it.
		return s, tea.Sequence(
			func() tea.Msg { return router.PopScreenMsg{} },
			func() tea.Msg { return router.PopScreenMsg{} },
		)
	}

	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sum.Difficulty.Label()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("◎ %d points", sum.Score)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Correct: %d/%d (%.0f%%)      Best streak: %d      Time: %d:%02d",
		sum.CorrectCount, sum.TotalQuestions, sum.Accuracy()*100, sum.BestStreak, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if sum.RacePlace > 0 {
		placeStyle := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true)
		b.WriteString("\n")
		b.WriteString(placeStyle.Render(placeLine(sum.RacePlace)))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render(s.notice))
		b.WriteString("\n")
	}

	return b.String()
}

func placeLine(n int) string {
	switch n {
	case 1:
		return "🏆 You finished 1st!"
	case 2:
		return "You finished 2nd"
	case 3:
		return "You finished 3rd"
	default:
		return fmt.Sprintf("You finished %dth", n)
	}
}
