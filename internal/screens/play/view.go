package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/game"
	"github.com/abhisek/matharcade/internal/ui/components"
	"github.com/abhisek/matharcade/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width)
	}
	if s.session.Phase == game.PhasePaused {
		return renderPaused(width)
	}
	if s.session.Phase == game.PhaseFinished {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Game over. Enter shows the summary again, Q quits.")
	}
	return s.renderPlaying(width, height)
}

func (s *PlayScreen) renderPlaying(width, height int) string {
	sess := s.session
	cur := sess.Current
	if cur == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	var b strings.Builder

	b.WriteString(s.renderHUD(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Prompt.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Prompt))
	b.WriteString("\n")

	if cur.Visual != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Cyan).Render(cur.Visual)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Answer area.
	if s.mcActive {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.mc.View()))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}
	b.WriteString("\n\n")

	b.WriteString(s.renderFlash(width))

	if sess.QuestionRemaining > 0 && sess.Rules.QuestionSeconds > 0 {
		bar := components.TimerBar("", sess.QuestionRemaining, sess.Rules.QuestionSeconds, min(width-8, 44))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	if sess.Race != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRace(width)))
	}

	return b.String()
}

// renderHUD renders the score line: score, streak, progress, clocks.
func (s *PlayScreen) renderHUD(width int) string {
	sess := s.session

	left := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("  ◎ %d", sess.Score))

	if sess.Streak > 1 {
		left += "  " + theme.Streak.Render(fmt.Sprintf("🔥 %d", sess.Streak))
	}
	if sess.DoubleRemaining > 0 {
		left += "  " + lipgloss.NewStyle().
			Foreground(theme.Warning).
			Bold(true).
			Render(fmt.Sprintf("2x! %ds", sess.DoubleRemaining))
	}

	var rightParts []string
	if answered, total := sess.Progress(); total > 0 {
		rightParts = append(rightParts, fmt.Sprintf("Q %d/%d", min(answered+1, total), total))
	}
	if sess.Rules.SessionSeconds > 0 {
		rightParts = append(rightParts, clockString(sess.SessionRemaining))
	}
	if sess.Rules.Ramp {
		rightParts = append(rightParts, sess.Profile.ID.Label())
	}
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(strings.Join(rightParts, "  "))

	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

// renderFlash renders the transient correct/incorrect banner.
func (s *PlayScreen) renderFlash(width int) string {
	if s.flashTicks <= 0 {
		return "\n"
	}

	var line string
	if s.flashOutcome == game.OutcomeCorrect {
		line = theme.Correct.Render("✓ Correct!")
		if s.session.Milestone > 0 {
			line += "  " + theme.Streak.Render(
				fmt.Sprintf("%d in a row! Double points!", s.session.Milestone))
		}
	} else {
		line = theme.Incorrect.Render("✗ Not quite")
		if cur := s.session.Current; cur != nil && !s.session.Rules.AdvanceOnWrong && cur.Hint != "" {
			line += "  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("Hint: "+cur.Hint)
		}
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line) + "\n"
}

// renderRace renders opponent lanes for race games.
func (s *PlayScreen) renderRace(width int) string {
	r := s.session.Race
	lanes := []components.Lane{{Name: "You", Progress: r.Player, IsPlayer: true}}
	for _, bot := range r.Bots {
		lanes = append(lanes, components.Lane{Name: bot.Name, Progress: bot.Progress})
	}
	return components.RaceTrack(lanes, r.Target, min(width-8, 56))
}

func renderPaused(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Paused"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("The clock is stopped. Press P to resume."))
	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this game?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your score so far will be kept."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end game"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep playing"))
	return b.String()
}

func clockString(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
