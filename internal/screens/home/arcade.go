package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/ui/components"
	"github.com/abhisek/matharcade/internal/ui/layout"
	"github.com/abhisek/matharcade/internal/ui/theme"
)

// Block-letter title for the cabinet marquee.
const marqueeFull = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║
 ██╔████╔██║███████║   ██║   ███████║
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝
            A · R · C · A · D · E`

const marqueeCompact = "M A T H · A R C A D E"

func (h *HomeScreen) View(width, height int) string {
	compact := height < 28 || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderMarquee(cw, compact))
	sections = append(sections, renderStatsBar(h.totalPlays, h.bestScore, h.dayStreak, cw))
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

// renderMarquee returns the styled title block or compact fallback.
func renderMarquee(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Warning).
		Bold(true)

	title := marqueeFull
	if compact {
		title = marqueeCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders lifetime stats in a double-bordered box.
func renderStatsBar(plays, best, dayStreak, cw int) string {
	playStyle := lipgloss.NewStyle().Foreground(theme.Cyan).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)

	stats := fmt.Sprintf("%s  %s  %s",
		playStyle.Render(fmt.Sprintf("▶ %d PLAYS", plays)),
		bestStyle.Render(fmt.Sprintf("◎ %d BEST", best)),
		streakStyle.Render(fmt.Sprintf("★ %d DAY STREAK", dayStreak)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Cyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
