package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/ui/theme"
)

// Lane is one racer's row on the track.
type Lane struct {
	Name     string
	Progress int
	IsPlayer bool
}

// RaceTrack renders horizontal lanes with a finish line at target.
func RaceTrack(lanes []Lane, target, width int) string {
	nameWidth := 0
	for _, l := range lanes {
		if len(l.Name) > nameWidth {
			nameWidth = len(l.Name)
		}
	}

	trackWidth := width - nameWidth - 8
	if trackWidth < 10 {
		trackWidth = 10
	}

	var s string
	for _, l := range lanes {
		pos := 0
		if target > 0 {
			pos = l.Progress * trackWidth / target
		}
		if pos > trackWidth {
			pos = trackWidth
		}

		marker := "·"
		markerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if l.IsPlayer {
			marker = "●"
			markerStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
		}

		nameStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
		if l.IsPlayer {
			nameStyle = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
		}

		lane := strings.Repeat("─", pos) + markerStyle.Render(marker) + strings.Repeat("─", trackWidth-pos)

		s += fmt.Sprintf("%s %s▐ %s\n",
			nameStyle.Render(fmt.Sprintf("%*s", nameWidth, l.Name)),
			lane,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d/%d", l.Progress, target)),
		)
	}
	return s
}
