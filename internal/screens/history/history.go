package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/router"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/store"
	"github.com/abhisek/matharcade/internal/ui/layout"
	"github.com/abhisek/matharcade/internal/ui/theme"
)

const historyLimit = 30

type historyLoadedMsg struct {
	Sessions []store.SessionRow
	Stats    map[string]store.GameStats
	Err      error
}

// HistoryScreen displays past runs and per-game records.
type HistoryScreen struct {
	st       *store.Store
	sessions []store.SessionRow
	stats    map[string]store.GameStats
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen. A nil store renders as empty.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{
		st:       st,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	if s.st == nil {
		s.loaded = true
		return nil
	}
	st := s.st
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := st.History(ctx, "", historyLimit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := st.AllStats(ctx)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}
		return historyLoadedMsg{Sessions: sessions, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games played yet. Go set a record!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, row := range s.sessions {
		dateStr := row.PlayedAt.Format("Jan 02, 2006")
		total := row.Correct + row.Incorrect
		var accuracy float64
		if total > 0 {
			accuracy = float64(row.Correct) / float64(total) * 100
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-18s  %d pts  %.0f%% accuracy",
			prefix, dateStr, gameTitle(row.GameID), row.Score, accuracy)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).
					Render(s.detailLine(row))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// detailLine expands one run with its streak, duration, and the
// game's lifetime record.
func (s *HistoryScreen) detailLine(row store.SessionRow) string {
	mins := row.DurationSecs / 60
	secs := row.DurationSecs % 60

	line := fmt.Sprintf("    %s  streak %d  time %d:%02d",
		row.Difficulty, row.BestStreak, mins, secs)
	if row.RacePlace > 0 {
		line += fmt.Sprintf("  finished #%d", row.RacePlace)
	}
	if gs, ok := s.stats[row.GameID]; ok {
		line += fmt.Sprintf("  |  best %d over %d plays", gs.PersonalBest, gs.TotalSessions)
	}
	return line
}

func gameTitle(id string) string {
	if g, ok := catalog.ByID(id); ok {
		return g.Title
	}
	return id
}
