package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/config"
	"github.com/abhisek/matharcade/internal/router"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/screens/home"
	"github.com/abhisek/matharcade/internal/store"
	"github.com/abhisek/matharcade/internal/ui/layout"
)

// Options carry the wiring for the TUI.
type Options struct {
	// Store may be nil; the arcade then runs without persistence.
	Store  *store.Store
	Config config.Config

	// Initial overrides the home screen as the first screen, for CLI
	// subcommands that launch straight into a game.
	Initial screen.Screen
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	bestScore int
	dayStreak int
	width     int
	height    int
}

// newAppModel creates the root model with the home screen mounted.
func newAppModel(opts Options) AppModel {
	var bestScore, dayStreak int
	if opts.Store != nil {
		if stats, err := opts.Store.AllStats(context.Background()); err == nil {
			for _, gs := range stats {
				if gs.PersonalBest > bestScore {
					bestScore = gs.PersonalBest
				}
				if gs.DayStreak > dayStreak {
					dayStreak = gs.DayStreak
				}
			}
		}
	}

	initial := opts.Initial
	if initial == nil {
		initial = home.New(opts.Store, opts.Config)
	}

	return AppModel{
		router:    router.New(initial),
		bestScore: bestScore,
		dayStreak: dayStreak,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.bestScore, m.dayStreak, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
