// Package difficulty is the pre-game picker for a difficulty profile.
package difficulty

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/config"
	"github.com/abhisek/matharcade/internal/router"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/screens/play"
	"github.com/abhisek/matharcade/internal/store"
	"github.com/abhisek/matharcade/internal/ui/components"
	"github.com/abhisek/matharcade/internal/ui/layout"
	"github.com/abhisek/matharcade/internal/ui/theme"
)

// DifficultyScreen picks a profile before launching a game.
type DifficultyScreen struct {
	def  catalog.Game
	menu components.Menu
}

var _ screen.Screen = (*DifficultyScreen)(nil)
var _ screen.KeyHintProvider = (*DifficultyScreen)(nil)

// New creates the picker for the given game.
func New(def catalog.Game, st *store.Store, cfg config.Config) *DifficultyScreen {
	var items []components.MenuItem
	for _, id := range challenge.ProfileIDs() {
		id := id
		items = append(items, components.MenuItem{
			Label: id.Label(),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.ReplaceScreenMsg{
						Screen: play.New(def, id, nil, st, cfg),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Back",
		Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		},
	})

	s := &DifficultyScreen{def: def, menu: components.NewMenu(items)}
	s.preselect(def.DefaultProfile)
	return s
}

// preselect moves the cursor to the game's default profile.
func (s *DifficultyScreen) preselect(id challenge.ProfileID) {
	for i, pid := range challenge.ProfileIDs() {
		if pid == id {
			s.menu.Selected = i
			return
		}
	}
}

func (s *DifficultyScreen) Init() tea.Cmd {
	return nil
}

func (s *DifficultyScreen) Title() string {
	return s.def.Title
}

func (s *DifficultyScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DifficultyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *DifficultyScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.def.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.def.Tagline))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Pick your difficulty"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}
