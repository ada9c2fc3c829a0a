package home

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/config"
	"github.com/abhisek/matharcade/internal/router"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/screens/difficulty"
	"github.com/abhisek/matharcade/internal/screens/history"
	"github.com/abhisek/matharcade/internal/screens/play"
	"github.com/abhisek/matharcade/internal/store"
	"github.com/abhisek/matharcade/internal/ui/components"
	"github.com/abhisek/matharcade/internal/ui/layout"
)

// HomeScreen is the arcade lobby: the cabinet list plus lifetime stats.
type HomeScreen struct {
	menu       components.Menu
	totalPlays int
	bestScore  int
	dayStreak  int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen. st may be nil when the database failed
// to open; play still works, nothing is recorded.
func New(st *store.Store, cfg config.Config) *HomeScreen {
	var totalPlays, bestScore, dayStreak int
	if st != nil {
		if stats, err := st.AllStats(context.Background()); err == nil {
			for _, gs := range stats {
				totalPlays += gs.TotalSessions
				if gs.PersonalBest > bestScore {
					bestScore = gs.PersonalBest
				}
				if gs.DayStreak > dayStreak {
					dayStreak = gs.DayStreak
				}
			}
		}
	}

	var items []components.MenuItem
	for _, g := range catalog.Games() {
		g := g
		items = append(items, components.MenuItem{
			Label:  g.Title,
			Detail: g.Tagline,
			Action: func() tea.Cmd {
				return selectGame(g, st, cfg)
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:       components.NewMenu(items),
		totalPlays: totalPlays,
		bestScore:  bestScore,
		dayStreak:  dayStreak,
	}
}

// selectGame routes to the difficulty picker, or straight into play for
// games with a pinned difficulty (the daily challenge).
func selectGame(g catalog.Game, st *store.Store, cfg config.Config) tea.Cmd {
	if g.ID == catalog.DailyChallengeID {
		return func() tea.Msg {
			gen := play.GenFactory(func() *challenge.Generator {
				return challenge.NewSeeded(challenge.SeedForDate(time.Now()))
			})
			return router.PushScreenMsg{
				Screen: play.New(g, g.DefaultProfile, gen, st, cfg),
			}
		}
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: difficulty.New(g, st, cfg)}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "q" {
			return h, tea.Quit
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Arcade"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Q", Description: "Quit"},
	}
}
