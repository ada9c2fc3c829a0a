package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/matharcade/internal/ui/theme"
)

// MultiChoice is a choice selector. In single mode, enter submits the
// highlighted option. In multi mode, space toggles options and enter
// submits the toggled set.
type MultiChoice struct {
	choices   []string
	Selected  int
	Multi     bool
	toggled   []bool
	Submitted bool
}

// NewMultiChoice creates a single-answer choice selector.
func NewMultiChoice(choices []string) MultiChoice {
	return MultiChoice{
		choices: choices,
		toggled: make([]bool, len(choices)),
	}
}

// NewMultiSelect creates a toggle-based multi-answer selector.
func NewMultiSelect(choices []string) MultiChoice {
	m := NewMultiChoice(choices)
	m.Multi = true
	return m
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.choices)-1 {
			m.Selected++
		}
	case " ", "space":
		if m.Multi {
			m.toggled[m.Selected] = !m.toggled[m.Selected]
		}
	case "enter":
		m.Submitted = true
	}

	return m, nil
}

// Chosen returns the submitted answers. For single mode this is the
// highlighted option; for multi mode, every toggled option.
func (m MultiChoice) Chosen() []string {
	if !m.Multi {
		if m.Selected >= 0 && m.Selected < len(m.choices) {
			return []string{m.choices[m.Selected]}
		}
		return nil
	}
	var out []string
	for i, on := range m.toggled {
		if on {
			out = append(out, m.choices[i])
		}
	}
	return out
}

// View renders the choice list.
func (m MultiChoice) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	var s string

	for i, opt := range m.choices {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}

		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		mark := ""
		if m.Multi {
			mark = "[ ] "
			if m.toggled[i] {
				mark = "[x] "
			}
		}

		line := fmt.Sprintf("%s%s%s)  %s", prefix, mark, label, opt)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.Selected && !m.Submitted {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if m.Multi && m.toggled[i] {
			style = style.Foreground(theme.Accent)
		}
		s += style.Render(line) + "\n"
	}

	if m.Multi && !m.Submitted {
		s += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  space toggles, enter submits")
	}

	return s
}
