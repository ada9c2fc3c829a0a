package play

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// tickMsg is sent every second to drive the session clocks.
type tickMsg time.Time

// savedMsg is sent when fire-and-forget persistence completes.
type savedMsg struct {
	Err error
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
