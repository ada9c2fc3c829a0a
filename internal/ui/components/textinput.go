package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// AnswerInput wraps bubbles/textinput for typing answers. In numeric
// mode only digits, a minus sign, and a decimal point are accepted.
type AnswerInput struct {
	Model   textinput.Model
	Numeric bool
}

// NewAnswerInput creates a new styled answer input.
func NewAnswerInput(placeholder string, numeric bool) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 16
	ti.Focus()

	return AnswerInput{
		Model:   ti,
		Numeric: numeric,
	}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update handles messages, filtering keystrokes in numeric mode.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if a.Numeric {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !numericRune(key[0]) {
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	return a, cmd
}

func numericRune(b byte) bool {
	return (b >= '0' && b <= '9') || b == '-' || b == '.'
}

// View renders the input.
func (a AnswerInput) View() string {
	return a.Model.View()
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Clear empties the input for the next question.
func (a *AnswerInput) Clear() {
	a.Model.SetValue("")
}
