package play

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/matharcade/internal/catalog"
	"github.com/abhisek/matharcade/internal/challenge"
	"github.com/abhisek/matharcade/internal/config"
	"github.com/abhisek/matharcade/internal/game"
	"github.com/abhisek/matharcade/internal/router"
	"github.com/abhisek/matharcade/internal/screen"
	"github.com/abhisek/matharcade/internal/screens/summary"
	"github.com/abhisek/matharcade/internal/store"
	"github.com/abhisek/matharcade/internal/ui/components"
	"github.com/abhisek/matharcade/internal/ui/layout"
)

// flashDuration is how many ticks the answer feedback banner stays up.
const flashDuration = 2

// GenFactory builds the challenge generator for a session. A nil
// factory yields a time-seeded generator; daily challenges pass a
// date-seeded one so every run of the day serves the same questions.
type GenFactory func() *challenge.Generator

// PlayScreen runs one game session and renders its state.
type PlayScreen struct {
	def     catalog.Game
	profile challenge.ProfileID
	newGen  GenFactory
	st      *store.Store
	cfg     config.Config

	session *game.Session

	input    components.AnswerInput
	mc       components.MultiChoice
	mcActive bool

	confirmQuit  bool
	flashTicks   int
	flashOutcome game.Outcome
	finished     bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a play screen for the given game definition.
func New(def catalog.Game, profileID challenge.ProfileID, newGen GenFactory, st *store.Store, cfg config.Config) *PlayScreen {
	gen := challenge.New(nil, cfg.GeneratorConfig())
	if newGen != nil {
		gen = newGen()
	}
	return &PlayScreen{
		def:     def,
		profile: profileID,
		newGen:  newGen,
		st:      st,
		cfg:     cfg,
		session: game.New(def.ID, def.Rules, cfg.GameScoring(), profileID, gen),
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	s.session.Start()
	s.syncAnswerUI()
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *PlayScreen) Title() string {
	return s.def.Title
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	}
	switch s.session.Phase {
	case game.PhasePaused:
		return []layout.KeyHint{
			{Key: "P", Description: "Resume"},
			{Key: "Esc", Description: "Quit"},
		}
	case game.PhasePlaying:
		hints := []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Skip"},
			{Key: "P", Description: "Pause"},
			{Key: "Esc", Description: "Quit"},
		}
		if s.mcActive && s.mc.Multi {
			hints = append([]layout.KeyHint{{Key: "Space", Description: "Toggle"}}, hints...)
		}
		return hints
	}
	return nil
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return s.handleTick()

	case savedMsg:
		// Persistence is fire-and-forget: a failed write never
		// interrupts play, the summary is already on screen.
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Non-key messages (cursor blink) still reach the text input.
	if s.session.Phase == game.PhasePlaying && !s.mcActive && !s.confirmQuit {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *PlayScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}

	if s.flashTicks > 0 {
		s.flashTicks--
	}

	before := s.session.Index
	res := s.session.Tick()

	if res.TimedOut {
		s.flash(game.OutcomeIncorrect)
		if s.session.Index != before {
			s.syncAnswerUI()
		}
	}

	if res.Finished {
		return s, s.finishCmd()
	}

	return s, tickCmd()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.session.Finish()
			return s, s.finishCmd()
		case "n", "N", "esc":
			s.confirmQuit = false
			s.session.Resume()
		}
		return s, nil
	}

	switch s.session.Phase {
	case game.PhaseFinished:
		// Reached when this screen sits at the stack bottom (direct CLI
		// launch) and the summary above it was dismissed.
		switch key {
		case "enter":
			return s, s.finishCmd()
		case "esc", "q":
			return s, tea.Quit
		}
		return s, nil

	case game.PhasePaused:
		if key == "p" || key == "P" {
			s.session.Resume()
		}
		if key == "esc" {
			s.confirmQuit = true
		}
		return s, nil

	case game.PhasePlaying:
		switch key {
		case "esc":
			s.session.Pause()
			s.confirmQuit = true
			return s, nil
		case "p", "P":
			// The text input owns plain letters when typing a word.
			if !s.typingWord() {
				s.session.Pause()
				return s, nil
			}
		case "enter":
			return s, s.submit()
		case "tab":
			return s, s.skip()
		}

		if s.mcActive {
			if idx, ok := digitIndex(key); ok && !s.mc.Multi {
				if cur := s.session.Current; cur != nil && idx < len(cur.Choices) {
					s.mc.Selected = idx
					return s, s.submit()
				}
				return s, nil
			}
			var cmd tea.Cmd
			s.mc, cmd = s.mc.Update(msg)
			return s, cmd
		}

		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// submit evaluates the current answer and advances the session.
func (s *PlayScreen) submit() tea.Cmd {
	cur := s.session.Current
	if cur == nil {
		return nil
	}

	var out game.Outcome
	switch cur.Format {
	case challenge.FormatMultiSelect:
		out = s.session.SubmitSet(s.mc.Chosen())
	case challenge.FormatMultipleChoice:
		chosen := s.mc.Chosen()
		if len(chosen) == 0 {
			return nil
		}
		out = s.session.Submit(chosen[0])
	default:
		out = s.session.Submit(s.input.Value())
	}

	if out == game.OutcomeIgnored {
		return nil
	}

	s.flash(out)

	if s.session.Phase == game.PhaseFinished {
		return s.finishCmd()
	}

	s.syncAnswerUI()
	if s.mcActive {
		return nil
	}
	return s.input.Init()
}

// skip abandons the current question. It scores as a miss but always
// moves on, which is the escape hatch in stay-until-correct games.
func (s *PlayScreen) skip() tea.Cmd {
	out := s.session.Skip()
	if out == game.OutcomeIgnored {
		return nil
	}

	s.flash(out)

	if s.session.Phase == game.PhaseFinished {
		return s.finishCmd()
	}

	s.syncAnswerUI()
	if s.mcActive {
		return nil
	}
	return s.input.Init()
}

// syncAnswerUI rebuilds the input widget for the current challenge.
func (s *PlayScreen) syncAnswerUI() {
	cur := s.session.Current
	if cur == nil {
		return
	}

	switch cur.Format {
	case challenge.FormatMultipleChoice:
		s.mcActive = true
		s.mc = components.NewMultiChoice(cur.Choices)
	case challenge.FormatMultiSelect:
		s.mcActive = true
		s.mc = components.NewMultiSelect(cur.Choices)
	default:
		s.mcActive = false
		numeric := cur.AnswerType != challenge.AnswerTypeText
		s.input = components.NewAnswerInput("Your answer...", numeric)
	}
}

// typingWord reports whether the active input accepts plain letters.
func (s *PlayScreen) typingWord() bool {
	return !s.mcActive &&
		s.session.Current != nil &&
		s.session.Current.AnswerType == challenge.AnswerTypeText
}

func (s *PlayScreen) flash(out game.Outcome) {
	s.flashOutcome = out
	s.flashTicks = flashDuration
}

// finishCmd records the run and pushes the summary screen. The write
// happens in its own command so a slow disk never blocks the UI.
func (s *PlayScreen) finishCmd() tea.Cmd {
	alreadySaved := s.finished
	s.finished = true
	sum := s.session.Summary()
	replay := func() screen.Screen {
		return New(s.def, s.profile, s.newGen, s.st, s.cfg)
	}

	push := func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(sum, s.def.Title, replay)}
	}

	if s.st == nil || sum == nil || alreadySaved {
		return push
	}

	st := s.st
	save := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return savedMsg{Err: st.RecordSummary(ctx, sum)}
	}

	return tea.Batch(push, save)
}

func digitIndex(key string) (int, bool) {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return 0, false
	}
	return int(key[0] - '1'), true
}
